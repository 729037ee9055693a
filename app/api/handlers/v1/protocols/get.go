package protocols

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spsquad/sps-api/business/v1/protocol"
	"github.com/spsquad/sps-api/platform/web/handler"
)

// Get godoc
// @Summary List emergency protocols
// @Description Return all the emergency protocols stored in the database
// @Tags Protocol
// @Produce json
// @Success 200 {array} protocol.Protocol
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/protocols [get]
func Get(ctx *gin.Context) handler.Result {
	protocols, err := protocol.List(ctx)
	if err != nil {
		return handler.Failure(err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   protocols,
	}
}
