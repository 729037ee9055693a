package healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spsquad/sps-api/platform/web/handler"
)

type status struct {
	Status string `json:"status" example:"ok"`
}

func Get(_ *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   status{Status: "ok"},
	}
}
