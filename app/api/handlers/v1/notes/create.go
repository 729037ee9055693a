package notes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spsquad/sps-api/business/v1/note"
	"github.com/spsquad/sps-api/platform/web/handler"
)

// Create godoc
// @Summary Add a note to an account
// @Description Stores the request body as a static file and records the note metadata
// @Tags Note
// @Accept plain
// @Param accountId path int true "Account id"
// @Param title path string true "Note title"
// @Param content body string true "Note content"
// @Success 200
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes/{accountId}/{title} [post]
func Create(ctx *gin.Context) handler.Result {
	accountId, err := strconv.ParseUint(ctx.Param("accountId"), 10, 64)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid account id"},
		}
	}

	newN := note.NewNote{
		AccountId: accountId,
		Title:     ctx.Param("title"),
		Content:   ctx.Request.Body,
	}
	if err := note.Create(ctx, newN); err != nil {
		return handler.Failure(err)
	}

	return handler.Result{Status: http.StatusOK}
}
