package notes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spsquad/sps-api/business/v1/note"
	"github.com/spsquad/sps-api/platform/web/handler"
)

// List godoc
// @Summary List notes for an account
// @Description Returns the note ids, titles and static file URLs owned by an account
// @Tags Note
// @Produce json
// @Param accountId path int true "Account id"
// @Success 200 {array} note.NoteFile
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{accountId} [get]
func List(ctx *gin.Context) handler.Result {
	accountId, err := strconv.ParseUint(ctx.Param("accountId"), 10, 64)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid account id"},
		}
	}

	files, err := note.List(ctx, accountId)
	if err != nil {
		return handler.Failure(err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   files,
	}
}
