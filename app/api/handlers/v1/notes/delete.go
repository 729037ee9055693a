package notes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spsquad/sps-api/business/v1/note"
	"github.com/spsquad/sps-api/platform/web/handler"
)

// Delete godoc
// @Summary Delete a note
// @Description Removes both the static file and the database record for the note
// @Tags Note
// @Param noteId path int true "Note id"
// @Success 200
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes/{noteId} [delete]
func Delete(ctx *gin.Context) handler.Result {
	noteId, err := strconv.ParseUint(ctx.Param("noteId"), 10, 64)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid note id"},
		}
	}

	if err := note.Delete(ctx, noteId); err != nil {
		return handler.Failure(err)
	}

	return handler.Result{Status: http.StatusOK}
}
