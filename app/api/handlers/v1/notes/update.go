package notes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spsquad/sps-api/business/v1/note"
	"github.com/spsquad/sps-api/platform/web/handler"
)

// UpdateContent godoc
// @Summary Update a note's content
// @Description Replaces the static file content behind the note's stored URL
// @Tags Note
// @Accept plain
// @Param noteId path int true "Note id"
// @Param content body string true "New note content"
// @Success 200
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes/{noteId} [put]
func UpdateContent(ctx *gin.Context) handler.Result {
	noteId, err := strconv.ParseUint(ctx.Param("noteId"), 10, 64)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid note id"},
		}
	}

	if err := note.UpdateContent(ctx, noteId, ctx.Request.Body); err != nil {
		return handler.Failure(err)
	}

	return handler.Result{Status: http.StatusOK}
}

// UpdateTitle godoc
// @Summary Update a note's content and title
// @Description Replaces the static file content and the stored title
// @Tags Note
// @Accept plain
// @Param noteId path int true "Note id"
// @Param title path string true "New note title"
// @Param content body string true "New note content"
// @Success 200
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes/{noteId}/{title} [put]
func UpdateTitle(ctx *gin.Context) handler.Result {
	noteId, err := strconv.ParseUint(ctx.Param("noteId"), 10, 64)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid note id"},
		}
	}

	if err := note.UpdateTitle(ctx, noteId, ctx.Param("title"), ctx.Request.Body); err != nil {
		return handler.Failure(err)
	}

	return handler.Result{Status: http.StatusOK}
}
