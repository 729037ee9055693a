package notes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spsquad/sps-api/sys"
)

// Static godoc
// @Summary Fetch a note's static file
// @Description Serves the raw content behind a note's public URL
// @Tags Note
// @Produce plain
// @Param filepath path string true "Static file name"
// @Success 200 {string} string
// @Failure 404 {string} string
// @Router /static/{filepath} [get]
func Static(ctx *gin.Context) {
	key := strings.TrimPrefix(ctx.Param("filepath"), "/")

	data, err := sys.R.Files.Read(ctx, key)
	if err != nil {
		ctx.Status(http.StatusNotFound)
		return
	}

	ctx.Data(http.StatusOK, "text/markdown; charset=utf-8", data)
}
