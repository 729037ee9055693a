package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/spsquad/sps-api/app/api/handlers/v1/healthcheck"
	"github.com/spsquad/sps-api/app/api/handlers/v1/notes"
	"github.com/spsquad/sps-api/app/api/handlers/v1/protocols"
	"github.com/spsquad/sps-api/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine) {
	r.GET("/v1/protocols", handler.Wrapper(protocols.Get))
	r.GET("/v1/notes/:accountId", handler.Wrapper(notes.List))
	r.POST("/v1/notes/:accountId/:title", handler.Wrapper(notes.Create))
	r.PUT("/v1/notes/:noteId", handler.Wrapper(notes.UpdateContent))
	r.PUT("/v1/notes/:noteId/:title", handler.Wrapper(notes.UpdateTitle))
	r.DELETE("/v1/notes/:noteId", handler.Wrapper(notes.Delete))

	// raw content bytes, not wrapped: the body is the blob itself
	r.GET("/static/*filepath", notes.Static)
}
