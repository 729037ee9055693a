package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/spsquad/sps-api/platform/apperr"
)

// Error is the body returned for every failed request.
type Error struct {
	Message string `json:"message" example:"notes not found"`
}

// Result is what every wrapped handler produces. A nil Body renders as an
// empty response with the given status.
type Result struct {
	Status int
	Body   any
}

// Wrapper adapts a Result-returning handler into a gin handler.
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res := h(ctx)
		if res.Body == nil {
			ctx.Status(res.Status)
			return
		}
		ctx.JSON(res.Status, res.Body)
	}
}

// Failure maps a business error to its transport result.
func Failure(err error) Result {
	return Result{
		Status: apperr.HTTPStatus(apperr.CodeOf(err)),
		Body:   Error{Message: apperr.MessageOf(err)},
	}
}
