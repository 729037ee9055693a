package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, NotFound, CodeOf(New(NotFound, "Note not found")))
	assert.Equal(t, Internal, CodeOf(New(Internal, "Unable to save file")))

	// untyped errors never leak as anything but internal
	assert.Equal(t, Internal, CodeOf(errors.New("disk on fire")))
	assert.Equal(t, Internal, CodeOf(nil))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(Internal, "Unable to save file in database", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "Unable to save file in database", err.Error())
	assert.Equal(t, Internal, CodeOf(err))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "Note not found", MessageOf(New(NotFound, "Note not found")))
	assert.Equal(t, "internal error", MessageOf(errors.New("raw driver error: dsn=root:admin@db")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Internal))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Code("unmapped")))
}
