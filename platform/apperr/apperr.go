// Package apperr carries the error taxonomy shared by the business layer
// and the transport handlers: a failure is either NotFound (the requested
// account, note or protocol set does not exist) or Internal (a storage or
// database step failed for reasons outside the caller's control).
package apperr

import (
	"errors"
	"net/http"
)

// Code classifies an application error.
type Code string

const (
	NotFound Code = "not_found"
	Internal Code = "internal"
)

// Error is a coded application error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a coded error with message.
func New(code Code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a coded error with message and cause.
func Wrap(code Code, message string, cause error) error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// CodeOf returns the error code, defaulting to Internal.
func CodeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) && coded.Code != "" {
		return coded.Code
	}
	return Internal
}

// MessageOf returns the operator-facing message. Errors without a typed
// wrapper fall back to a generic message so raw driver errors never reach
// a response body.
func MessageOf(err error) string {
	var coded *Error
	if errors.As(err, &coded) && coded.Message != "" {
		return coded.Message
	}
	return "internal error"
}

// HTTPStatus maps an error code to its HTTP status.
func HTTPStatus(code Code) int {
	if code == NotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
