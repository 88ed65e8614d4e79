package server

import (
	"log/slog"
	"net/http"

	"github.com/pkg/errors"
)

type HTTPError interface {
	error
	StatusCode() int
}

type UserFacingError interface {
	error
	UserMessage() string
}

type StatusError struct {
	Code    int
	Message string
	Err     error
}

func NewHTTPError(code int) *StatusError {
	return &StatusError{Code: code}
}

func NewUserError(code int, message string, err error) *StatusError {
	return &StatusError{Code: code, Message: message, Err: err}
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode())
}

func (e *StatusError) Unwrap() error { return e.Err }

func (e *StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

func (e *StatusError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode())
}

var (
	_ HTTPError       = (*StatusError)(nil)
	_ UserFacingError = (*StatusError)(nil)
)

// HandleError writes a plain-text error response. Errors that carry neither a
// status code nor a user message are logged as unexpected.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := http.StatusInternalServerError

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		statusCode = httpErr.StatusCode()
	}

	message := http.StatusText(statusCode)

	var userFacingErr UserFacingError
	if errors.As(err, &userFacingErr) {
		message = userFacingErr.UserMessage()
	}

	if httpErr == nil && userFacingErr == nil {
		slog.ErrorContext(r.Context(), "unexpected error", slog.Any("error", errors.WithStack(err)))
	}

	http.Error(w, message, statusCode)
}
