package adapter

import (
	"errors"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	ErrInvalidBaseURL     = errors.New("invalid base URL")
	ErrUnexpectedLocation = errors.New("unexpected Location header")
)

// APIError is a non-2xx response from the course catalog API. It unwraps to
// the sentinel for its status code, so callers can match with [errors.Is].
type APIError struct {
	StatusCode int

	// Messages holds the server's explanation: the single "error" or
	// "message" text, or every entry of a validation "errors" list.
	Messages []string

	kind error
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + strings.Join(e.Messages, "; ")
}

func (e *APIError) Unwrap() error {
	return e.kind
}
