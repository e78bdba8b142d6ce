package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")

	ErrEmptyAddress = errors.New("empty address")
)

// APIError is a non-2xx answer of the event keeper server. It unwraps to
// the sentinel matching its status code, if any.
type APIError struct {
	StatusCode int

	// Message is the server supplied message.
	Message string

	// Field names the rejected request field of a validation failure.
	Field string

	// RetryAfter is the Retry-After value of a 429 answer, in seconds.
	RetryAfter int

	sentinel error
}

func (e *APIError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.sentinel != nil {
		return fmt.Sprintf("%v (http %d): %s", e.sentinel, e.StatusCode, msg)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, msg)
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}
