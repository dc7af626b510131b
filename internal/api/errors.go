package api

import (
	"errors"
	"fmt"
)

// Common API errors, mapped from response status codes.
var (
	// ErrBadRequest is returned when the request was malformed or missing a field.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized is returned when credentials are wrong.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a resource already exists.
	ErrConflict = errors.New("conflict — resource already exists")
)

// StatusError is returned for non-2xx responses that do not map to one
// of the sentinel errors above.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error %d", e.Code)
	}
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}
