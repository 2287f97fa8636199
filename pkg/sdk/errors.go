package pokedex

import (
	"errors"
	"fmt"
)

var (
	// ErrFetch signals a transport failure or non-success status from the API.
	ErrFetch = errors.New("pokedex: fetch failed")
	// ErrDecode signals a response body that is not the expected shape.
	ErrDecode = errors.New("pokedex: decode failed")
)

// APIError carries the status and error body of a non-success response.
// It matches ErrFetch with errors.Is.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: status %d: %s: %s", ErrFetch.Error(), e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: status %d", ErrFetch.Error(), e.StatusCode)
}

func (e *APIError) Unwrap() error { return ErrFetch }
