package api

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError is a non-2xx response from the admin API.
type RequestError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// ConnectionError means the request never reached the server
// (refused, DNS, timeout, canceled).
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to admin API at %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 response, typically a stale
// or missing bearer token.
func IsUnauthorized(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusUnauthorized
}
