package api

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError represents a non-2xx HTTP response from the backend. Detail
// carries the backend's "detail" message when present.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// IsUnauthorized reports whether err is an HTTP 401 response. Callers treat
// this specially: the stored token is stale and the user must log in again.
func IsUnauthorized(err error) bool {
	var serr *StatusError
	return errors.As(err, &serr) && serr.Status == http.StatusUnauthorized
}

// IsNotFound reports whether err is an HTTP 404 response.
func IsNotFound(err error) bool {
	var serr *StatusError
	return errors.As(err, &serr) && serr.Status == http.StatusNotFound
}
