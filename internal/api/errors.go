package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the backend rejects the ambient
	// session credential (HTTP 401). A restore miss surfaces as this error.
	ErrUnauthorized = errors.New("not authenticated")

	// ErrNotFound is returned for a missing resource (HTTP 404).
	ErrNotFound = errors.New("not found")
)

// StatusError carries a non-2xx HTTP status together with the backend's
// detail message, for statuses without a dedicated sentinel.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}
