package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks transport-level failures: timeouts, refused
	// connections, no network. These surface once as a generic
	// connectivity message and are never retried.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized matches any 401 application error via errors.Is.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is an application-level failure: the backend answered with a 4xx or
// 5xx status and, usually, a structured message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Is lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}
