package api

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnreachable means the backend could not be reached at all
	// (DNS failure, connection refused, no route).
	ErrUnreachable = errors.New("backend unreachable: check the API base URL and your network connection")

	// ErrTimeout means the request exceeded the client timeout.
	ErrTimeout = errors.New("request timed out")

	// ErrUnauthorized means the backend rejected the credentials (HTTP 401).
	// By the time a caller sees this error the stored credentials have
	// already been purged and the auth-lost handler has fired.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBadResponse means the reply was not the JSON envelope the API
	// speaks. In practice this signals a base URL pointing at something
	// other than the API.
	ErrBadResponse = errors.New("unexpected response from server: the API base URL may be pointing at the wrong service")
)

// APIError is any non-success response that is not a validation failure.
// Message carries the backend's human-readable message, or a generic
// fallback when the backend returned no body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// ValidationError is a 422 response carrying field-level messages.
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if msgs := e.Fields[k]; len(msgs) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", k, msgs[0]))
		}
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
}
