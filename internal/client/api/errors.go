package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnavailable marks transport-level failures: the request never got
	// a response from the server.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks an authorization-failure response. It feeds the
	// session-expiry path regardless of which operation triggered it.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is any other non-2xx response, carrying the message extracted
// from the server's error body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

// extractMessage pulls a human-readable message out of an error response
// body. Lookup precedence: detail, error, message, then the first entry of
// an errors object (first element when the entry is a list). Returns ""
// when nothing usable is found.
func extractMessage(body []byte) string {
	var payload struct {
		Detail  string         `json:"detail"`
		Error   string         `json:"error"`
		Message string         `json:"message"`
		Errors  map[string]any `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	switch {
	case payload.Detail != "":
		return payload.Detail
	case payload.Error != "":
		return payload.Error
	case payload.Message != "":
		return payload.Message
	}

	if len(payload.Errors) == 0 {
		return ""
	}

	// Map order is not stable in Go; sort keys so the pick is deterministic.
	keys := make([]string, 0, len(payload.Errors))
	for k := range payload.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	first := payload.Errors[keys[0]]
	if list, ok := first.([]any); ok {
		if len(list) == 0 {
			return ""
		}
		first = list[0]
	}
	if s, ok := first.(string); ok {
		return s
	}
	return fmt.Sprint(first)
}
