package reporter

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StatusError is returned when the service answers with an error status
// that the retry policy did not recover: any non-2xx other than a
// rate-limit retried within budget, or a 429 after the budget is spent.
type StatusError struct {
	// Code is the HTTP status code of the final response.
	Code int

	// Body is the response body, reduced to the service's detail message
	// when one could be extracted.
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("store request failed with status %d (empty error body)", e.Code)
	}

	return fmt.Sprintf("store request failed with status %d: %s", e.Code, e.Body)
}

// newStatusError extracts the service's detail message from a JSON error
// body when present, falling back to the raw body.
func newStatusError(code int, body []byte) *StatusError {
	msg := strings.TrimSpace(string(body))

	if msg != "" {
		var parsed struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
			msg = parsed.Detail
		}
	}

	return &StatusError{Code: code, Body: msg}
}
