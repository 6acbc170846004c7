package gateway

import "fmt"

// APIError is a backend-rejected request: the server responded with a
// non-2xx status and (usually) a structured error payload. Transport-level
// failures never produce an APIError; they surface as wrapped errors from
// the underlying http client.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
	Status     string `json:"status"`
	Details    string `json:"details"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: http %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: http %d: %s", e.StatusCode, e.Message)
}

// MessageOr returns the backend-supplied error message, or fallback when
// the payload carried none.
func (e *APIError) MessageOr(fallback string) string {
	if e.Message == "" {
		return fallback
	}
	return e.Message
}
