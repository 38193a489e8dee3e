package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// APIError is the canonical error payload of the atlas-auth backend:
// {name, message, status_code, timestamp, issues}. Every failed upstream
// call (timeout, refused connection, non-2xx status, decode failure) is
// normalized to this one type, so callers branch with errors.As instead of
// matching transport exception classes.
type APIError struct {
	Name       string `json:"name"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
	Timestamp  int64  `json:"timestamp"`
	Issues     any    `json:"issues,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Name, e.StatusCode, e.Message)
}

// ServiceUnavailable synthesizes the APIError used when a failed call carries
// no response body at all (connection refused, pure timeout).
func ServiceUnavailable(url string) *APIError {
	return &APIError{
		Name:       "ServiceUnavailableError",
		Message:    fmt.Sprintf("service unavailable: %s", url),
		StatusCode: http.StatusServiceUnavailable,
		Timestamp:  time.Now().Unix(),
	}
}

// AsAPIError unwraps err into an *APIError when one is present in its chain.
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
