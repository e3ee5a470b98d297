package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Messages shown to the user when the server gives nothing better.
const (
	MsgConnection = "Connection error"
	MsgNotFound   = "Task not found (it may have been deleted)"
	MsgUnknown    = "Unknown error"
)

// APIError represents a non-2xx answer from the planner API.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

// newAPIError builds an APIError, preferring the JSON "error" field of the body.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error != "":
			msg = payload.Error
		case payload.Message != "":
			msg = payload.Message
		}
	}
	return &APIError{StatusCode: status, Message: msg}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound returns true if the error is a 404 Not Found error.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized returns true if the error is a 401 Unauthorized error.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401
}

// IsValidation returns true when the server rejected the payload.
func (e *APIError) IsValidation() bool {
	return e.StatusCode == 400 || e.StatusCode == 422
}

// IsServerError returns true if the error is a 5xx server error.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// NetworkError means the request never got a readable answer.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsAPIError checks if an error is (or wraps) an APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// IsNetworkError reports whether err is (or wraps) a NetworkError.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// UserMessage turns an error from this package into text fit for the status bar
// or the form. Validation messages from the server are passed through verbatim.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if IsNetworkError(err) {
		return MsgConnection
	}
	if apiErr, ok := IsAPIError(err); ok {
		if apiErr.IsNotFound() {
			return MsgNotFound
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return MsgUnknown
	}
	return err.Error()
}
