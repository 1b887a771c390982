package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionExpired is returned when any authenticated call gets a 401.
// The stored token has already been cleared by the time callers see it.
var ErrSessionExpired = errors.New("session expired")

// APIError is a non-2xx response from the backend, carrying whatever
// the error envelope contained plus a generic fallback message.
type APIError struct {
	Status  int
	Message string
	Details map[string]any
}

func (e *APIError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s (status %d): %v", e.Message, e.Status, e.Details)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// errorEnvelope is the backend's error shape: {"error": {"message", "details"}}.
type errorEnvelope struct {
	Error struct {
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

// decodeAPIError unwraps the error envelope, falling back to a generic
// per-status message when the body is empty or not in envelope form.
func decodeAPIError(status int, body []byte) error {
	apiErr := &APIError{Status: status}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		apiErr.Message = env.Error.Message
		apiErr.Details = env.Error.Details
		return apiErr
	}

	apiErr.Message = genericMessage(status)
	return apiErr
}

func genericMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Invalid request. Please check your input."
	case http.StatusUnauthorized:
		return "Invalid credentials."
	case http.StatusForbidden:
		return "You do not have permission to perform this action."
	case http.StatusNotFound:
		return "The requested resource was not found."
	case http.StatusConflict:
		return "This conflicts with the current state. Refresh and try again."
	case http.StatusTooManyRequests:
		return "Too many requests. Please slow down."
	default:
		return "Something went wrong. Please try again later."
	}
}

// ErrorMessage returns a user-facing message for any error produced by
// this package, suitable for printing directly.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrSessionExpired) {
		return "Your session has expired. Please log in again."
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Unable to reach the server. Check your connection and try again."
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsForbidden reports whether err is a 403 from the backend.
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden
}

// IsValidation reports whether err is a 400 carrying field details.
func IsValidation(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest
}
