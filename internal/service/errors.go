package service

import (
	"context"
	"errors"
	"net/http"
)

// ErrInvalidIngredients is returned before any outbound call when the ingredient
// text is empty or too short.
var ErrInvalidIngredients = errors.New("ingredients must be at least 3 characters")

// Provider error codes
const (
	ErrCodeAuthentication = "authentication_error"
	ErrCodeRateLimit      = "rate_limit_exceeded"
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeServerError    = "server_error"
	ErrCodeUnreachable    = "unreachable"
	ErrCodeTimeout        = "timeout"
)

// ProviderError is a failure reported by, or on the way to, the completion API
type ProviderError struct {
	Code       string
	StatusCode int // zero when no HTTP response was received
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a typed provider error
func NewProviderError(code string, status int, message string, err error) *ProviderError {
	return &ProviderError{Code: code, StatusCode: status, Message: message, Err: err}
}

// IsProviderError reports whether err came from the completion API client
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrCodeAuthentication
	case status == http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case status >= 500:
		return ErrCodeServerError
	default:
		return ErrCodeInvalidRequest
	}
}

// mapError wraps a transport failure
func mapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewProviderError(ErrCodeTimeout, 0, "completion request timed out or was cancelled", err)
	}
	return NewProviderError(ErrCodeUnreachable, 0, "failed to send request", err)
}
