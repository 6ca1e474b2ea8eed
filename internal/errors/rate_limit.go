package errors

import (
	stdErrors "errors"
	"fmt"
	"time"
)

// RateLimitError represents an HTTP 429 (or equivalent) answer from a provider.
type RateLimitError struct {
	Source     string
	Message    string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if e.Source != "" {
		msg = e.Source + ": " + msg
	}
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s (retry after %s)", msg, e.RetryAfter)
	}
	return msg
}

// NewRateLimitError creates a new RateLimitError with the given message
func NewRateLimitError(source, message string) *RateLimitError {
	return &RateLimitError{Source: source, Message: message}
}

// NewRateLimitErrorWithRetry creates a RateLimitError carrying the provider's Retry-After hint.
func NewRateLimitErrorWithRetry(source, message string, retryAfter time.Duration) *RateLimitError {
	return &RateLimitError{Source: source, Message: message, RetryAfter: retryAfter}
}

// IsRateLimitError reports whether err is a RateLimitError (even when wrapped).
func IsRateLimitError(err error) bool {
	var rl *RateLimitError
	return stdErrors.As(err, &rl)
}
