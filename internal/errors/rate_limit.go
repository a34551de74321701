package errors

import (
	stdErrors "errors"
	"fmt"
	"time"
)

// RateLimitError is returned when OMDB reports that the request quota is used up.
type RateLimitError struct {
	Message    string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s (retry after %s)", e.Message, e.RetryAfter)
	}
	return e.Message
}

// NewRateLimitError creates a new RateLimitError with the given message
func NewRateLimitError(message string) *RateLimitError {
	return &RateLimitError{Message: message}
}

// NewRateLimitErrorWithRetry creates a RateLimitError carrying a Retry-After hint.
func NewRateLimitErrorWithRetry(message string, retryAfter time.Duration) *RateLimitError {
	return &RateLimitError{Message: message, RetryAfter: retryAfter}
}

// IsRateLimitError checks if error is a RateLimitError, even when wrapped
func IsRateLimitError(err error) bool {
	var rateErr *RateLimitError
	return stdErrors.As(err, &rateErr)
}
