package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"
)

// NotFoundError means the API answered but has no entry for the query.
type NotFoundError struct {
	Query   string
	Message string // message from the API, e.g. "Movie not found!"
}

func (e *NotFoundError) Error() string {
	if e.Query == "" {
		return fmt.Sprintf("not found: %s", e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("not found: %s: %s", e.Query, e.Message)
	}
	return fmt.Sprintf("not found: %s", e.Query)
}

// NewNotFoundError creates a NotFoundError for query.
func NewNotFoundError(query, message string) *NotFoundError {
	return &NotFoundError{Query: query, Message: message}
}

// IsNotFoundError checks if error is a NotFoundError
func IsNotFoundError(err error) bool {
	var nf *NotFoundError
	return stdErrors.As(err, &nf)
}

// APIError is an error reported by the OMDB API itself (bad key, bad request, ...).
type APIError struct {
	Message    string
	StatusCode int
	APIMessage string // Error field of the response body if available
}

func (e *APIError) Error() string {
	if e.APIMessage != "" {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Message, e.StatusCode, e.APIMessage)
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

// NewAPIError creates an APIError with a message chosen from the status code.
func NewAPIError(statusCode int, apiMessage string) *APIError {
	var message string
	apiLower := strings.ToLower(apiMessage)

	switch {
	case statusCode == 401 || strings.Contains(apiLower, "api key"):
		message = "Invalid or missing OMDB API key"
	case statusCode >= 500:
		message = "OMDB API unavailable"
	default:
		message = "OMDB API error"
	}

	return &APIError{
		Message:    message,
		StatusCode: statusCode,
		APIMessage: apiMessage,
	}
}

// IsAPIError checks if error is an APIError
func IsAPIError(err error) bool {
	var apiErr *APIError
	return stdErrors.As(err, &apiErr)
}
