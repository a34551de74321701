package omdb

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/lepinkainen/marquee/internal/errors"
	"github.com/lepinkainen/marquee/internal/movie"
)

const requestLimitMessage = "Request limit reached!"

// ParseDocument turns an OMDB response body into a movie.Document.
// The body must be a JSON object. Bodies with "Response": "False" become a
// NotFoundError, RateLimitError or APIError.
func ParseDocument(body []byte) (movie.Document, error) {
	return parseDocument(body, http.StatusOK, "")
}

func parseDocument(body []byte, statusCode int, query string) (movie.Document, error) {
	var doc movie.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("OMDB response is not a JSON object: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("OMDB response is not a JSON object: null")
	}

	if err := responseError(doc, statusCode, query); err != nil {
		return nil, err
	}
	return doc, nil
}

// responseError maps an OMDB error envelope to a typed error. It returns nil
// for documents that do not carry "Response": "False".
func responseError(doc movie.Document, statusCode int, query string) error {
	response, _ := doc["Response"].(string)
	if !strings.EqualFold(response, "False") {
		return nil
	}

	message, _ := doc["Error"].(string)
	switch {
	case message == requestLimitMessage:
		return errors.NewRateLimitError("OMDB API request limit reached")
	case strings.Contains(strings.ToLower(message), "not found"):
		return errors.NewNotFoundError(query, message)
	case strings.Contains(strings.ToLower(message), "invalid api key"):
		return errors.NewAPIError(http.StatusUnauthorized, message)
	default:
		return errors.NewAPIError(statusCode, message)
	}
}
