package omdb

import (
	stdErrors "errors"
	"log/slog"
	"time"

	"github.com/lepinkainen/marquee/internal/cache"
	"github.com/lepinkainen/marquee/internal/errors"
	"github.com/lepinkainen/marquee/internal/movie"
)

const (
	documentTable = "omdb_cache"
	searchTable   = "omdb_search_cache"

	// documentTTL is how long a successful lookup stays fresh, unless
	// cache.ttl is shorter.
	documentTTL = 24 * time.Hour
)

// cachedDocument is what omdb_cache stores. Not-found answers are kept too,
// so repeated misses cost no requests for NegativeCacheTTL.
type cachedDocument struct {
	Document movie.Document `json:"document,omitempty"`
	NotFound bool           `json:"not_found,omitempty"`
	Message  string         `json:"message,omitempty"`
}

type cachedSearch struct {
	Results  []SearchResult `json:"results,omitempty"`
	NotFound bool           `json:"not_found,omitempty"`
}

// GetCachedDocument returns the document for q from omdb_cache, calling
// fetch on a miss. A cached not-found answer is returned as a NotFoundError.
// Once the API has reported its request limit no further fetches are made.
func GetCachedDocument(q Query, fetch func() (movie.Document, error)) (movie.Document, bool, error) {
	if !RequestsAllowed() {
		return nil, false, errors.NewRateLimitError("OMDB API request limit reached")
	}

	key := q.CacheKey()
	result, fromCache, err := cache.GetOrFetchWithTTL(documentTable, key, func() (cachedDocument, error) {
		doc, fetchErr := fetch()
		if fetchErr != nil {
			var nf *errors.NotFoundError
			if stdErrors.As(fetchErr, &nf) {
				return cachedDocument{NotFound: true, Message: nf.Message}, nil
			}
			if errors.IsRateLimitError(fetchErr) {
				MarkRateLimitReached()
				return cachedDocument{}, fetchErr
			}
			slog.Warn("Failed to fetch from OMDB", "query", q.String(), "error", fetchErr)
			return cachedDocument{}, fetchErr
		}
		return cachedDocument{Document: doc}, nil
	}, documentCacheTTL)
	if err != nil {
		return nil, false, err
	}

	if result.NotFound {
		return nil, fromCache, errors.NewNotFoundError(q.String(), result.Message)
	}
	return result.Document, fromCache, nil
}

func documentCacheTTL(r cachedDocument) time.Duration {
	if r.NotFound {
		return cache.NegativeCacheTTL
	}
	return min(documentTTL, cache.ConfiguredTTL())
}

// GetCachedSearch is GetCachedDocument for search results in omdb_search_cache.
func GetCachedSearch(q SearchQuery, fetch func() ([]SearchResult, error)) ([]SearchResult, bool, error) {
	if !RequestsAllowed() {
		return nil, false, errors.NewRateLimitError("OMDB API request limit reached")
	}

	result, fromCache, err := cache.GetOrFetchWithTTL(searchTable, q.CacheKey(), func() (cachedSearch, error) {
		results, fetchErr := fetch()
		if fetchErr != nil {
			if errors.IsNotFoundError(fetchErr) {
				return cachedSearch{NotFound: true}, nil
			}
			if errors.IsRateLimitError(fetchErr) {
				MarkRateLimitReached()
			}
			return cachedSearch{}, fetchErr
		}
		return cachedSearch{Results: results}, nil
	}, cache.SelectNegativeCacheTTL(func(r cachedSearch) bool { return r.NotFound }))
	if err != nil {
		return nil, false, err
	}

	if result.NotFound {
		return nil, fromCache, errors.NewNotFoundError(q.Query, "")
	}
	return result.Results, fromCache, nil
}
