package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/lepinkainen/marquee/internal/config"
	"github.com/lepinkainen/marquee/internal/errors"
	"github.com/lepinkainen/marquee/internal/movie"
	"github.com/lepinkainen/marquee/internal/ratelimit"
	"github.com/spf13/viper"
)

// maxBodySize caps how much of a response is read. OMDB documents are a few KB.
const maxBodySize = 1 << 20

var (
	omdbRateLimiter *ratelimit.Limiter
	omdbLimiterOnce sync.Once
)

// sharedLimiter returns the process-wide OMDB limiter.
// OMDB free tier allows 1000 requests/day; the default is 1 req/sec.
func sharedLimiter() *ratelimit.Limiter {
	omdbLimiterOnce.Do(func() {
		rps := viper.GetFloat64("omdb.requests_per_second")
		if rps <= 0 {
			rps = config.DefaultRequestsPerSecond
		}
		omdbRateLimiter = ratelimit.New("OMDB", rps)
	})
	return omdbRateLimiter
}

// GetAPIKey retrieves the OMDB API key from omdb.api_key, falling back to
// the OMDB_API_KEY environment variable.
func GetAPIKey() (string, error) {
	if apiKey := viper.GetString("omdb.api_key"); apiKey != "" {
		return apiKey, nil
	}
	if apiKey := os.Getenv("OMDB_API_KEY"); apiKey != "" {
		return apiKey, nil
	}
	return "", fmt.Errorf("OMDB API key not found in config (set omdb.api_key or OMDB_API_KEY)")
}

// Client talks to the OMDB HTTP API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *ratelimit.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mostly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLimiter replaces the shared OMDB rate limiter.
func WithLimiter(limiter *ratelimit.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// NewClient creates a client using omdb.base_url and omdb.timeout unless
// overridden by opts.
func NewClient(apiKey string, opts ...Option) *Client {
	baseURL := viper.GetString("omdb.base_url")
	if baseURL == "" {
		baseURL = config.DefaultOMDBBaseURL
	}

	c := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: config.RequestTimeout()},
		limiter:    sharedLimiter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchDocument performs one OMDB lookup and returns the raw document.
func (c *Client) FetchDocument(ctx context.Context, q Query) (movie.Document, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("Fetching OMDB document", "query", q.String())

	body, status, err := c.get(ctx, q.Values().Encode())
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, statusError(body, status, q.String())
	}

	return parseDocument(body, status, q.String())
}

type searchResponse struct {
	Search       []SearchResult `json:"Search"`
	TotalResults string         `json:"totalResults"`
}

// SearchResult is a single hit from an OMDB search.
type SearchResult struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// Search runs an OMDB free-text search through omdb_search_cache.
// An empty result set is a NotFoundError.
func (c *Client) Search(ctx context.Context, q SearchQuery) ([]SearchResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	results, fromCache, err := GetCachedSearch(q, func() ([]SearchResult, error) {
		return c.fetchSearch(ctx, q)
	})
	if fromCache {
		slog.Debug("Using cached OMDB search", "query", q.Query)
	}
	return results, err
}

func (c *Client) fetchSearch(ctx context.Context, q SearchQuery) ([]SearchResult, error) {
	slog.Debug("Searching OMDB", "query", q.Query, "year", q.Year, "type", q.Type)

	body, status, err := c.get(ctx, q.Values().Encode())
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, statusError(body, status, q.Query)
	}

	// validates the envelope
	if _, err := parseDocument(body, status, q.Query); err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	if len(resp.Search) == 0 {
		return nil, errors.NewNotFoundError(q.Query, "")
	}

	return resp.Search, nil
}

// Result is a decoded lookup together with the document it came from.
type Result struct {
	Movie    movie.Movie
	IMDbID   string
	Document movie.Document
}

// Lookup fetches (through the cache) and decodes a single title. Decoding
// errors are returned unchanged, so callers can tell them apart with
// errors.Is and movie.IsFault.
func (c *Client) Lookup(ctx context.Context, q Query) (Result, error) {
	if err := q.Validate(); err != nil {
		return Result{}, err
	}

	doc, fromCache, err := GetCachedDocument(q, func() (movie.Document, error) {
		return c.FetchDocument(ctx, q)
	})
	if err != nil {
		return Result{}, err
	}
	if fromCache {
		slog.Debug("Using cached OMDB document", "query", q.String())
	}

	m, err := movie.Decode(doc)
	if err != nil {
		return Result{}, err
	}

	imdbID, _ := doc["imdbID"].(string)
	return Result{Movie: m, IMDbID: imdbID, Document: doc}, nil
}

// Movie is Lookup without the source document.
func (c *Client) Movie(ctx context.Context, q Query) (movie.Movie, error) {
	res, err := c.Lookup(ctx, q)
	return res.Movie, err
}

func (c *Client) get(ctx context.Context, rawQuery string) ([]byte, int, error) {
	if c.apiKey == "" {
		return nil, 0, errors.NewAPIError(http.StatusUnauthorized, "No API key provided.")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, fmt.Errorf("rate limit wait failed: %w", err)
	}

	url := fmt.Sprintf("%s/?%s&apikey=%s", c.baseURL, rawQuery, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch data: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	return body, resp.StatusCode, nil
}

// statusError inspects a non-200 body for an OMDB error envelope.
func statusError(body []byte, status int, query string) error {
	var doc movie.Document
	if err := json.Unmarshal(body, &doc); err == nil {
		if err := responseError(doc, status, query); err != nil {
			return err
		}
	} else {
		slog.Warn("Failed to read error response body", "status", status, "error", err)
	}

	if status == http.StatusUnauthorized || status >= http.StatusInternalServerError {
		return errors.NewAPIError(status, "")
	}
	return fmt.Errorf("OMDB API returned non-200 status code: %d for %s", status, query)
}
