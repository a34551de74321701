package omdb

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query identifies a single OMDB title lookup, by IMDb ID or by title.
type Query struct {
	Title  string
	Year   int
	IMDbID string
	Plot   string // "short" or "full"; empty means the API default
}

// Validate requires either a title or an IMDb ID.
func (q Query) Validate() error {
	if strings.TrimSpace(q.Title) == "" && strings.TrimSpace(q.IMDbID) == "" {
		return fmt.Errorf("query needs a title or an IMDb ID")
	}
	switch q.Plot {
	case "", "short", "full":
	default:
		return fmt.Errorf("invalid plot length %q (want short or full)", q.Plot)
	}
	return nil
}

// Values returns the OMDB query parameters, without the API key.
// An IMDb ID takes precedence over a title.
func (q Query) Values() url.Values {
	v := url.Values{}
	if id := strings.TrimSpace(q.IMDbID); id != "" {
		v.Set("i", id)
	} else {
		v.Set("t", strings.TrimSpace(q.Title))
		if q.Year > 0 {
			v.Set("y", strconv.Itoa(q.Year))
		}
	}
	if q.Plot != "" {
		v.Set("plot", q.Plot)
	}
	return v
}

// CacheKey is stable across equivalent queries: titles are case-folded.
func (q Query) CacheKey() string {
	v := q.Values()
	if t := v.Get("t"); t != "" {
		v.Set("t", strings.ToLower(t))
	}
	return v.Encode()
}

func (q Query) String() string {
	if q.IMDbID != "" {
		return q.IMDbID
	}
	if q.Year > 0 {
		return fmt.Sprintf("%s (%d)", q.Title, q.Year)
	}
	return q.Title
}

// SearchQuery is an OMDB free-text search.
type SearchQuery struct {
	Query string
	Year  int
	Type  string // movie, series or episode
	Page  int
}

// Validate requires a non-empty search string and a known type.
func (q SearchQuery) Validate() error {
	if strings.TrimSpace(q.Query) == "" {
		return fmt.Errorf("search query is empty")
	}
	switch q.Type {
	case "", "movie", "series", "episode":
	default:
		return fmt.Errorf("invalid search type %q (want movie, series or episode)", q.Type)
	}
	return nil
}

// Values returns the OMDB search parameters, without the API key.
func (q SearchQuery) Values() url.Values {
	v := url.Values{}
	v.Set("s", strings.TrimSpace(q.Query))
	if q.Year > 0 {
		v.Set("y", strconv.Itoa(q.Year))
	}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	if q.Page > 1 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}

// CacheKey is the case-folded encoded search.
func (q SearchQuery) CacheKey() string {
	v := q.Values()
	v.Set("s", strings.ToLower(v.Get("s")))
	return v.Encode()
}
