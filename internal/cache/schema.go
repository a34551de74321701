package cache

// SQL schemas for cache tables. Every table keys on "cache_key" and records
// when the entry was written plus an optional per-entry TTL.

// OMDBCacheSchema holds raw OMDB title documents keyed by query.
const OMDBCacheSchema = `
CREATE TABLE IF NOT EXISTS omdb_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	ttl_seconds INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_omdb_cached_at ON omdb_cache(cached_at);
`

// OMDBSearchCacheSchema holds OMDB search result pages keyed by query.
const OMDBSearchCacheSchema = `
CREATE TABLE IF NOT EXISTS omdb_search_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	ttl_seconds INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_omdb_search_cached_at ON omdb_search_cache(cached_at);
`

// AllCacheSchemas contains all cache table schemas for easy initialization
var AllCacheSchemas = []string{
	OMDBCacheSchema,
	OMDBSearchCacheSchema,
}

// ValidCacheTableNames is the whitelist of allowed cache table names
var ValidCacheTableNames = map[string]bool{
	"omdb_cache":        true,
	"omdb_search_cache": true,
}
