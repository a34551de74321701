package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/spf13/viper"
	_ "modernc.org/sqlite"
)

const (
	// DefaultCacheTTL is the default time-to-live for cached entries (30 days)
	DefaultCacheTTL = 720 * time.Hour
	// NegativeCacheTTL is the TTL for "not found" responses (7 days)
	NegativeCacheTTL = 168 * time.Hour
)

// FetchFunc represents a function that fetches data from an external source
type FetchFunc[T any] func() (T, error)

// CacheDB manages the SQLite database connection for caching
type CacheDB struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string
}

var (
	globalCache     *CacheDB
	globalCacheOnce sync.Once
	globalCacheErr  error
)

// ResetGlobalCache closes the current global cache so the next call to
// GetGlobalCache opens the database again. The CLI calls it before exiting.
func ResetGlobalCache() error {
	if globalCache != nil {
		if err := globalCache.Close(); err != nil {
			return err
		}
	}
	globalCache = nil
	globalCacheErr = nil
	globalCacheOnce = sync.Once{}
	return nil
}

// GetGlobalCache returns the process-wide cache opened from cache.dbfile.
func GetGlobalCache() (*CacheDB, error) {
	globalCacheOnce.Do(func() {
		dbPath := viper.GetString("cache.dbfile")
		if dbPath == "" {
			dbPath = "./cache.db"
		}
		db, err := NewCacheDB(dbPath)
		if err != nil {
			globalCacheErr = err
			return
		}
		for _, schema := range AllCacheSchemas {
			if err := db.CreateTable(schema); err != nil {
				_ = db.Close()
				globalCacheErr = fmt.Errorf("failed to create cache table: %w", err)
				return
			}
		}
		globalCache = db
	})
	if globalCacheErr != nil {
		return nil, globalCacheErr
	}
	return globalCache, nil
}

// NewCacheDB creates a new CacheDB instance and opens the database connection
func NewCacheDB(dbPath string) (*CacheDB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		closeErr := db.Close()
		return nil, errors.Join(fmt.Errorf("failed to connect to cache database: %w", err), closeErr)
	}

	return &CacheDB{
		db:   db,
		path: dbPath,
	}, nil
}

// Path returns the database file the cache was opened from.
func (c *CacheDB) Path() string {
	return c.path
}

// CreateTable creates a table using the provided schema
func (c *CacheDB) CreateTable(schema string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Close closes the database connection
func (c *CacheDB) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Get retrieves a cached value. An entry stored with its own TTL expires by
// that TTL; entries stored with ttl 0 use defaultTTL.
// Returns the cached data, whether it was found and fresh, and any error.
func (c *CacheDB) Get(tableName, key string, defaultTTL time.Duration) (string, bool, error) {
	if err := validateTableName(tableName); err != nil {
		return "", false, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	query := fmt.Sprintf(`
		SELECT data, cached_at, ttl_seconds
		FROM %s
		WHERE cache_key = ?
	`, tableName)

	var data string
	var cachedAt time.Time
	var ttlSeconds int64
	err := c.db.QueryRow(query, key).Scan(&data, &cachedAt, &ttlSeconds)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query cache: %w", err)
	}

	ttl := defaultTTL
	if ttlSeconds > 0 {
		ttl = time.Duration(ttlSeconds) * time.Second
	}

	age := time.Now().UTC().Sub(cachedAt)
	if age > ttl {
		slog.Debug("Cache expired", "table", tableName, "key", key, "age", age)
		return "", false, nil
	}

	return data, true, nil
}

// Set stores a value in the cache. A ttl of 0 means the reader's default TTL applies.
func (c *CacheDB) Set(tableName, key, data string, ttl time.Duration) error {
	if err := validateTableName(tableName); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	query := fmt.Sprintf(`
		INSERT OR REPLACE INTO %s (cache_key, data, cached_at, ttl_seconds)
		VALUES (?, ?, ?, ?)
	`, tableName)

	if _, err := c.db.Exec(query, key, data, time.Now().UTC(), int64(ttl/time.Second)); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

// ClearExpired removes entries older than ttl from the specified table
func (c *CacheDB) ClearExpired(tableName string, ttl time.Duration) error {
	if err := validateTableName(tableName); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := time.Now().UTC().Add(-ttl)
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE cached_at < ?
	`, tableName)

	result, err := c.db.Exec(query, cutoff)
	if err != nil {
		return fmt.Errorf("failed to clear expired cache: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows > 0 {
		slog.Info("Cleared expired cache entries", "table", tableName, "count", rows)
	}

	return nil
}

// ClearAll removes all cache entries from the specified table
func (c *CacheDB) ClearAll(tableName string) error {
	_, err := c.InvalidateSource(tableName)
	return err
}

// InvalidateSource deletes all entries from the specified cache table and
// returns the number of rows deleted.
func (c *CacheDB) InvalidateSource(tableName string) (int64, error) {
	if err := validateTableName(tableName); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	result, err := c.db.Exec(fmt.Sprintf("DELETE FROM %s", tableName))
	if err != nil {
		return 0, fmt.Errorf("failed to delete cache entries: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	slog.Debug("Cache table cleared", "table", tableName, "rows_deleted", rowsAffected)
	return rowsAffected, nil
}

// CacheExists checks if a cache entry exists for the given key, fresh or not
func (c *CacheDB) CacheExists(tableName, key string) bool {
	if err := validateTableName(tableName); err != nil {
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE cache_key = ? LIMIT 1`, tableName)

	var exists int
	return c.db.QueryRow(query, key).Scan(&exists) == nil
}

// validateTableName rejects table names outside the whitelist, since table
// names are interpolated into SQL.
func validateTableName(tableName string) error {
	if !ValidCacheTableNames[tableName] {
		return fmt.Errorf("invalid cache table name: %s", tableName)
	}
	return nil
}

// GetOrFetchWithTTL retrieves data from cache or fetches it using the
// provided function. ttlSelector picks the TTL stored with a fetched value;
// a nil selector, or a TTL of 0, leaves the entry on cache.ttl as read at
// lookup time.
func GetOrFetchWithTTL[T any](tableName, cacheKey string, fetchFunc FetchFunc[T], ttlSelector func(T) time.Duration) (T, bool, error) {
	return getOrFetch(tableName, cacheKey, fetchFunc, ttlSelector)
}

// SelectNegativeCacheTTL returns a TTL selector that stores "not found"
// results for NegativeCacheTTL and leaves everything else on cache.ttl.
func SelectNegativeCacheTTL[T any](isNotFound func(T) bool) func(T) time.Duration {
	return func(result T) time.Duration {
		if isNotFound(result) {
			return NegativeCacheTTL
		}
		return 0
	}
}

// ConfiguredTTL reads cache.ttl, falling back to DefaultCacheTTL.
func ConfiguredTTL() time.Duration {
	ttlStr := viper.GetString("cache.ttl")
	if ttlStr == "" {
		return DefaultCacheTTL
	}
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		slog.Warn("Invalid cache TTL, using default", "ttl", ttlStr, "error", err)
		return DefaultCacheTTL
	}
	return ttl
}

func getOrFetch[T any](tableName, cacheKey string, fetchFunc FetchFunc[T], ttlSelector func(T) time.Duration) (T, bool, error) {
	var zero T

	cache, err := GetGlobalCache()
	if err != nil {
		slog.Warn("Failed to initialize cache, fetching directly", "error", err)
		data, fetchErr := fetchFunc()
		return data, false, fetchErr
	}

	cached, fromCache, err := cache.Get(tableName, cacheKey, ConfiguredTTL())
	if err == nil && fromCache {
		var result T
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			slog.Debug("Cache hit", "table", tableName, "key", cacheKey)
			return result, true, nil
		}
		slog.Warn("Failed to unmarshal cached data, will refetch", "table", tableName, "key", cacheKey, "error", err)
	}

	slog.Debug("Cache miss, fetching data", "table", tableName, "key", cacheKey)
	data, err := fetchFunc()
	if err != nil {
		return zero, false, fmt.Errorf("failed to fetch data: %w", err)
	}

	var ttl time.Duration
	if ttlSelector != nil {
		ttl = ttlSelector(data)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		slog.Warn("Failed to marshal data for caching", "table", tableName, "key", cacheKey, "error", err)
		return data, false, nil
	}
	// caching failure shouldn't stop the process
	if err := cache.Set(tableName, cacheKey, string(jsonData), ttl); err != nil {
		slog.Warn("Failed to cache data", "table", tableName, "key", cacheKey, "error", err)
	} else {
		slog.Debug("Data cached successfully", "table", tableName, "key", cacheKey, "ttl", ttl)
	}

	return data, false, nil
}
