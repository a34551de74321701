package config

import (
	"time"

	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// OverwriteFiles controls whether existing note and JSON files are replaced
	OverwriteFiles bool
	// UpdatePosters forces poster images to be downloaded again
	UpdatePosters bool
	// OMDBAPIKey is the API key for OMDB (Open Movie Database)
	OMDBAPIKey string
)

const (
	DefaultOMDBBaseURL       = "https://www.omdbapi.com"
	DefaultRequestsPerSecond = 1.0
	DefaultTimeout           = 30 * time.Second
	DefaultPosterMaxWidth    = 600
)

// SetDefaults registers default values for every known key.
func SetDefaults() {
	viper.SetDefault("omdb.base_url", DefaultOMDBBaseURL)
	viper.SetDefault("omdb.requests_per_second", DefaultRequestsPerSecond)
	viper.SetDefault("omdb.timeout", DefaultTimeout.String())

	viper.SetDefault("cache.dbfile", "./cache.db")
	viper.SetDefault("cache.ttl", "720h") // 30 days

	viper.SetDefault("datastore.enabled", false)
	viper.SetDefault("datastore.dbfile", "./marquee.db")
	viper.SetDefault("datastore.url", "")
	viper.SetDefault("datastore.token", "")

	viper.SetDefault("markdown.output_dir", "./markdown/")
	viper.SetDefault("poster.max_width", DefaultPosterMaxWidth)

	viper.SetDefault("OverwriteFiles", false)
}

// InitConfig initializes the global configuration
func InitConfig() {
	SetDefaults()

	OverwriteFiles = viper.GetBool("OverwriteFiles")
	OMDBAPIKey = viper.GetString("omdb.api_key")
}

// SetOverwriteFiles sets the OverwriteFiles flag
func SetOverwriteFiles(overwrite bool) {
	OverwriteFiles = overwrite
}

// SetUpdatePosters sets the UpdatePosters flag
func SetUpdatePosters(update bool) {
	UpdatePosters = update
}

// RequestTimeout returns omdb.timeout, falling back to DefaultTimeout when unset or invalid.
func RequestTimeout() time.Duration {
	d, err := time.ParseDuration(viper.GetString("omdb.timeout"))
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

// PosterMaxWidth returns poster.max_width, falling back to DefaultPosterMaxWidth.
func PosterMaxWidth() int {
	w := viper.GetInt("poster.max_width")
	if w <= 0 {
		return DefaultPosterMaxWidth
	}
	return w
}
