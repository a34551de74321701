package testutil

import (
	"testing"

	"github.com/lepinkainen/marquee/internal/config"
	"github.com/spf13/viper"
)

// ConfigState holds the config package globals.
type ConfigState struct {
	OverwriteFiles bool
	UpdatePosters  bool
	OMDBAPIKey     string
}

// SaveConfigState captures the current config package globals.
func SaveConfigState() ConfigState {
	return ConfigState{
		OverwriteFiles: config.OverwriteFiles,
		UpdatePosters:  config.UpdatePosters,
		OMDBAPIKey:     config.OMDBAPIKey,
	}
}

// RestoreConfigState restores the config package globals.
func RestoreConfigState(state ConfigState) {
	config.OverwriteFiles = state.OverwriteFiles
	config.UpdatePosters = state.UpdatePosters
	config.OMDBAPIKey = state.OMDBAPIKey
}

// ResetConfig resets viper and restores config globals and viper when the
// test completes.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetupTestCache points cache.dbfile at a fresh database inside env.
// Callers reset the global cache themselves.
func SetupTestCache(t *testing.T, env *TestEnv) string {
	t.Helper()

	env.MkdirAll("cache")
	dbPath := env.Path("cache", "test-cache.db")
	viper.Set("cache.dbfile", dbPath)
	viper.Set("cache.ttl", "24h")

	return dbPath
}
