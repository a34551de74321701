package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestSetOverwriteFiles(t *testing.T) {
	// Save the original value to restore after the test
	originalValue := OverwriteFiles
	t.Cleanup(func() { OverwriteFiles = originalValue })

	testCases := []struct {
		name     string
		input    bool
		expected bool
	}{
		{
			name:     "set to true",
			input:    true,
			expected: true,
		},
		{
			name:     "set to false",
			input:    false,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			SetOverwriteFiles(tc.input)
			assert.Equal(t, tc.expected, OverwriteFiles)
		})
	}
}

func TestSetUpdatePosters(t *testing.T) {
	originalValue := UpdatePosters
	t.Cleanup(func() { UpdatePosters = originalValue })

	SetUpdatePosters(true)
	assert.True(t, UpdatePosters)
	SetUpdatePosters(false)
	assert.False(t, UpdatePosters)
}

func TestInitConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	InitConfig()

	assert.Equal(t, DefaultOMDBBaseURL, viper.GetString("omdb.base_url"))
	assert.Equal(t, "./cache.db", viper.GetString("cache.dbfile"))
	assert.Equal(t, "720h", viper.GetString("cache.ttl"))
	assert.False(t, viper.GetBool("datastore.enabled"))
	assert.Equal(t, "./markdown/", viper.GetString("markdown.output_dir"))
	assert.False(t, viper.IsSet("json.output_dir"), "--json takes a full path")
	assert.Empty(t, OMDBAPIKey)
	assert.Equal(t, DefaultTimeout, RequestTimeout())
	assert.Equal(t, DefaultPosterMaxWidth, PosterMaxWidth())
}

func TestInitConfig_ReadsAPIKey(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	origKey := OMDBAPIKey
	t.Cleanup(func() { OMDBAPIKey = origKey })

	viper.Set("omdb.api_key", "abc123")
	InitConfig()

	assert.Equal(t, "abc123", OMDBAPIKey)
}

func TestRequestTimeout(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("omdb.timeout", "5s")
	assert.Equal(t, 5*time.Second, RequestTimeout())

	viper.Set("omdb.timeout", "soon")
	assert.Equal(t, DefaultTimeout, RequestTimeout())

	viper.Set("omdb.timeout", "-1s")
	assert.Equal(t, DefaultTimeout, RequestTimeout())
}

func TestPosterMaxWidth(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("poster.max_width", 300)
	assert.Equal(t, 300, PosterMaxWidth())

	viper.Set("poster.max_width", 0)
	assert.Equal(t, DefaultPosterMaxWidth, PosterMaxWidth())
}
