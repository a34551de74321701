package obsidian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarkdown(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantTags  []string
		wantBody  string
		wantErr   bool
	}{
		{
			name:      "flow tags",
			input:     "---\ntitle: Test Movie\ntags: [action, comedy]\nyear: 2020\n---\nThis is the body content.",
			wantTitle: "Test Movie",
			wantTags:  []string{"action", "comedy"},
			wantBody:  "This is the body content.",
		},
		{
			name:      "block tags",
			input:     "---\ntitle: Test Movie\ntags:\n  - action\n  - drama\n---\nBody content here.",
			wantTitle: "Test Movie",
			wantTags:  []string{"action", "drama"},
			wantBody:  "Body content here.",
		},
		{
			name:     "no frontmatter",
			input:    "Just body content, no frontmatter.",
			wantTags: []string{},
			wantBody: "Just body content, no frontmatter.",
		},
		{
			name:     "empty frontmatter",
			input:    "---\n---\nBody content.",
			wantTags: []string{},
			wantBody: "Body content.",
		},
		{
			name:     "no closing delimiter",
			input:    "---\ntitle: Test\nThis is broken",
			wantTags: []string{},
			wantBody: "---\ntitle: Test\nThis is broken",
		},
		{
			name:      "windows line endings",
			input:     "---\r\ntitle: Test\r\n---\r\nBody",
			wantTitle: "Test",
			wantTags:  []string{},
			wantBody:  "Body",
		},
		{
			name:    "invalid yaml",
			input:   "---\ntitle: [unclosed\n---\nBody",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note, err := ParseMarkdown([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, note.Frontmatter.GetString("title"))
			assert.Equal(t, tt.wantTags, note.Frontmatter.GetStringArray("tags"))
			assert.Equal(t, tt.wantBody, note.Body)
		})
	}
}

func TestFrontmatterSetGet(t *testing.T) {
	fm := NewFrontmatter()
	fm.Set("year", 2007)
	fm.Set("title", "Shooter")
	fm.Set("title", "Shooter (2007)")
	fm.SetIf("rated", "N/A")
	fm.SetIf("writer", "")
	fm.SetIf("runtime_mins", 0)
	fm.SetIf("plot", "A marksman.")

	assert.Equal(t, []string{"plot", "title", "year"}, fm.Keys())
	assert.Equal(t, "Shooter (2007)", fm.GetString("title"))
	assert.Equal(t, 2007, fm.GetInt("year"))
	assert.Equal(t, 0, fm.GetInt("title"))
	assert.Equal(t, "", fm.GetString("missing"))

	_, ok := fm.Get("rated")
	assert.False(t, ok)
}

func TestNoteBuild(t *testing.T) {
	fm := NewFrontmatter()
	fm.Set("title", "Shooter")
	fm.Set("tags", []string{"movie", "genre/action"})
	fm.Set("year", 2007)

	out, err := (&Note{Frontmatter: fm, Body: "Body\n"}).Build()
	require.NoError(t, err)

	assert.Equal(t, "---\ntags: [movie, genre/action]\ntitle: Shooter\nyear: 2007\n---\n\nBody\n", string(out))
}

func TestNoteBuild_NoFrontmatter(t *testing.T) {
	out, err := (&Note{Frontmatter: NewFrontmatter(), Body: "Only body"}).Build()
	require.NoError(t, err)
	assert.Equal(t, "Only body", string(out))
}

func TestRoundTrip(t *testing.T) {
	fm := NewFrontmatter()
	fm.Set("title", "Alien: Covenant")
	fm.Set("tags", []string{"decade/2010s", "movie"})

	out, err := (&Note{Frontmatter: fm, Body: "## Plot\n\nText\n"}).Build()
	require.NoError(t, err)

	parsed, err := ParseMarkdown(out)
	require.NoError(t, err)
	assert.Equal(t, "Alien: Covenant", parsed.Frontmatter.GetString("title"))
	assert.Equal(t, []string{"decade/2010s", "movie"}, parsed.Frontmatter.GetStringArray("tags"))
	assert.Equal(t, "## Plot\n\nText\n", parsed.Body)

	again, err := parsed.Build()
	require.NoError(t, err)
	assert.Equal(t, string(out), string(again))
}
