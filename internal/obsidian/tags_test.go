package obsidian

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"movie", "movie"},
		{"#movie", "movie"},
		{"  genre/Sci-fi  ", "genre/Sci-fi"},
		{"rating/not rated", "rating/not-rated"},
		{"Rock & Roll", "Rock-and-Roll"},
		{"a  --  b", "a-b"},
		{"-edge-", "edge"},
		{"#", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTag(tt.input))
		})
	}
}

func TestTagSet(t *testing.T) {
	ts := NewTagSet()
	ts.Add("movie")
	ts.Add("#movie")
	ts.Add("")
	ts.AddFormat("decade/%ds", 2000)
	ts.AddFormat("genre/%s", "action")

	assert.Equal(t, []string{"decade/2000s", "genre/action", "movie"}, ts.GetSorted())
	assert.Equal(t, []string{}, NewTagSet().GetSorted())
}

func TestMergeTags(t *testing.T) {
	got := MergeTags([]string{"to-watch", "movie"}, []string{"movie", "genre/drama", " "})
	assert.Equal(t, []string{"genre/drama", "movie", "to-watch"}, got)
	assert.Equal(t, []string{}, MergeTags(nil, nil))
}

func TestTagsFromAny(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, TagsFromAny([]string{"a", "", "b"}))
	assert.Equal(t, []string{"a", "b"}, TagsFromAny([]any{"a", 1, "b", ""}))
	assert.Equal(t, []string{}, TagsFromAny(nil))
	assert.Equal(t, []string{}, TagsFromAny("movie"))
}
