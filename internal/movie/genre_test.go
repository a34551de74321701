package movie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenre(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    Genre
		wantErr bool
	}{
		{name: "action", token: "Action", want: Action},
		{name: "sci-fi canonical spelling", token: "Sci-fi", want: SciFi},
		{name: "documentary", token: "Documentary", want: Documentary},
		{name: "lowercase does not match", token: "action", wantErr: true},
		{name: "untrimmed token does not match", token: " Drama", wantErr: true},
		{name: "different casing of sci-fi", token: "Sci-Fi", wantErr: true},
		{name: "empty token", token: "", wantErr: true},
		{name: "unknown", token: "Bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGenre(tt.token)
			if tt.wantErr {
				require.ErrorIs(t, err, UnknownGenre)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGenreList(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  []Genre
	}{
		{
			name:  "all known",
			field: "Action, Crime, Drama",
			want:  []Genre{Action, Crime, Drama},
		},
		{
			name:  "unknown token dropped, order kept",
			field: "Action, Bogus, Drama",
			want:  []Genre{Action, Drama},
		},
		{
			name:  "empty field",
			field: "",
			want:  []Genre{},
		},
		{
			name:  "only unknown tokens",
			field: "Bogus, Nonsense",
			want:  []Genre{},
		},
		{
			name:  "comma without space is one token",
			field: "Action,Crime",
			want:  []Genre{},
		},
		{
			name:  "single genre",
			field: "Horror",
			want:  []Genre{Horror},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseGenreList(tt.field)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKnownGenresMatchTheirTags(t *testing.T) {
	for tag, g := range knownGenres {
		assert.Equal(t, tag, g.String())
	}
}
