package movie

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/lepinkainen/marquee/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validDocument returns a fresh document with every required key.
func validDocument() Document {
	return Document{
		"Title":   "Shooter",
		"Year":    "2007",
		"Rated":   "R",
		"Genre":   "Action, Crime, Drama",
		"Plot":    "A marksman living in exile is coaxed back into action.",
		"Runtime": "124 min",
		"Writer":  "Jonathan Lemkin (screenplay), Stephen Hunter (novel)",
		"Actors":  "Mark Wahlberg, Michael Peña, Danny Glover, Kate Mara",
		"Poster":  "https://example.com/shooter.jpg",
		"Ratings": []any{
			map[string]any{"Source": "Internet Movie Database", "Value": "7.2/10"},
			map[string]any{"Source": "Rotten Tomatoes", "Value": "48%"},
		},
	}
}

func TestDecode(t *testing.T) {
	got, err := Decode(validDocument())
	require.NoError(t, err)

	want := Movie{
		Title: "Shooter",
		Year:  2007,
		Rated: "R",
		Genre: []Genre{Action, Crime, Drama},
		Details: ExtraDetails{
			Runtime:   124,
			Writer:    "Jonathan Lemkin (screenplay), Stephen Hunter (novel)",
			Ratings:   []Rating{{Source: "Internet Movie Database", Value: "7.2/10"}},
			Actors:    "Mark Wahlberg, Michael Peña, Danny Glover, Kate Mara",
			PosterURL: "https://example.com/shooter.jpg",
		},
		Plot: "A marksman living in exile is coaxed back into action.",
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "Shooter, 2007", got.ShortInfo())
}

func TestDecode_MissingKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr error
	}{
		{key: "Title", wantErr: MissingTitle},
		{key: "Year", wantErr: MissingYear},
		{key: "Rated", wantErr: MissingAgeRating},
		{key: "Genre", wantErr: MissingGenre},
		{key: "Plot", wantErr: MissingPlot},
		{key: "Runtime", wantErr: MissingRuntime},
		{key: "Writer", wantErr: MissingWriter},
		{key: "Ratings", wantErr: MissingSource},
		{key: "Actors", wantErr: MissingActors},
		{key: "Poster", wantErr: MissingPosterURL},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			doc := validDocument()
			delete(doc, tt.key)

			got, err := Decode(doc)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err, "exactly the documented kind, unwrapped")
			assert.False(t, IsFault(err))
			assert.Equal(t, Movie{}, got)
		})
	}
}

func TestDecode_NonTextFields(t *testing.T) {
	tests := []struct {
		key     string
		value   any
		wantErr error
	}{
		{key: "Title", value: 42.0, wantErr: MissingTitle},
		{key: "Year", value: 2007.0, wantErr: MissingYear},
		{key: "Rated", value: nil, wantErr: MissingAgeRating},
		{key: "Genre", value: []any{"Action", "Crime"}, wantErr: MissingGenre},
		{key: "Plot", value: false, wantErr: MissingPlot},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			doc := validDocument()
			doc[tt.key] = tt.value

			_, err := Decode(doc)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestDecode_GenreFiltering(t *testing.T) {
	tests := []struct {
		name  string
		genre string
		want  []Genre
	}{
		{name: "known", genre: "Action, Crime, Drama", want: []Genre{Action, Crime, Drama}},
		{name: "unknown dropped", genre: "Action, Bogus, Drama", want: []Genre{Action, Drama}},
		{name: "empty", genre: "", want: []Genre{}},
		{name: "all unknown", genre: "Bogus", want: []Genre{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			doc["Genre"] = tt.genre

			got, err := Decode(doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Genre)
		})
	}
}

func TestDecode_EmptyRatings(t *testing.T) {
	doc := validDocument()
	doc["Ratings"] = []any{}

	_, err := Decode(doc)
	assert.ErrorIs(t, err, MissingSource)
}

func TestDecode_MalformedYearIsFault(t *testing.T) {
	for _, year := range []string{"2007–2012", "N/A", "", " 2007"} {
		t.Run(year, func(t *testing.T) {
			doc := validDocument()
			doc["Year"] = year

			_, err := Decode(doc)
			require.Error(t, err)
			assert.True(t, IsFault(err))

			var fault *YearFault
			require.ErrorAs(t, err, &fault)
			assert.Equal(t, year, fault.Value)

			assert.NotErrorIs(t, err, MissingYear)
		})
	}
}

func TestDecode_FieldOrder(t *testing.T) {
	doc := validDocument()
	delete(doc, "Plot")
	delete(doc, "Writer")

	_, err := Decode(doc)
	assert.Equal(t, error(MissingPlot), err)

	doc = validDocument()
	delete(doc, "Title")
	doc["Year"] = "not a year"

	_, err = Decode(doc)
	assert.Equal(t, error(MissingTitle), err)
}

func TestDecode_Idempotent(t *testing.T) {
	doc := validDocument()

	first, err := Decode(doc)
	require.NoError(t, err)
	second, err := Decode(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDecode_DoesNotMutateInput(t *testing.T) {
	doc := validDocument()
	doc["Genre"] = "Action, Bogus, Drama"

	_, err := Decode(doc)
	require.NoError(t, err)

	want := validDocument()
	want["Genre"] = "Action, Bogus, Drama"
	assert.Equal(t, want, doc)

	// still usable afterwards
	_, err = Decode(doc)
	require.NoError(t, err)
}

func TestDecode_Concurrent(t *testing.T) {
	doc := validDocument()
	want, err := Decode(doc)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Movie, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Decode(doc)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestDecode_OMDBFixture(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal(testutil.ShooterJSON(), &doc))

	got, err := Decode(doc)
	require.NoError(t, err)

	assert.Equal(t, "Shooter", got.Title)
	assert.Equal(t, 2007, got.Year)
	assert.Equal(t, "R", got.Rated)
	assert.Equal(t, []Genre{Action, Crime, Drama}, got.Genre)
	assert.Equal(t, 124, got.Details.Runtime)
	assert.Equal(t, []Rating{{Source: "Internet Movie Database", Value: "7.2/10"}}, got.Details.Ratings)
	assert.Contains(t, got.Details.PosterURL, "https://")
}

func TestMovieDecodeErrorMessages(t *testing.T) {
	assert.Equal(t, "movie: missing Title", MissingTitle.Error())
	assert.Equal(t, "extra details: missing Runtime", MissingRuntime.Error())
	assert.Equal(t, "rating: missing Value", MissingValue.Error())
	assert.Equal(t, "genre: unknown genre", UnknownGenre.Error())
}
