// Package movie decodes loosely-typed OMDB documents into typed movie records.
//
// Every decoder is a pure function over a Document. Decoders only read their
// input and keep no state, so they are safe to call concurrently.
package movie

import "strconv"

// Document is a generic JSON object as produced by encoding/json when
// unmarshalling into any.
type Document = map[string]any

// Rating is a single critic rating as published by its provider.
type Rating struct {
	Source string `json:"source"`
	// Value is kept verbatim ("7.2/10", "85%") since providers use different scales.
	Value string `json:"value"`
}

// ExtraDetails holds the secondary movie fields.
type ExtraDetails struct {
	Runtime   int      `json:"runtime"` // minutes
	Writer    string   `json:"writer"`
	Ratings   []Rating `json:"ratings"`
	Actors    string   `json:"actors"`
	PosterURL string   `json:"poster_url"`
}

// Movie is a fully decoded movie record.
type Movie struct {
	Title   string       `json:"title"`
	Year    int          `json:"year"`
	Rated   string       `json:"rated"`
	Genre   []Genre      `json:"genre"`
	Details ExtraDetails `json:"details"`
	Plot    string       `json:"plot"`
}

// ShortInfo returns "Title, Year".
func (m Movie) ShortInfo() string {
	return m.Title + ", " + strconv.Itoa(m.Year)
}

// Decode builds a Movie from doc. The first failing field aborts decoding and
// its error is returned as-is. Genre tokens that are not recognised are
// dropped instead.
//
// A Year that is present but not numeric yields a *YearFault, which is not
// part of the decode taxonomy and must be handled as a fatal condition.
func Decode(doc Document) (Movie, error) {
	title, ok := stringField(doc, "Title")
	if !ok {
		return Movie{}, MissingTitle
	}

	year, err := decodeYear(doc)
	if err != nil {
		return Movie{}, err
	}

	rated, ok := stringField(doc, "Rated")
	if !ok {
		return Movie{}, MissingAgeRating
	}

	genreField, ok := stringField(doc, "Genre")
	if !ok {
		return Movie{}, MissingGenre
	}
	genres := ParseGenreList(genreField)

	plot, ok := stringField(doc, "Plot")
	if !ok {
		return Movie{}, MissingPlot
	}

	details, err := DecodeExtraDetails(doc)
	if err != nil {
		return Movie{}, err
	}

	return Movie{
		Title:   title,
		Year:    year,
		Rated:   rated,
		Genre:   genres,
		Details: details,
		Plot:    plot,
	}, nil
}

func decodeYear(doc Document) (int, error) {
	raw, ok := stringField(doc, "Year")
	if !ok {
		return 0, MissingYear
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &YearFault{Value: raw, Err: err}
	}
	return year, nil
}

// stringField returns doc[key] when it is present and holds text.
func stringField(doc Document, key string) (string, bool) {
	s, ok := doc[key].(string)
	return s, ok
}
