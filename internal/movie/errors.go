package movie

import (
	"errors"
	"fmt"
)

// MovieDecodeError names the top-level Movie field that could not be read.
type MovieDecodeError int

const (
	MissingTitle MovieDecodeError = iota + 1
	MissingYear
	MissingAgeRating
	MissingGenre
	MissingPlot
)

func (e MovieDecodeError) Error() string {
	switch e {
	case MissingTitle:
		return "movie: missing Title"
	case MissingYear:
		return "movie: missing Year"
	case MissingAgeRating:
		return "movie: missing Rated"
	case MissingGenre:
		return "movie: missing Genre"
	case MissingPlot:
		return "movie: missing Plot"
	default:
		return fmt.Sprintf("movie: decode error %d", int(e))
	}
}

// ExtraDetailsDecodeError names the ExtraDetails field that could not be read.
type ExtraDetailsDecodeError int

const (
	// MissingRuntime covers both an absent Runtime and one whose first token
	// is not a non-negative integer.
	MissingRuntime ExtraDetailsDecodeError = iota + 1
	MissingWriter
	MissingActors
	MissingPosterURL
)

func (e ExtraDetailsDecodeError) Error() string {
	switch e {
	case MissingRuntime:
		return "extra details: missing Runtime"
	case MissingWriter:
		return "extra details: missing Writer"
	case MissingActors:
		return "extra details: missing Actors"
	case MissingPosterURL:
		return "extra details: missing Poster"
	default:
		return fmt.Sprintf("extra details: decode error %d", int(e))
	}
}

// RatingDecodeError names the Rating field that could not be read.
type RatingDecodeError int

const (
	MissingSource RatingDecodeError = iota + 1
	MissingValue
)

func (e RatingDecodeError) Error() string {
	switch e {
	case MissingSource:
		return "rating: missing Source"
	case MissingValue:
		return "rating: missing Value"
	default:
		return fmt.Sprintf("rating: decode error %d", int(e))
	}
}

// GenreDecodeError is returned by ParseGenre. Decode filters these out and
// never returns one.
type GenreDecodeError int

const (
	UnknownGenre GenreDecodeError = iota + 1
)

func (e GenreDecodeError) Error() string {
	if e == UnknownGenre {
		return "genre: unknown genre"
	}
	return fmt.Sprintf("genre: decode error %d", int(e))
}

// YearFault reports a Year field that is present but not an integer. It sits
// outside the decode taxonomy: callers abort rather than recover.
type YearFault struct {
	Value string
	Err   error
}

func (f *YearFault) Error() string {
	return fmt.Sprintf("movie: fatal: Year %q is not an integer", f.Value)
}

func (f *YearFault) Unwrap() error {
	return f.Err
}

// IsFault reports whether err (or anything it wraps) is a fatal decode fault.
func IsFault(err error) bool {
	var fault *YearFault
	return errors.As(err, &fault)
}
