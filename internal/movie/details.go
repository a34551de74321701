package movie

import (
	"strconv"
	"strings"
)

// DecodeExtraDetails reads runtime, writer, ratings, actors and poster from
// doc, stopping at the first field that fails. Rating errors are returned
// unchanged.
func DecodeExtraDetails(doc Document) (ExtraDetails, error) {
	runtime, err := decodeRuntime(doc)
	if err != nil {
		return ExtraDetails{}, err
	}

	writer, ok := stringField(doc, "Writer")
	if !ok {
		return ExtraDetails{}, MissingWriter
	}

	rating, err := DecodeRating(doc)
	if err != nil {
		return ExtraDetails{}, err
	}

	actors, ok := stringField(doc, "Actors")
	if !ok {
		return ExtraDetails{}, MissingActors
	}

	poster, ok := stringField(doc, "Poster")
	if !ok {
		return ExtraDetails{}, MissingPosterURL
	}

	return ExtraDetails{
		Runtime:   runtime,
		Writer:    writer,
		Ratings:   []Rating{rating},
		Actors:    actors,
		PosterURL: poster,
	}, nil
}

// decodeRuntime parses the leading integer of "124 min".
func decodeRuntime(doc Document) (int, error) {
	raw, ok := stringField(doc, "Runtime")
	if !ok {
		return 0, MissingRuntime
	}
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0, MissingRuntime
	}
	minutes, err := strconv.Atoi(fields[0])
	if err != nil || minutes < 0 {
		return 0, MissingRuntime
	}
	return minutes, nil
}
