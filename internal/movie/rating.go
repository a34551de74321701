package movie

// DecodeRating reads the first entry of the document's "Ratings" array.
// Entries after the first are ignored.
func DecodeRating(doc Document) (Rating, error) {
	entries, ok := doc["Ratings"].([]any)
	if !ok || len(entries) == 0 {
		return Rating{}, MissingSource
	}

	first, ok := entries[0].(map[string]any)
	if !ok {
		return Rating{}, MissingSource
	}

	source, ok := stringField(first, "Source")
	if !ok {
		return Rating{}, MissingSource
	}

	value, ok := stringField(first, "Value")
	if !ok {
		return Rating{}, MissingValue
	}

	return Rating{Source: source, Value: value}, nil
}
