package movie

import "strings"

// Genre is one of the known genre tags.
type Genre string

const (
	Action      Genre = "Action"
	Adventure   Genre = "Adventure"
	Animation   Genre = "Animation"
	Biography   Genre = "Biography"
	Comedy      Genre = "Comedy"
	Crime       Genre = "Crime"
	Documentary Genre = "Documentary"
	Drama       Genre = "Drama"
	Family      Genre = "Family"
	Fantasy     Genre = "Fantasy"
	History     Genre = "History"
	Horror      Genre = "Horror"
	Mystery     Genre = "Mystery"
	Romance     Genre = "Romance"
	SciFi       Genre = "Sci-fi"
	Short       Genre = "Short"
	Thriller    Genre = "Thriller"
	War         Genre = "War"
	Western     Genre = "Western"
)

// genreDelimiter separates genres in the OMDB Genre field.
const genreDelimiter = ", "

var knownGenres = map[string]Genre{
	string(Action):      Action,
	string(Adventure):   Adventure,
	string(Animation):   Animation,
	string(Biography):   Biography,
	string(Comedy):      Comedy,
	string(Crime):       Crime,
	string(Documentary): Documentary,
	string(Drama):       Drama,
	string(Family):      Family,
	string(Fantasy):     Fantasy,
	string(History):     History,
	string(Horror):      Horror,
	string(Mystery):     Mystery,
	string(Romance):     Romance,
	string(SciFi):       SciFi,
	string(Short):       Short,
	string(Thriller):    Thriller,
	string(War):         War,
	string(Western):     Western,
}

// ParseGenre maps a single token to a Genre. Matching is exact and
// case-sensitive; the token is not trimmed.
func ParseGenre(token string) (Genre, error) {
	g, ok := knownGenres[token]
	if !ok {
		return "", UnknownGenre
	}
	return g, nil
}

// ParseGenreList splits an OMDB Genre field ("Action, Crime, Drama") and
// keeps the recognised genres in order. Unknown tokens are dropped, so the
// result may be empty.
func ParseGenreList(field string) []Genre {
	genres := []Genre{}
	if field == "" {
		return genres
	}
	for _, token := range strings.Split(field, genreDelimiter) {
		g, err := ParseGenre(token)
		if err != nil {
			continue
		}
		genres = append(genres, g)
	}
	return genres
}

// String returns the canonical tag.
func (g Genre) String() string {
	return string(g)
}
