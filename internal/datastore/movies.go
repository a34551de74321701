package datastore

import (
	"encoding/json"
	"fmt"

	"github.com/lepinkainen/marquee/internal/movie"
)

// MovieTable holds one row per decoded title.
const MovieTable = "movies"

// MovieSchema is the movies table. genres and ratings are JSON arrays.
const MovieSchema = `CREATE TABLE IF NOT EXISTS movies (
	imdb_id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	year INTEGER NOT NULL,
	rated TEXT,
	genres TEXT,
	runtime_mins INTEGER,
	writer TEXT,
	actors TEXT,
	ratings TEXT,
	poster_url TEXT,
	plot TEXT
)`

// MovieRecord flattens m into a movies row. Without an IMDb ID the
// short info ("Title, Year") is used as the key.
func MovieRecord(m movie.Movie, imdbID string) (map[string]any, error) {
	if imdbID == "" {
		imdbID = m.ShortInfo()
	}

	genres := make([]string, 0, len(m.Genre))
	for _, g := range m.Genre {
		genres = append(genres, g.String())
	}
	genresJSON, err := json.Marshal(genres)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal genres: %w", err)
	}

	ratings := m.Details.Ratings
	if ratings == nil {
		ratings = []movie.Rating{}
	}
	ratingsJSON, err := json.Marshal(ratings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ratings: %w", err)
	}

	return map[string]any{
		"imdb_id":      imdbID,
		"title":        m.Title,
		"year":         m.Year,
		"rated":        m.Rated,
		"genres":       string(genresJSON),
		"runtime_mins": m.Details.Runtime,
		"writer":       m.Details.Writer,
		"actors":       m.Details.Actors,
		"ratings":      string(ratingsJSON),
		"poster_url":   m.Details.PosterURL,
		"plot":         m.Plot,
	}, nil
}

// SaveMovies connects store, ensures the movies table and upserts the rows.
// The store is closed before returning.
func SaveMovies(store Store, records []map[string]any) (err error) {
	if err := store.Connect(); err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close store: %w", closeErr)
		}
	}()

	if err := store.CreateTable(MovieSchema); err != nil {
		return err
	}
	return store.BatchInsert(DatabaseName, MovieTable, records)
}
