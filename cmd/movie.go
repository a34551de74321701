package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lepinkainen/marquee/internal/cmdutil"
	"github.com/lepinkainen/marquee/internal/config"
	"github.com/lepinkainen/marquee/internal/datastore"
	"github.com/lepinkainen/marquee/internal/fileutil"
	"github.com/lepinkainen/marquee/internal/movie"
	"github.com/lepinkainen/marquee/internal/obsidian"
	"github.com/lepinkainen/marquee/internal/omdb"
	"github.com/lepinkainen/marquee/internal/poster"
	"github.com/lepinkainen/marquee/internal/tui"
	"github.com/spf13/viper"
)

// omdbClient is the part of omdb.Client the commands use.
type omdbClient interface {
	Lookup(ctx context.Context, q omdb.Query) (omdb.Result, error)
	Search(ctx context.Context, q omdb.SearchQuery) ([]omdb.SearchResult, error)
}

var (
	newOMDBClient = func() (omdbClient, error) {
		apiKey, err := omdb.GetAPIKey()
		if err != nil {
			return nil, err
		}
		return omdb.NewClient(apiKey), nil
	}
	selectResult   = tui.Select
	downloadPoster = poster.Download
	openStore      = datastore.FromConfig

	stdout io.Writer = os.Stdout
)

// OutputFlags are the optional artifacts written for a fetched movie
type OutputFlags struct {
	JSON     string `help:"Write the decoded movie to this JSON file" placeholder:"PATH"`
	Markdown string `help:"Write an Obsidian note into this directory" placeholder:"DIR"`
	Poster   bool   `help:"Download the poster next to the note (uses markdown.output_dir without --markdown)"`
}

func (o OutputFlags) outputs() cmdutil.Outputs {
	return cmdutil.Outputs{MarkdownDir: o.Markdown, JSONPath: o.JSON, Poster: o.Poster}
}

// FetchCmd represents the fetch command
type FetchCmd struct {
	Title string `short:"t" help:"Movie title"`
	Year  int    `short:"y" help:"Release year, narrows a title lookup"`
	ID    string `short:"i" help:"IMDb ID (takes precedence over --title)"`
	Plot  string `help:"Plot length: short or full" enum:"short,full" default:"short"`

	OutputFlags `embed:""`
}

// SearchCmd represents the search command
type SearchCmd struct {
	Query         string `arg:"" help:"Free-text search"`
	Year          int    `short:"y" help:"Release year"`
	Type          string `help:"Result type: movie, series or episode"`
	NoInteractive bool   `help:"Fetch the first result instead of asking"`

	OutputFlags `embed:""`
}

// DecodeCmd represents the decode command
type DecodeCmd struct {
	File string `arg:"" type:"existingfile" help:"OMDB JSON document to decode"`
	JSON bool   `help:"Print the decoded movie as JSON"`
}

func (f *FetchCmd) Run(ctx context.Context) error {
	if f.Title == "" && f.ID == "" {
		return fmt.Errorf("a title or an IMDb ID is required (provide via --title or --id)")
	}

	client, err := newOMDBClient()
	if err != nil {
		return err
	}

	q := omdb.Query{Title: f.Title, Year: f.Year, IMDbID: f.ID, Plot: f.Plot}
	return fetchAndWrite(ctx, client, q, f.outputs())
}

func (s *SearchCmd) Run(ctx context.Context) error {
	client, err := newOMDBClient()
	if err != nil {
		return err
	}

	results, err := client.Search(ctx, omdb.SearchQuery{Query: s.Query, Year: s.Year, Type: s.Type})
	if err != nil {
		return err
	}

	var chosen *omdb.SearchResult
	if s.NoInteractive {
		for i := range results {
			if results[i].IMDbID != "" {
				chosen = &results[i]
				break
			}
		}
	} else {
		selection, err := selectResult(s.Query, results)
		if err != nil {
			return fmt.Errorf("selection failed: %w", err)
		}
		switch selection.Action {
		case tui.ActionSelected:
			chosen = selection.Selection
		case tui.ActionStopped:
			slog.Info("Search stopped", "query", s.Query)
			return nil
		}
	}

	if chosen == nil {
		slog.Info("No result selected", "query", s.Query, "results", len(results))
		return nil
	}

	slog.Debug("Fetching search result", "title", chosen.Title, "imdb_id", chosen.IMDbID)
	return fetchAndWrite(ctx, client, omdb.Query{IMDbID: chosen.IMDbID, Plot: "short"}, s.outputs())
}

func (d *DecodeCmd) Run() error {
	body, err := os.ReadFile(d.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", d.File, err)
	}

	doc, err := omdb.ParseDocument(body)
	if err != nil {
		return err
	}

	m, err := movie.Decode(doc)
	if err != nil {
		return err
	}

	if d.JSON {
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal movie: %w", err)
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}

	_, err = fmt.Fprintln(stdout, tui.RenderMovie(m))
	return err
}

// fetchAndWrite looks q up, prints the decoded movie and writes every
// requested output.
func fetchAndWrite(ctx context.Context, client omdbClient, q omdb.Query, out cmdutil.Outputs) error {
	res, err := client.Lookup(ctx, q)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(stdout, tui.RenderMovie(res.Movie)); err != nil {
		return err
	}

	if out.Enabled() {
		if err := writeOutputs(ctx, res.Movie, out); err != nil {
			return err
		}
	}

	if viper.GetBool("datastore.enabled") {
		return storeMovie(res)
	}
	return nil
}

// writeOutputs writes the JSON file and the note with its poster.
func writeOutputs(ctx context.Context, m movie.Movie, out cmdutil.Outputs) error {
	if err := cmdutil.SetupOutputs(&out); err != nil {
		return err
	}

	if out.JSONPath != "" {
		if _, err := fileutil.WriteJSONFile(m, out.JSONPath, config.OverwriteFiles); err != nil {
			return err
		}
	}

	if out.MarkdownDir != "" {
		return writeNote(ctx, m, out)
	}
	return nil
}

func noteName(m movie.Movie) string {
	return fmt.Sprintf("%s (%d)", m.Title, m.Year)
}

func writeNote(ctx context.Context, m movie.Movie, out cmdutil.Outputs) error {
	var posterPath string
	if out.Poster {
		result, err := downloadPoster(ctx, poster.Options{
			URL:       m.Details.PosterURL,
			OutputDir: out.MarkdownDir,
			Title:     noteName(m),
			Update:    config.UpdatePosters,
		})
		switch {
		case err != nil:
			// the note is still useful without its poster
			slog.Warn("Failed to download poster", "title", m.Title, "error", err)
		case result != nil:
			posterPath = result.RelativePath
		}
	}

	note := obsidian.MovieNote(m, posterPath)
	path := fileutil.NotePath(out.MarkdownDir, noteName(m))

	if config.OverwriteFiles {
		if existing, err := os.ReadFile(path); err == nil {
			if err := note.MergeExisting(existing); err != nil {
				slog.Warn("Failed to read existing note", "path", path, "error", err)
			}
		}
	}

	data, err := note.Build()
	if err != nil {
		return fmt.Errorf("failed to build note: %w", err)
	}

	written, err := fileutil.WriteFileWithOverwrite(path, data, 0644, config.OverwriteFiles)
	if err != nil {
		return err
	}
	if written {
		slog.Info("Wrote note", "path", path)
	}
	return nil
}

func storeMovie(res omdb.Result) error {
	record, err := datastore.MovieRecord(res.Movie, res.IMDbID)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	if err := datastore.SaveMovies(store, []map[string]any{record}); err != nil {
		return fmt.Errorf("failed to store movie: %w", err)
	}
	slog.Info("Stored movie", "table", datastore.MovieTable, "title", res.Movie.Title)
	return nil
}
