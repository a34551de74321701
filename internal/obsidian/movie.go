package obsidian

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lepinkainen/marquee/internal/movie"
)

// posterWidth is the embed width used for posters in notes.
const posterWidth = 250

// MovieNote builds the note for a decoded movie. posterPath is the local
// poster file, or empty when no poster was saved.
func MovieNote(m movie.Movie, posterPath string) *Note {
	fm := NewFrontmatter()
	fm.Set("title", m.Title)
	fm.Set("year", m.Year)
	fm.Set("type", "movie")
	fm.SetIf("rated", m.Rated)
	fm.SetIf("runtime_mins", m.Details.Runtime)
	fm.SetIf("writer", m.Details.Writer)
	fm.SetIf("poster_url", m.Details.PosterURL)

	if actors := splitList(m.Details.Actors); len(actors) > 0 {
		fm.Set("actors", actors)
	}

	genres := make([]string, 0, len(m.Genre))
	for _, g := range m.Genre {
		genres = append(genres, g.String())
	}
	fm.Set("genres", genres)

	if len(m.Details.Ratings) > 0 {
		ratings := make(map[string]string, len(m.Details.Ratings))
		for _, r := range m.Details.Ratings {
			ratings[r.Source] = r.Value
		}
		fm.Set("ratings", ratings)
	}

	if posterPath != "" {
		fm.Set("poster", filepath.Base(posterPath))
	}

	fm.Set("tags", MovieTags(m))

	return &Note{
		Frontmatter: fm,
		Body:        movieBody(m, posterPath),
	}
}

// MovieTags returns the tags for m: movie, genre/<tag>, rating/<code> and
// decade/<NNNN>s.
func MovieTags(m movie.Movie) []string {
	ts := NewTagSet()
	ts.Add("movie")
	for _, g := range m.Genre {
		ts.AddFormat("genre/%s", strings.ToLower(g.String()))
	}
	if m.Rated != "" && m.Rated != "N/A" {
		ts.AddFormat("rating/%s", strings.ToLower(m.Rated))
	}
	if m.Year > 0 {
		ts.AddFormat("decade/%ds", m.Year/10*10)
	}
	return ts.GetSorted()
}

func movieBody(m movie.Movie, posterPath string) string {
	var b strings.Builder

	if posterPath != "" {
		fmt.Fprintf(&b, "![[%s|%d]]\n\n", filepath.Base(posterPath), posterWidth)
	}

	if m.Plot != "" && m.Plot != "N/A" {
		b.WriteString("## Plot\n\n")
		b.WriteString(m.Plot)
		b.WriteString("\n")
	}

	if len(m.Details.Ratings) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("## Ratings\n\n")
		b.WriteString("| Source | Value |\n")
		b.WriteString("| --- | --- |\n")
		for _, r := range m.Details.Ratings {
			fmt.Fprintf(&b, "| %s | %s |\n", escapeCell(r.Source), escapeCell(r.Value))
		}
	}

	return b.String()
}

// MergeExisting carries over tags from an existing note at the same path,
// so tags added by hand survive a rewrite.
func (n *Note) MergeExisting(existing []byte) error {
	old, err := ParseMarkdown(existing)
	if err != nil {
		return err
	}
	oldTags := old.Frontmatter.GetStringArray("tags")
	if len(oldTags) == 0 {
		return nil
	}
	n.Frontmatter.Set("tags", MergeTags(oldTags, n.Frontmatter.GetStringArray("tags")))
	return nil
}

func splitList(s string) []string {
	if s == "" || s == "N/A" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
