package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/marquee/internal/movie"
)

var (
	movieTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110")).
			Width(9)

	ratingLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178"))

	plotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("248")).
			Width(defaultListWidth)
)

// RenderMovie returns a console summary of m.
func RenderMovie(m movie.Movie) string {
	lines := []string{movieTitleStyle.Render(m.ShortInfo())}

	genres := make([]string, 0, len(m.Genre))
	for _, g := range m.Genre {
		genres = append(genres, g.String())
	}

	lines = append(lines,
		field("Rated", m.Rated),
		field("Runtime", fmt.Sprintf("%d min", m.Details.Runtime)),
		field("Genre", strings.Join(genres, ", ")),
		field("Writer", m.Details.Writer),
		field("Actors", m.Details.Actors),
	)

	for _, r := range m.Details.Ratings {
		lines = append(lines, ratingLineStyle.Render(fmt.Sprintf("%s: %s", r.Source, r.Value)))
	}

	if m.Plot != "" {
		lines = append(lines, "", plotStyle.Render(m.Plot))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func field(label, value string) string {
	if value == "" {
		value = "-"
	}
	return labelStyle.Render(label) + " " + value
}
