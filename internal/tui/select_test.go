package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/marquee/internal/movie"
	"github.com/lepinkainen/marquee/internal/omdb"
)

func searchResults() []omdb.SearchResult {
	return []omdb.SearchResult{
		{Title: "Alien", Year: "1979", IMDbID: "tt0078748", Type: "movie", Poster: "N/A"},
		{Title: "Aliens", Year: "1986", IMDbID: "tt0090605", Type: "movie", Poster: "https://example.com/aliens.jpg"},
		{Title: "Alien Broken", Year: "2001", Type: "movie"},
	}
}

func withProgram(t *testing.T, fn func(tea.Model) (tea.Model, error)) {
	t.Helper()
	orig := runProgram
	runProgram = fn
	t.Cleanup(func() { runProgram = orig })
}

func press(t *testing.T, m *model, key tea.KeyMsg) *model {
	t.Helper()
	updated, _ := m.Update(key)
	typed, ok := updated.(*model)
	require.True(t, ok)
	return typed
}

func newTestModel() *model {
	items := []resultItem{}
	for _, r := range searchResults()[:2] {
		items = append(items, resultItem{SearchResult: r})
	}
	return newModel("alien", items)
}

func TestModelKeys(t *testing.T) {
	tests := []struct {
		name   string
		key    tea.KeyMsg
		action SelectionAction
	}{
		{name: "skip", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, action: ActionSkipped},
		{name: "esc", key: tea.KeyMsg{Type: tea.KeyEsc}, action: ActionSkipped},
		{name: "quit", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, action: ActionStopped},
		{name: "ctrl+c", key: tea.KeyMsg{Type: tea.KeyCtrlC}, action: ActionStopped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, newTestModel(), tt.key)
			assert.Equal(t, tt.action, m.result.Action)
			assert.Nil(t, m.result.Selection)
		})
	}
}

func TestModelEnterSelectsHighlighted(t *testing.T) {
	m := newTestModel()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, ActionSelected, m.result.Action)
	require.NotNil(t, m.result.Selection)
	assert.Equal(t, "tt0090605", m.result.Selection.IMDbID)
}

func TestModelView(t *testing.T) {
	view := newTestModel().View()
	assert.Contains(t, view, "Results for: alien")
	assert.Contains(t, view, "ALIEN (1979)")
	assert.Contains(t, view, "Enter select")
}

func TestSelect_FiltersResultsWithoutID(t *testing.T) {
	var offered []string
	withProgram(t, func(m tea.Model) (tea.Model, error) {
		typed := m.(*model)
		for _, item := range typed.list.Items() {
			offered = append(offered, item.(resultItem).IMDbID)
		}
		updated, _ := typed.Update(tea.KeyMsg{Type: tea.KeyEnter})
		return updated, nil
	})

	result, err := Select("alien", searchResults())
	require.NoError(t, err)
	assert.Equal(t, []string{"tt0078748", "tt0090605"}, offered)
	assert.Equal(t, ActionSelected, result.Action)
	assert.Equal(t, "Alien", result.Selection.Title)
}

func TestSelect_NothingToOffer(t *testing.T) {
	withProgram(t, func(m tea.Model) (tea.Model, error) {
		t.Fatal("program should not run")
		return m, nil
	})

	result, err := Select("nothing", []omdb.SearchResult{{Title: "No ID"}})
	require.NoError(t, err)
	assert.Equal(t, ActionSkipped, result.Action)
}

func TestSelect_ProgramError(t *testing.T) {
	boom := errors.New("no tty")
	withProgram(t, func(m tea.Model) (tea.Model, error) { return nil, boom })

	_, err := Select("alien", searchResults())
	assert.ErrorIs(t, err, boom)
}

func TestSelectionActionString(t *testing.T) {
	assert.Equal(t, "selected", ActionSelected.String())
	assert.Equal(t, "none", ActionNone.String())
}

func TestTruncateAndClamp(t *testing.T) {
	assert.Equal(t, "abc", truncate("  abc ", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, 72, clamp(72, 0, 40))
	assert.Equal(t, 50, clamp(72, 50, 40))
	assert.Equal(t, 40, clamp(72, 10, 40))
}

func TestRenderMovie(t *testing.T) {
	out := RenderMovie(movie.Movie{
		Title: "Shooter",
		Year:  2007,
		Rated: "R",
		Genre: []movie.Genre{movie.Action, movie.Crime},
		Details: movie.ExtraDetails{
			Runtime: 124,
			Ratings: []movie.Rating{{Source: "Internet Movie Database", Value: "7.2/10"}},
		},
		Plot: "A marksman living in exile.",
	})

	assert.True(t, strings.Contains(out, "Shooter, 2007"))
	assert.Contains(t, out, "124 min")
	assert.Contains(t, out, "Action, Crime")
	assert.Contains(t, out, "Internet Movie Database: 7.2/10")
	assert.Contains(t, out, "A marksman living in exile.")
}
