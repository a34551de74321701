// Package tui provides interactive terminal UI components.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/marquee/internal/omdb"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 20
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

// SelectionAction represents the user's action in the selection UI.
type SelectionAction int

const (
	// ActionNone indicates no action was taken.
	ActionNone SelectionAction = iota
	// ActionSelected indicates the user selected an item.
	ActionSelected
	// ActionSkipped indicates the user skipped the selection.
	ActionSkipped
	// ActionStopped indicates the user stopped processing entirely.
	ActionStopped
)

func (a SelectionAction) String() string {
	switch a {
	case ActionSelected:
		return "selected"
	case ActionSkipped:
		return "skipped"
	case ActionStopped:
		return "stopped"
	default:
		return "none"
	}
}

// SelectionResult holds the result of a TUI selection.
type SelectionResult struct {
	Action    SelectionAction
	Selection *omdb.SearchResult
}

type resultItem struct {
	omdb.SearchResult
}

func (i resultItem) Title() string {
	return fmt.Sprintf("%s (%s)", strings.ToUpper(i.SearchResult.Title), i.Year)
}

func (i resultItem) FilterValue() string {
	return i.SearchResult.Title
}

func (i resultItem) Description() string {
	return i.IMDbID
}

type itemStyles struct {
	normal    lipgloss.Style
	selected  lipgloss.Style
	typeStyle lipgloss.Style
	title     lipgloss.Style
	metadata  lipgloss.Style
}

func newItemStyles() itemStyles {
	asciiBorder := lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	container := lipgloss.NewStyle().
		Border(asciiBorder).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Foreground(lipgloss.Color("252"))

	selected := container.Copy().
		BorderForeground(lipgloss.Color("214")).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("237"))

	return itemStyles{
		normal:   container,
		selected: selected,
		typeStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110")),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254")),
		metadata: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true),
	}
}

type resultDelegate struct {
	styles itemStyles
}

func (d resultDelegate) Height() int                         { return 4 }
func (d resultDelegate) Spacing() int                        { return 1 }
func (d resultDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d resultDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	result, ok := item.(resultItem)
	if !ok {
		return
	}

	typeLine := d.styles.typeStyle.Render(fmt.Sprintf("[%s]", strings.ToUpper(result.Type)))
	titleLine := d.styles.title.Render(truncate(result.Title(), m.Width()-4))
	metadataLine := d.styles.metadata.Render(formatMetadata(result.SearchResult))

	content := lipgloss.JoinVertical(lipgloss.Left, typeLine, titleLine, metadataLine)

	container := d.styles.normal
	if idx == m.Index() {
		container = d.styles.selected
	}
	_, _ = fmt.Fprint(w, container.Render(content))
}

type model struct {
	list        list.Model
	searchTitle string
	result      SelectionResult
}

func newModel(title string, items []resultItem) *model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, resultDelegate{styles: newItemStyles()}, defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle()

	return &model{
		list:        l,
		searchTitle: title,
		result:      SelectionResult{Action: ActionNone},
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if selected, ok := m.list.SelectedItem().(resultItem); ok {
				result := selected.SearchResult
				m.result = SelectionResult{Action: ActionSelected, Selection: &result}
				return m, tea.Quit
			}
		case "s", "esc":
			m.result = SelectionResult{Action: ActionSkipped}
			return m, tea.Quit
		case "ctrl+c", "q":
			m.result = SelectionResult{Action: ActionStopped}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		width := clamp(defaultListWidth, msg.Width-4, 40)
		height := clamp(defaultListHeight, msg.Height-6, 5)
		m.list.SetSize(width, height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	header := headerStyle.Render(fmt.Sprintf("Results for: %s", m.searchTitle))
	help := helpStyle.Render("Up/Down navigate | Enter select | s skip | q stop")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View(), help)
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)

// Select lets the user pick one OMDB search hit. Hits without an IMDb ID
// cannot be fetched and are not offered; with none left the result is
// ActionSkipped.
func Select(query string, results []omdb.SearchResult) (SelectionResult, error) {
	items := make([]resultItem, 0, len(results))
	for _, result := range results {
		if result.IMDbID != "" {
			items = append(items, resultItem{SearchResult: result})
		}
	}

	if len(items) == 0 {
		return SelectionResult{Action: ActionSkipped}, nil
	}

	finalModel, err := runProgram(newModel(query, items))
	if err != nil {
		return SelectionResult{}, err
	}

	if typed, ok := finalModel.(*model); ok {
		return typed.result, nil
	}

	return SelectionResult{}, fmt.Errorf("unexpected program result")
}

func truncate(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	if width <= 0 || len(value) <= width {
		return value
	}
	if width <= 3 {
		return value[:width]
	}
	return value[:width-3] + "..."
}

func formatMetadata(result omdb.SearchResult) string {
	parts := []string{result.IMDbID}
	if result.Poster != "" && result.Poster != "N/A" {
		parts = append(parts, "poster")
	}
	return strings.Join(parts, " | ")
}

func clamp(defaultValue, available, minimum int) int {
	width := defaultValue
	if available > 0 && available < defaultValue {
		width = available
	}
	if width < minimum {
		width = minimum
	}
	return width
}
