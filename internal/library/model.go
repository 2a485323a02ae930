// Package library provides the Bubble Tea book picker.
package library

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avosk/flit/internal/model"
)

// Model implements the book picker UI.
type Model struct {
	books    []model.Book
	table    table.Model
	selected string

	width  int
	height int
}

// NewModel constructs a picker over the given books, most recent first.
func NewModel(books []model.Book) *Model {
	t := table.New(
		table.WithColumns(columns()),
		table.WithRows(rowsFor(books)),
		table.WithHeight(len(books)+1),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles())
	return &Model{books: books, table: t}
}

// Selected returns the path of the chosen book, or empty when cancelled.
func (m *Model) Selected() string {
	return m.selected
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		if h := msg.Height - 2; h > 1 {
			m.table.SetHeight(minInt(h, len(m.books)+1))
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.books) {
				m.selected = m.books[cursor].Path
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if len(m.books) == 0 {
		return "No books yet. Open one with: flit <file>\n"
	}
	footer := footerStyle.Render("enter open  ·  q quit")
	return m.table.View() + "\n" + footer
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))

func columns() []table.Column {
	return []table.Column{
		{Title: "Title", Width: 32},
		{Title: "Words", Width: 8},
		{Title: "Progress", Width: 9},
		{Title: "Last read", Width: 16},
	}
}

func rowsFor(books []model.Book) []table.Row {
	rows := make([]table.Row, 0, len(books))
	for _, b := range books {
		progress := 0
		if b.WordCount > 0 {
			progress = b.Position * 100 / b.WordCount
		}
		rows = append(rows, table.Row{
			b.Title,
			fmt.Sprintf("%d", b.WordCount),
			fmt.Sprintf("%d%%", progress),
			b.LastReadAt.Local().Format("2006-01-02 15:04"),
		})
	}
	return rows
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
