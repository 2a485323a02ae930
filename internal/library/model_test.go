package library

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avosk/flit/internal/model"
)

func testBooks() []model.Book {
	now := time.Now()
	return []model.Book{
		{ID: 1, Path: "/books/a.txt", Title: "a", WordCount: 200, Position: 100, LastReadAt: now},
		{ID: 2, Path: "/books/b.txt", Title: "b", WordCount: 400, Position: 0, LastReadAt: now},
	}
}

func TestEnterSelectsBookUnderCursor(t *testing.T) {
	m := NewModel(testBooks())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected quit command on enter")
	}
	if m.Selected() != "/books/a.txt" {
		t.Fatalf("expected first book selected, got %q", m.Selected())
	}
}

func TestQuitWithoutSelection(t *testing.T) {
	m := NewModel(testBooks())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if m.Selected() != "" {
		t.Fatalf("expected no selection, got %q", m.Selected())
	}
}

func TestViewShowsProgress(t *testing.T) {
	m := NewModel(testBooks())
	out := m.View()
	if !strings.Contains(out, "50%") {
		t.Fatalf("expected progress column in view:\n%s", out)
	}
}

func TestViewEmptyLibrary(t *testing.T) {
	m := NewModel(nil)
	if !strings.Contains(m.View(), "No books yet") {
		t.Fatalf("expected empty-library notice")
	}
}
