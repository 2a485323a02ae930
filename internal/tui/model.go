// Package tui provides the Bubble Tea reading interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avosk/flit/internal/model"
	"github.com/avosk/flit/internal/reader"
	"github.com/avosk/flit/internal/store"
)

const (
	wpmStep    = 10
	chunkStep  = 5
	gapKeyStep = 10
)

type tickMsg struct {
	kind reader.CursorKind
	gen  int
}

// Model implements the Bubble Tea reading UI.
type Model struct {
	engine *reader.Engine
	store  *store.Store
	book   model.Book

	width  int
	height int

	sessionStart time.Time
	sessionFrom  int
}

// NewModel constructs a reading TUI model.
func NewModel(engine *reader.Engine, st *store.Store, book model.Book) *Model {
	return &Model{
		engine:      engine,
		store:       st,
		book:        book,
		sessionFrom: engine.Position(),
	}
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
		return m, nil
	case tickMsg:
		if m.engine.Tick(msg.kind, msg.gen) {
			return m, m.scheduleTick(msg.kind)
		}
		// Playback stopped at end of sequence or the tick was stale.
		m.savePosition()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.savePosition()
		m.recordSession()
		return m, tea.Quit
	case " ":
		kind, gen, started := m.engine.TogglePlay()
		if started {
			m.markSessionStart()
			return m, m.tickAfter(kind, gen, m.engine.Interval())
		}
		m.savePosition()
		return m, nil
	case "right", "l":
		m.engine.StepForward()
		m.savePosition()
		return m, nil
	case "left", "h":
		m.engine.StepBackward()
		m.savePosition()
		return m, nil
	case "up", "k":
		m.engine.SetRate(m.engine.Rate() + wpmStep)
		return m, nil
	case "down", "j":
		m.engine.SetRate(m.engine.Rate() - wpmStep)
		return m, nil
	case "]":
		m.engine.SetChunkChars(m.engine.ChunkChars() + chunkStep)
		return m, nil
	case "[":
		m.engine.SetChunkChars(m.engine.ChunkChars() - chunkStep)
		return m, nil
	case "=", "+":
		m.engine.SetGap(m.engine.Gap() + gapKeyStep)
		return m, nil
	case "-":
		m.engine.SetGap(m.engine.Gap() - gapKeyStep)
		return m, nil
	case "p":
		m.engine.ToggleMode()
		m.savePosition()
		return m, nil
	case "t":
		gen, started := m.engine.ToggleTraining()
		if started {
			m.markSessionStart()
			return m, m.tickAfter(reader.PairTick, gen, m.engine.Interval())
		}
		m.savePosition()
		return m, nil
	case "g":
		m.engine.ToggleGuide()
		return m, nil
	case "home":
		m.engine.Seek(0)
		m.savePosition()
		return m, nil
	case "end":
		m.engine.Seek(m.book.WordCount - 1)
		m.savePosition()
		return m, nil
	case "0":
		m.engine.Reset()
		m.savePosition()
		return m, nil
	default:
		return m, nil
	}
}

// scheduleTick arms the next tick for the given cursor at the interval
// derived from the current rate. The generation is captured now so a tick
// arriving after a stop or mode switch is discarded.
func (m *Model) scheduleTick(kind reader.CursorKind) tea.Cmd {
	return m.tickAfter(kind, m.engine.Clock(kind).Gen(), m.engine.Interval())
}

func (m *Model) tickAfter(kind reader.CursorKind, gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{kind: kind, gen: gen}
	})
}

func (m *Model) markSessionStart() {
	if m.sessionStart.IsZero() {
		m.sessionStart = time.Now()
	}
}

func (m *Model) savePosition() {
	if m.store == nil {
		return
	}
	ctx := context.Background()
	if err := m.store.SavePosition(ctx, m.book.ID, m.engine.Position()); err != nil {
		logErrf("failed to save position: %v\n", err)
	}
}

func (m *Model) recordSession() {
	if m.store == nil || m.sessionStart.IsZero() {
		return
	}
	wordsRead := m.engine.Position() - m.sessionFrom
	if wordsRead <= 0 {
		return
	}
	endedAt := time.Now()
	mode := "linear"
	if m.engine.Mode() == reader.ModePaired {
		mode = "paired"
	}
	sess := model.Session{
		BookID:     m.book.ID,
		StartedAt:  m.sessionStart,
		EndedAt:    endedAt,
		WordsRead:  wordsRead,
		DurationMs: endedAt.Sub(m.sessionStart).Milliseconds(),
		Mode:       mode,
	}
	ctx := context.Background()
	if _, err := m.store.InsertSession(ctx, sess); err != nil {
		logErrf("failed to save session: %v\n", err)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
