package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/avosk/flit/internal/reader"
)

// Gap widths are kept in the engine's unit (tenths of a column) so the
// training bounds match across hosts; rendering divides by this scale.
const gapColScale = 10

var (
	chunkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	pairStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	guideStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// View implements tea.Model.
func (m *Model) View() string {
	frame := m.engine.Frame()
	if m.width == 0 || m.height == 0 {
		return renderContent(frame, 0)
	}
	content := renderContent(frame, m.width)
	footer := m.renderFooter(frame)
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func renderContent(frame reader.Frame, width int) string {
	if frame.Mode == reader.ModePaired {
		return renderPair(frame, width)
	}
	if frame.Text == "" {
		return pausedStyle.Render("(end)")
	}
	return chunkStyle.Render(frame.Text)
}

func renderPair(frame reader.Frame, width int) string {
	line := buildPairLine(frame.Left, frame.Right, frame.Gap/gapColScale, width)
	rendered := pairStyle.Render(line)
	if !frame.Guide {
		return rendered
	}
	guide := buildGuideLine(line)
	return guideStyle.Render(guide) + "\n" + rendered + "\n" + guideStyle.Render(guide)
}

// buildPairLine centers the gap between the two words so the pair midpoint
// stays fixed while the gap oscillates. The gap shrinks to fit narrow
// terminals.
func buildPairLine(left, right string, gapCols, width int) string {
	if gapCols < 1 {
		gapCols = 1
	}
	if width > 0 {
		avail := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
		if avail < 1 {
			avail = 1
		}
		if gapCols > avail {
			gapCols = avail
		}
	}
	return left + strings.Repeat(" ", gapCols) + right
}

// buildGuideLine marks the midpoint of the pair line for the center-guide
// overlay.
func buildGuideLine(pairLine string) string {
	total := runewidth.StringWidth(pairLine)
	mid := total / 2
	if mid < 0 {
		mid = 0
	}
	return strings.Repeat(" ", mid) + "|"
}

func (m *Model) renderFooter(frame reader.Frame) string {
	state := "paused"
	if frame.Playing {
		state = "playing"
	}
	mode := "linear"
	switch {
	case frame.Training:
		mode = "training"
	case frame.Mode == reader.ModePaired:
		mode = "paired"
	}
	segments := []string{
		m.book.Title,
		fmt.Sprintf("%d%%", int(frame.Progress*100)),
		fmt.Sprintf("%d wpm", frame.WPM),
		mode,
		state,
	}
	if frame.Mode == reader.ModePaired {
		segments = append(segments, fmt.Sprintf("gap %d", frame.Gap))
	} else {
		segments = append(segments, fmt.Sprintf("chunk %d", frame.Chunk))
	}
	return footerStyle.Render(strings.Join(segments, "  ·  "))
}
