package tui

import (
	"strings"
	"testing"

	"github.com/avosk/flit/internal/reader"
)

func TestBuildPairLineGapWidth(t *testing.T) {
	line := buildPairLine("left", "right", 6, 80)
	if line != "left      right" {
		t.Fatalf("unexpected pair line: %q", line)
	}
}

func TestBuildPairLineShrinksGapToFit(t *testing.T) {
	line := buildPairLine("left", "right", 50, 20)
	gap := len(line) - len("left") - len("right")
	if gap != 20-len("left")-len("right") {
		t.Fatalf("expected gap shrunk to fit width, got %d", gap)
	}
}

func TestBuildPairLineMinimumGap(t *testing.T) {
	line := buildPairLine("a", "b", 0, 80)
	if line != "a b" {
		t.Fatalf("expected single-space minimum gap, got %q", line)
	}
}

func TestBuildGuideLineMarksMidpoint(t *testing.T) {
	guide := buildGuideLine("ab  cd")
	if guide != "   |" {
		t.Fatalf("unexpected guide line: %q", guide)
	}
}

func TestRenderFooterSegments(t *testing.T) {
	engine := reader.NewEngine([]string{"one", "two", "three", "four"}, 300, 20, 40, false, 0)
	m := &Model{engine: engine}
	out := m.renderFooter(engine.Frame())
	for _, want := range []string{"300 wpm", "linear", "paused", "chunk 20"} {
		if !strings.Contains(out, want) {
			t.Fatalf("footer missing %q: %s", want, out)
		}
	}
	engine.ToggleMode()
	out = m.renderFooter(engine.Frame())
	for _, want := range []string{"paired", "gap 40"} {
		if !strings.Contains(out, want) {
			t.Fatalf("paired footer missing %q: %s", want, out)
		}
	}
}
