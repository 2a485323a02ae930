package reader

import "testing"

func TestPairPositionAlwaysEven(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e", "f", "g"}
	p := NewPairCursor(words)
	check := func(op string) {
		t.Helper()
		if p.Pos()%2 != 0 {
			t.Fatalf("odd pair position after %s: %d", op, p.Pos())
		}
	}
	p.Snap(3)
	check("snap")
	p.Step(true)
	check("step forward")
	p.Step(false)
	check("step backward")
	gen, _ := p.TogglePlay()
	for i := 0; i < 10; i++ {
		p.Tick(gen)
		check("tick")
	}
	p.Snap(6)
	check("snap to even")
}

func TestPairTickStopsAtEnd(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e"}
	p := NewPairCursor(words)
	gen, started := p.TogglePlay()
	if !started {
		t.Fatalf("expected pair playback to start")
	}
	for i := 0; i < 10; i++ {
		if _, playing := p.Tick(gen); !playing {
			break
		}
	}
	if p.Playing() {
		t.Fatalf("expected pair playback stopped at end")
	}
	if p.Pos() != 4 {
		t.Fatalf("expected hold at last even position 4, got %d", p.Pos())
	}
}

func TestPairStepClampsForward(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e"}
	p := NewPairCursor(words)
	p.Snap(2)
	p.Step(true)
	if p.Pos() != 2 {
		t.Fatalf("expected forward step clamped at length-2 bound, got %d", p.Pos())
	}
}

func TestPairStepClampsBackwardAtZero(t *testing.T) {
	p := NewPairCursor([]string{"a", "b", "c", "d"})
	p.Step(false)
	if p.Pos() != 0 {
		t.Fatalf("expected backward clamp at 0, got %d", p.Pos())
	}
}

func TestPairStepPausesFirst(t *testing.T) {
	p := NewPairCursor([]string{"a", "b", "c", "d", "e", "f"})
	gen, _ := p.TogglePlay()
	p.Step(true)
	if p.Playing() {
		t.Fatalf("expected manual step to pause the pair timer")
	}
	if applied, _ := p.Tick(gen); applied {
		t.Fatalf("expected pre-step tick to be stale")
	}
}

func TestPairExposesWordsWithEmptyTail(t *testing.T) {
	p := NewPairCursor([]string{"a", "b", "c"})
	p.Snap(2)
	left, right := p.Pair()
	if left != "c" || right != "" {
		t.Fatalf("unexpected pair at odd-length end: %q %q", left, right)
	}
}

func TestPairTogglePlayEmptySequence(t *testing.T) {
	p := NewPairCursor(nil)
	if _, started := p.TogglePlay(); started {
		t.Fatalf("expected no pair playback on empty sequence")
	}
}
