package reader

import (
	"testing"
	"time"
)

func testWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = "word"
	}
	return words
}

func newTestEngine(n int) *Engine {
	return NewEngine(testWords(n), 300, 20, 40, false, 0)
}

func (e *Engine) timerBalance() int {
	linear := e.cursor.Clock()
	pair := e.pair.Clock()
	return (linear.Starts() - linear.Stops()) + (pair.Starts() - pair.Stops())
}

func TestTogglePlayRoutesToActiveMode(t *testing.T) {
	e := newTestEngine(20)
	kind, gen, started := e.TogglePlay()
	if !started || kind != LinearTick {
		t.Fatalf("expected linear playback to start, kind=%v started=%v", kind, started)
	}
	if !e.Tick(LinearTick, gen) {
		t.Fatalf("expected linear tick to keep playing")
	}
	e.TogglePlay() // pause
	e.ToggleMode()
	kind, _, started = e.TogglePlay()
	if !started || kind != PairTick {
		t.Fatalf("expected pair playback to start, kind=%v started=%v", kind, started)
	}
}

func TestModeSwitchStopsOutgoingTimer(t *testing.T) {
	e := newTestEngine(20)
	_, gen, _ := e.TogglePlay()
	e.ToggleMode()
	if e.Playing() {
		t.Fatalf("expected pair mode to start paused")
	}
	if e.Tick(LinearTick, gen) {
		t.Fatalf("expected linear tick to be discarded after mode switch")
	}
	if pos := e.Position(); pos != 0 {
		t.Fatalf("stale tick moved position to %d", pos)
	}
}

func TestRepeatedModeSwitchesLeakNoTimers(t *testing.T) {
	e := newTestEngine(40)
	for i := 0; i < 25; i++ {
		if balance := e.timerBalance(); balance < 0 || balance > 1 {
			t.Fatalf("timer balance out of range at iteration %d: %d", i, balance)
		}
		e.TogglePlay()
		if balance := e.timerBalance(); balance < 0 || balance > 1 {
			t.Fatalf("timer balance out of range while playing: %d", balance)
		}
		e.ToggleMode()
	}
	if balance := e.timerBalance(); balance < 0 || balance > 1 {
		t.Fatalf("final timer balance out of range: %d", balance)
	}
}

func TestPairPositionDrivesLinearPosition(t *testing.T) {
	e := newTestEngine(20)
	e.Seek(5)
	e.ToggleMode()
	if e.Position() != 5 {
		t.Fatalf("mode entry must not move the linear position, got %d", e.Position())
	}
	_, gen, _ := e.TogglePlay()
	e.Tick(PairTick, gen)
	if e.Position() != 6 {
		t.Fatalf("expected linear position synced to pair position 6, got %d", e.Position())
	}
	e.StepForward()
	if e.Position() != 8 {
		t.Fatalf("expected manual pair step to sync, got %d", e.Position())
	}
	e.ToggleMode()
	if e.Position() != 8 {
		t.Fatalf("expected position preserved after return to linear, got %d", e.Position())
	}
}

func TestSeekIgnoredInPairedMode(t *testing.T) {
	e := newTestEngine(20)
	e.ToggleMode()
	e.Seek(10)
	if e.Position() != 0 {
		t.Fatalf("expected seek to be ignored in paired mode, got %d", e.Position())
	}
}

func TestTrainingForcesPairedMode(t *testing.T) {
	e := newTestEngine(30)
	e.TogglePlay()
	gen, started := e.ToggleTraining()
	if !started {
		t.Fatalf("expected training to start")
	}
	if e.Mode() != ModePaired || !e.Training() {
		t.Fatalf("expected paired+training, got mode=%v training=%v", e.Mode(), e.Training())
	}
	if e.Gap() != GapMin {
		t.Fatalf("expected gap reset to minimum, got %d", e.Gap())
	}
	if !e.Frame().Guide {
		t.Fatalf("expected guide enabled on training entry")
	}
	if balance := e.timerBalance(); balance != 1 {
		t.Fatalf("expected exactly one active timer, balance=%d", balance)
	}
	// Three pair advances move the gap one step.
	for i := 0; i < 3; i++ {
		if !e.Tick(PairTick, gen) {
			t.Fatalf("training playback stopped early at advance %d", i)
		}
	}
	if e.Gap() != GapMin+10 {
		t.Fatalf("expected gap %d after three advances, got %d", GapMin+10, e.Gap())
	}
}

func TestLeavingPairedTurnsTrainingOff(t *testing.T) {
	e := newTestEngine(30)
	e.ToggleTraining()
	e.ToggleMode()
	if e.Training() {
		t.Fatalf("expected training off after leaving paired mode")
	}
	if e.Mode() != ModeLinear {
		t.Fatalf("expected linear mode")
	}
	if e.Playing() {
		t.Fatalf("expected no running timer after leaving paired mode")
	}
}

func TestToggleTrainingOffStopsPairTimer(t *testing.T) {
	e := newTestEngine(30)
	gen, _ := e.ToggleTraining()
	e.ToggleTraining()
	if e.Training() || e.Playing() {
		t.Fatalf("expected training and playback off")
	}
	if e.Tick(PairTick, gen) {
		t.Fatalf("expected stale pair tick to be discarded")
	}
}

func TestSettingClamps(t *testing.T) {
	e := newTestEngine(10)
	e.SetRate(20)
	if e.Rate() != WPMMin {
		t.Fatalf("expected rate clamped to %d, got %d", WPMMin, e.Rate())
	}
	e.SetRate(5000)
	if e.Rate() != WPMMax {
		t.Fatalf("expected rate clamped to %d, got %d", WPMMax, e.Rate())
	}
	e.SetChunkChars(1)
	if e.ChunkChars() != ChunkCharsMin {
		t.Fatalf("expected chunk clamped to %d, got %d", ChunkCharsMin, e.ChunkChars())
	}
	e.SetChunkChars(500)
	if e.ChunkChars() != ChunkCharsMax {
		t.Fatalf("expected chunk clamped to %d, got %d", ChunkCharsMax, e.ChunkChars())
	}
	e.SetGap(-10)
	if e.Gap() != ManualGapMin {
		t.Fatalf("expected gap clamped to %d, got %d", ManualGapMin, e.Gap())
	}
	e.SetGap(9999)
	if e.Gap() != ManualGapMax {
		t.Fatalf("expected gap clamped to %d, got %d", ManualGapMax, e.Gap())
	}
}

func TestRateChangeAppliesOnNextInterval(t *testing.T) {
	e := newTestEngine(10)
	if e.Interval() != 200*time.Millisecond {
		t.Fatalf("unexpected initial interval: %v", e.Interval())
	}
	e.SetRate(600)
	if e.Interval() != 100*time.Millisecond {
		t.Fatalf("expected interval recomputed from new rate, got %v", e.Interval())
	}
}

func TestEmptySequenceCommandsAreNoOps(t *testing.T) {
	e := NewEngine(nil, 300, 20, 40, false, 0)
	if _, _, started := e.TogglePlay(); started {
		t.Fatalf("expected no playback on empty sequence")
	}
	if _, started := e.ToggleTraining(); started {
		t.Fatalf("expected no training on empty sequence")
	}
	e.StepForward()
	e.StepBackward()
	e.Seek(3)
	if e.Position() != 0 {
		t.Fatalf("expected position stuck at 0, got %d", e.Position())
	}
	if f := e.Frame(); f.Progress != 0 {
		t.Fatalf("expected zero progress, got %f", f.Progress)
	}
}

func TestFrameLinearAndPaired(t *testing.T) {
	words := []string{"The", "quick", "brown", "fox", "jumps"}
	e := NewEngine(words, 300, 10, 40, false, 0)
	f := e.Frame()
	if f.Text != "The quick" {
		t.Fatalf("unexpected linear frame text: %q", f.Text)
	}
	e.ToggleMode()
	f = e.Frame()
	if f.Left != "The" || f.Right != "quick" {
		t.Fatalf("unexpected pair frame: %q %q", f.Left, f.Right)
	}
}

func TestResetClearsEverything(t *testing.T) {
	e := newTestEngine(20)
	e.ToggleTraining()
	e.Reset()
	if e.Training() || e.Playing() || e.Position() != 0 {
		t.Fatalf("expected clean state after reset")
	}
}

func TestStartPositionRestored(t *testing.T) {
	e := NewEngine(testWords(50), 300, 20, 40, false, 30)
	if e.Position() != 30 {
		t.Fatalf("expected saved position restored, got %d", e.Position())
	}
	e2 := NewEngine(testWords(10), 300, 20, 40, false, 30)
	if e2.Position() != 9 {
		t.Fatalf("expected saved position clamped to sequence, got %d", e2.Position())
	}
}
