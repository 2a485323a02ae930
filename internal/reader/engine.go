package reader

import "time"

// Mode selects the active presentation.
type Mode int

// Presentation modes.
const (
	ModeLinear Mode = iota
	ModePaired
)

// Setting bounds. Out-of-range values are silently clamped.
const (
	WPMMin = 60
	WPMMax = 1200

	ChunkCharsMin = 10
	ChunkCharsMax = 100

	// Manual gap bounds; training uses GapMin/GapMax.
	ManualGapMin = 0
	ManualGapMax = 1200
)

// CursorKind identifies which cursor a scheduled tick belongs to.
type CursorKind int

// Cursor kinds for tick routing.
const (
	LinearTick CursorKind = iota
	PairTick
)

// Frame is the render snapshot exposed to the host after every command or
// tick.
type Frame struct {
	Mode     Mode
	Training bool
	Playing  bool
	Text     string
	Left     string
	Right    string
	Progress float64
	WPM      int
	Chunk    int
	Gap      int
	Guide    bool
}

// Engine is the top-level controller: it owns both cursors, arbitrates which
// one is live, and holds the presentation settings. While Paired mode is
// active the pair position is the source of truth and the linear position is
// a synced view of it; the sync never runs the other way.
type Engine struct {
	words []string

	cursor *Cursor
	pair   *PairCursor
	mod    *Modulator

	mode     Mode
	training bool

	wpm   int
	chunk int
	gap   int
	guide bool
}

// NewEngine creates an engine over the word sequence with the given settings
// and a starting position.
func NewEngine(words []string, wpm, chunkChars, gap int, guide bool, position int) *Engine {
	e := &Engine{
		words:  words,
		cursor: NewCursor(words),
		pair:   NewPairCursor(words),
		wpm:    clamp(wpm, WPMMin, WPMMax),
		chunk:  clamp(chunkChars, ChunkCharsMin, ChunkCharsMax),
		gap:    clamp(gap, ManualGapMin, ManualGapMax),
		guide:  guide,
	}
	e.cursor.Seek(position)
	return e
}

// Mode returns the active mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Training reports whether the training oscillation is on.
func (e *Engine) Training() bool {
	return e.training
}

// Position returns the canonical position in the word sequence.
func (e *Engine) Position() int {
	return e.cursor.Pos()
}

// Playing reports whether the active cursor is playing.
func (e *Engine) Playing() bool {
	if e.mode == ModePaired {
		return e.pair.Playing()
	}
	return e.cursor.Playing()
}

// Interval returns the tick delay for the current rate. It is re-read at
// every scheduling point, so a rate change applies on the next tick.
func (e *Engine) Interval() time.Duration {
	return Interval(e.wpm)
}

// TogglePlay routes play/pause to the cursor active in the current mode.
// Returns the tick kind and clock generation to schedule when playback
// started.
func (e *Engine) TogglePlay() (CursorKind, int, bool) {
	if e.mode == ModePaired {
		gen, started := e.pair.TogglePlay()
		return PairTick, gen, started
	}
	gen, started := e.cursor.TogglePlay()
	return LinearTick, gen, started
}

// Tick applies a scheduled tick. Ticks for the inactive mode or with a stale
// generation are discarded. Returns whether another tick should be scheduled.
func (e *Engine) Tick(kind CursorKind, gen int) bool {
	switch kind {
	case LinearTick:
		if e.mode != ModeLinear {
			return false
		}
		_, playing := e.cursor.Tick(gen, e.chunk)
		return playing
	case PairTick:
		if e.mode != ModePaired {
			return false
		}
		applied, playing := e.pair.Tick(gen)
		if applied {
			e.syncFromPair()
		}
		return playing
	}
	return false
}

// Seek jumps to a position in Linear mode; it pauses first. In Paired mode
// seeking is disabled and the command is ignored.
func (e *Engine) Seek(target int) {
	if e.mode == ModePaired {
		return
	}
	e.cursor.Seek(target)
}

// StepForward advances manually by one chunk or one pair, pausing first.
func (e *Engine) StepForward() {
	if e.mode == ModePaired {
		e.pair.Step(true)
		e.syncFromPair()
		return
	}
	e.cursor.StepForward(e.chunk)
}

// StepBackward moves back by one chunk or one pair, pausing first.
func (e *Engine) StepBackward() {
	if e.mode == ModePaired {
		e.pair.Step(false)
		e.syncFromPair()
		return
	}
	e.cursor.StepBackward(e.chunk)
}

// SetRate clamps and applies a new words-per-minute rate. A running clock
// picks it up at its next scheduling.
func (e *Engine) SetRate(wpm int) {
	e.wpm = clamp(wpm, WPMMin, WPMMax)
}

// Rate returns the current words-per-minute rate.
func (e *Engine) Rate() int {
	return e.wpm
}

// SetChunkChars clamps and applies a new chunk character budget.
func (e *Engine) SetChunkChars(n int) {
	e.chunk = clamp(n, ChunkCharsMin, ChunkCharsMax)
}

// ChunkChars returns the current chunk character budget.
func (e *Engine) ChunkChars() int {
	return e.chunk
}

// SetGap clamps and applies a manual gap width.
func (e *Engine) SetGap(px int) {
	e.gap = clamp(px, ManualGapMin, ManualGapMax)
}

// Gap returns the current pair gap width.
func (e *Engine) Gap() int {
	return e.gap
}

// ToggleGuide flips the center-guide overlay.
func (e *Engine) ToggleGuide() {
	e.guide = !e.guide
}

// ToggleMode switches between Linear and Paired. The outgoing timer is fully
// stopped before anything else changes; entering Paired snaps the pair
// position to the even index at or below the linear position and leaves the
// pair timer stopped until play is pressed. Leaving Paired turns training
// off as a side effect.
func (e *Engine) ToggleMode() {
	if e.mode == ModeLinear {
		e.cursor.Clock().Stop()
		e.pair.Snap(e.cursor.Pos())
		e.mod = nil
		e.mode = ModePaired
		return
	}
	e.pair.Clock().Stop()
	e.training = false
	e.mod = nil
	e.mode = ModeLinear
}

// ToggleTraining flips the training oscillation. Turning it on forces Paired
// mode, resets the modulator with the gap at its minimum, and starts the pair
// timer; the returned generation schedules the first tick. Turning it off
// stops the pair timer.
func (e *Engine) ToggleTraining() (int, bool) {
	if e.training {
		e.pair.Clock().Stop()
		e.training = false
		e.mod = nil
		return 0, false
	}
	if len(e.words) == 0 {
		return 0, false
	}
	if e.mode != ModePaired {
		e.ToggleMode()
	}
	e.training = true
	e.gap = GapMin
	e.guide = true
	e.mod = NewModulator(e.pair.Pos())
	gen := e.pair.Clock().Start()
	return gen, true
}

// Reset stops all timers and returns both cursors to the start.
func (e *Engine) Reset() {
	e.pair.Clock().Stop()
	e.training = false
	e.mod = nil
	e.cursor.Reset()
	e.pair.Snap(0)
}

// Frame builds the render snapshot for the current state.
func (e *Engine) Frame() Frame {
	f := Frame{
		Mode:     e.mode,
		Training: e.training,
		Playing:  e.Playing(),
		Progress: e.progress(),
		WPM:      e.wpm,
		Chunk:    e.chunk,
		Gap:      e.gap,
		Guide:    e.guide,
	}
	if e.mode == ModePaired {
		f.Left, f.Right = e.pair.Pair()
		return f
	}
	f.Text = NextChunk(e.words, e.cursor.Pos(), e.chunk).Text
	return f
}

// Clock returns the clock for the given tick kind.
func (e *Engine) Clock(kind CursorKind) *Clock {
	if kind == PairTick {
		return e.pair.Clock()
	}
	return e.cursor.Clock()
}

// syncFromPair mirrors the pair position into the linear cursor. Pair drives
// linear, never the reverse, so progress and persisted position stay
// meaningful after returning to Linear mode.
func (e *Engine) syncFromPair() {
	pos := e.pair.Pos()
	if e.training && e.mod != nil {
		e.gap = e.mod.Observe(pos, e.gap)
	}
	e.cursor.pos = pos
}

func (e *Engine) progress() float64 {
	if len(e.words) == 0 {
		return 0
	}
	return float64(e.cursor.Pos()) / float64(len(e.words))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
