package reader

// Cursor tracks the current position in the word sequence for linear chunk
// playback. It owns exactly one Clock; playback state is the clock's running
// flag, independent of the position value.
type Cursor struct {
	words []string
	pos   int
	clock Clock
}

// NewCursor creates a cursor over the given word sequence.
func NewCursor(words []string) *Cursor {
	return &Cursor{words: words}
}

// Pos returns the current position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Playing reports whether playback is active.
func (c *Cursor) Playing() bool {
	return c.clock.Running()
}

// Clock exposes the cursor's clock for tick scheduling.
func (c *Cursor) Clock() *Clock {
	return &c.clock
}

// TogglePlay flips playback. Starting on an empty sequence is a no-op.
// Returns the new generation when playback started, zero otherwise.
func (c *Cursor) TogglePlay() (int, bool) {
	if c.clock.Running() {
		c.clock.Stop()
		return 0, false
	}
	if len(c.words) == 0 {
		return 0, false
	}
	return c.clock.Start(), true
}

// Tick advances by one chunk. Stale generations are discarded. When the next
// chunk start would reach the end of the sequence, playback stops and the
// position holds at the last valid chunk start. Returns whether the tick was
// applied and whether playback continues.
func (c *Cursor) Tick(gen, budget int) (applied, playing bool) {
	if !c.clock.Accept(gen) {
		return false, false
	}
	next := NextChunk(c.words, c.pos, budget).Next
	if next == c.pos {
		// Guard against a pathological stall on a single oversized word.
		next = c.pos + 1
	}
	if next >= len(c.words) {
		c.clock.Stop()
		return true, false
	}
	c.pos = next
	return true, true
}

// Seek clamps the target into range and pauses playback.
func (c *Cursor) Seek(target int) {
	c.clock.Stop()
	if target < 0 {
		target = 0
	}
	if max := len(c.words) - 1; target > max {
		target = max
	}
	if target < 0 {
		target = 0
	}
	c.pos = target
}

// StepForward pauses and moves to the next chunk boundary.
func (c *Cursor) StepForward(budget int) {
	c.clock.Stop()
	next := NextChunk(c.words, c.pos, budget).Next
	if next < len(c.words) {
		c.pos = next
	}
}

// StepBackward pauses and moves to the start of the preceding chunk.
func (c *Cursor) StepBackward(budget int) {
	c.clock.Stop()
	c.pos = PrevChunkStart(c.words, c.pos, budget)
}

// Reset returns to the start and pauses.
func (c *Cursor) Reset() {
	c.clock.Stop()
	c.pos = 0
}
