package reader

// PairCursor tracks the position for the two-word peripheral display. The
// position is always even; the exposed pair is words[pos] and words[pos+1]
// (the second may be empty at an odd-length end). It owns its own Clock.
type PairCursor struct {
	words []string
	pos   int
	clock Clock
}

// NewPairCursor creates a pair cursor over the given word sequence.
func NewPairCursor(words []string) *PairCursor {
	return &PairCursor{words: words}
}

// Pos returns the current pair position.
func (p *PairCursor) Pos() int {
	return p.pos
}

// Playing reports whether pair playback is active.
func (p *PairCursor) Playing() bool {
	return p.clock.Running()
}

// Clock exposes the pair cursor's clock for tick scheduling.
func (p *PairCursor) Clock() *Clock {
	return &p.clock
}

// Pair returns the two words at the current position.
func (p *PairCursor) Pair() (left, right string) {
	if p.pos < len(p.words) {
		left = p.words[p.pos]
	}
	if p.pos+1 < len(p.words) {
		right = p.words[p.pos+1]
	}
	return left, right
}

// TogglePlay flips pair playback. Starting on an empty sequence is a no-op.
func (p *PairCursor) TogglePlay() (int, bool) {
	if p.clock.Running() {
		p.clock.Stop()
		return 0, false
	}
	if len(p.words) == 0 {
		return 0, false
	}
	return p.clock.Start(), true
}

// Tick advances by exactly one pair. On reaching the end the clock stops and
// the position holds at the last valid even index. Returns whether the tick
// was applied and whether playback continues.
func (p *PairCursor) Tick(gen int) (applied, playing bool) {
	if !p.clock.Accept(gen) {
		return false, false
	}
	next := p.pos + 2
	if next >= len(p.words) {
		p.clock.Stop()
		return true, false
	}
	p.pos = next
	return true, true
}

// Step moves by one pair in either direction, pausing first. Forward steps
// clamp so a pair remains visible; backward steps clamp at zero.
func (p *PairCursor) Step(forward bool) {
	p.clock.Stop()
	if forward {
		if next := p.pos + 2; next <= len(p.words)-2 {
			p.pos = next
		}
		return
	}
	prev := p.pos - 2
	if prev < 0 {
		prev = 0
	}
	p.pos = prev
}

// Snap aligns the pair position to the even index at or below the given
// linear position.
func (p *PairCursor) Snap(linearPos int) {
	pos := evenFloor(linearPos)
	if pos < 0 {
		pos = 0
	}
	if max := evenFloor(len(p.words) - 1); pos > max && max >= 0 {
		pos = max
	}
	p.pos = pos
}

func evenFloor(n int) int {
	if n < 0 {
		return 0
	}
	return n - n%2
}
