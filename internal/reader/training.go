package reader

const (
	// GapMin and GapMax bound the pair gap while training oscillates it.
	GapMin = 10
	GapMax = 550

	gapStep      = 10
	pairsPerStep = 3
)

// Modulator oscillates the pair gap width between GapMin and GapMax, widening
// or narrowing by one step every third forward pair advance. Direction flips
// when the gap reaches either bound.
type Modulator struct {
	dir     int
	count   int
	lastPos int
}

// NewModulator returns a modulator ready for a training run starting at the
// given pair position.
func NewModulator(startPos int) *Modulator {
	return &Modulator{dir: 1, lastPos: startPos}
}

// Observe feeds a pair position change. Only strictly forward movement
// counts; backward steps and repeats leave the counter alone. Returns the
// gap adjusted from the given value.
func (m *Modulator) Observe(pairPos, gap int) int {
	if pairPos <= m.lastPos {
		m.lastPos = pairPos
		return gap
	}
	m.lastPos = pairPos
	m.count++
	if m.count < pairsPerStep {
		return gap
	}
	m.count = 0
	gap += m.dir * gapStep
	if gap >= GapMax {
		gap = GapMax
		m.dir = -1
	} else if gap <= GapMin {
		gap = GapMin
		m.dir = 1
	}
	return gap
}

// Direction returns the current oscillation direction, +1 or -1.
func (m *Modulator) Direction() int {
	return m.dir
}
