package reader

import (
	"math"
	"time"
)

// Interval converts a words-per-minute rate into the delay between ticks.
// One tick per chunk at the configured rate, never below one millisecond.
func Interval(wpm int) time.Duration {
	if wpm < 1 {
		wpm = 1
	}
	ms := int(math.Round(60000 / float64(wpm)))
	if ms < 1 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}

// Clock is the cancellation discipline for one cursor's timer. The host
// schedules the actual ticks; every scheduled tick carries the generation
// issued by Start, and Accept rejects ticks from a generation that has since
// been stopped or restarted. Start implicitly invalidates any previous run.
type Clock struct {
	gen     int
	running bool
	starts  int
	stops   int
}

// Start marks the clock running and returns the generation the next
// scheduled tick must carry. Starting a running clock implicitly stops the
// previous run.
func (c *Clock) Start() int {
	if c.running {
		c.stops++
	}
	c.gen++
	c.running = true
	c.starts++
	return c.gen
}

// Stop halts the clock. Any tick scheduled before Stop is stale and will be
// rejected by Accept.
func (c *Clock) Stop() {
	c.gen++
	if c.running {
		c.running = false
		c.stops++
	}
}

// Accept reports whether a tick with the given generation is still current.
func (c *Clock) Accept(gen int) bool {
	return c.running && gen == c.gen
}

// Gen returns the current generation without changing state.
func (c *Clock) Gen() int {
	return c.gen
}

// Running reports whether the clock is running.
func (c *Clock) Running() bool {
	return c.running
}

// Starts returns how many times the clock has been started.
func (c *Clock) Starts() int {
	return c.starts
}

// Stops returns how many times a running clock has been stopped.
func (c *Clock) Stops() int {
	return c.stops
}
