// Package reader implements the speed-reading presentation engine.
package reader

import "strings"

// Chunk is a run of whole words shown together as one display unit.
type Chunk struct {
	Text string
	Next int
}

// NextChunk accumulates words from start until adding the next word would
// exceed the character budget. Each word counts as len(word)+1 (word plus one
// separator). A chunk is never empty: a first word larger than the budget is
// included on its own. Past the end of the sequence the chunk is empty and
// Next equals start.
func NextChunk(words []string, start, budget int) Chunk {
	if start < 0 {
		start = 0
	}
	if start >= len(words) {
		return Chunk{Text: "", Next: start}
	}
	total := 0
	end := start
	for end < len(words) {
		cost := len(words[end]) + 1
		if end > start && total+cost > budget {
			break
		}
		total += cost
		end++
		if total > budget {
			break
		}
	}
	return Chunk{Text: strings.Join(words[start:end], " "), Next: end}
}

// PrevChunkStart walks backward from pos accumulating word lengths under the
// same budget rule and returns the start of the chunk immediately preceding
// pos. If not even one previous word fits, it steps back exactly one word.
func PrevChunkStart(words []string, pos, budget int) int {
	if pos <= 0 {
		return 0
	}
	if pos > len(words) {
		pos = len(words)
	}
	total := 0
	start := pos
	for start > 0 {
		cost := len(words[start-1]) + 1
		if total+cost > budget {
			break
		}
		total += cost
		start--
	}
	if start == pos {
		start = pos - 1
	}
	return start
}
