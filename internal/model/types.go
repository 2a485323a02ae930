// Package model defines shared data structures.
package model

import "time"

// Settings defines reader presentation settings.
type Settings struct {
	WPM        int
	ChunkChars int
	Gap        int
	Guide      bool
}

// Book describes an imported book and its saved reading position.
type Book struct {
	ID         int64
	Path       string
	Title      string
	WordCount  int
	Position   int
	AddedAt    time.Time
	LastReadAt time.Time
}

// Session captures a completed reading session.
type Session struct {
	ID         int64
	BookID     int64
	StartedAt  time.Time
	EndedAt    time.Time
	WordsRead  int
	DurationMs int64
	Mode       string
}

// StatsConfig defines filters for stats output.
type StatsConfig struct {
	Book  string
	Since *time.Time
	Last  int
}
