// Package model defines shared data structures.
package model

import "time"

// Config defines game settings after file and flag values are merged.
type Config struct {
	Deck         string
	Fronts       []string
	Back         string
	Pairs        int
	Columns      int
	FaceUpTime   time.Duration
	FaceDownTime time.Duration
	PauseTime    time.Duration
}

// HistoryConfig defines filters for the play log.
type HistoryConfig struct {
	Deck  string
	Since *time.Time
	Last  int
}

// GameRecord captures a solved game.
type GameRecord struct {
	ID         string
	StartedAt  time.Time
	EndedAt    time.Time
	Deck       string
	Pairs      int
	Columns    int
	Clicks     int
	Mismatches int
	DurationMs int64
}
