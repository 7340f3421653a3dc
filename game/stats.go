package game

import (
	"time"
)

// RunRecord holds the outcome of one finished run.
type RunRecord struct {
	RunID    string
	Score    int
	Duration time.Duration
	EndedAt  time.Time
}

// GameStats accumulates the finished runs of this process. Records
// live in memory only and vanish when the window closes.
type GameStats struct {
	runs []RunRecord
}

func NewGameStats() *GameStats {
	return &GameStats{
		runs: make([]RunRecord, 0),
	}
}

// AddRun records a finished run.
func (s *GameStats) AddRun(runID string, score int, duration time.Duration, endedAt time.Time) {
	s.runs = append(s.runs, RunRecord{
		RunID:    runID,
		Score:    score,
		Duration: duration,
		EndedAt:  endedAt,
	})
}

// Runs returns all recorded runs, oldest first.
func (s *GameStats) Runs() []RunRecord {
	return s.runs
}

// GamesPlayed returns the number of finished runs.
func (s *GameStats) GamesPlayed() int {
	return len(s.runs)
}

// BestScore returns the highest score across recorded runs.
func (s *GameStats) BestScore() int {
	best := 0
	for _, r := range s.runs {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

// LongestRun returns the longest recorded run duration.
func (s *GameStats) LongestRun() time.Duration {
	var longest time.Duration
	for _, r := range s.runs {
		if r.Duration > longest {
			longest = r.Duration
		}
	}
	return longest
}
