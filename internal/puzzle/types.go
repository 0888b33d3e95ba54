package puzzle

import "time"

// Record is the per-puzzle history the achievement evaluator scores.
type Record struct {
	ID          int
	Completed   bool
	Score       float64 // 0.0-1.0
	ExcessCount int     // letters entered beyond what the solution needed
	Reveals     int
	HadHints    bool
	StartTime   time.Time // zero when the puzzle was never started
	Duration    time.Duration
}

// Started reports whether the puzzle has a recorded start time.
func (r Record) Started() bool {
	return !r.StartTime.IsZero()
}

// Finish returns the wall-clock time the puzzle was completed, or the zero
// time for puzzles that are not completed.
func (r Record) Finish() time.Time {
	if !r.Completed || !r.Started() {
		return time.Time{}
	}
	return r.StartTime.Add(r.Duration)
}

// Result captures how a puzzle was finished.
type Result struct {
	Score       float64
	ExcessCount int
	Reveals     int
	HadHints    bool
	Duration    time.Duration
}
