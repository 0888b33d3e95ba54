package achievements

import (
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/abhisek/cryptogram/internal/puzzle"
)

// NoBrainerLimit is the longest solve time that still counts as a no-brainer.
const NoBrainerLimit = 45 * time.Second

// Entry is one point of the start-ordered puzzle timeline. Duration is zero
// for puzzles that were started but not completed, and for completed puzzles
// with a negative duration.
type Entry struct {
	Start    time.Time
	Duration time.Duration
}

// Stats are the aggregates the achievement rules are evaluated against.
type Stats struct {
	Completed     int
	PerfectScores int
	CleanSolve    bool // completed with no reveals, no excess inputs and no hints
	NoBrainer     bool // completed within NoBrainerLimit
	Timeline      []Entry
	LongestStreak int
}

// ComputeStats aggregates the puzzle history. Days for the streak are
// calendar dates in loc.
func ComputeStats(records []puzzle.Record, loc *time.Location) Stats {
	var s Stats

	// Keyed by start millisecond; a later record with the same start wins.
	byStart := make(map[int64]Entry)
	for _, r := range records {
		if r.Completed {
			s.Completed++
			if r.Score >= 1 {
				s.PerfectScores++
			}
			if r.ExcessCount == 0 && r.Reveals == 0 && !r.HadHints {
				s.CleanSolve = true
			}
		}
		if !r.Started() {
			continue
		}
		duration := r.Duration
		if !r.Completed || duration < 0 {
			duration = 0
		}
		if duration > 0 && duration <= NoBrainerLimit {
			s.NoBrainer = true
		}
		byStart[r.StartTime.UnixMilli()] = Entry{Start: r.StartTime, Duration: duration}
	}

	s.Timeline = lo.Values(byStart)
	slices.SortFunc(s.Timeline, func(a, b Entry) int {
		return a.Start.Compare(b.Start)
	})

	starts := lo.Map(s.Timeline, func(e Entry, _ int) time.Time { return e.Start })
	s.LongestStreak = LongestStreak(starts, loc)
	return s
}
