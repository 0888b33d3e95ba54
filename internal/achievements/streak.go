package achievements

import (
	"slices"
	"time"
)

// LongestStreak returns the longest run of consecutive calendar days (in loc)
// containing at least one of the given start times.
func LongestStreak(starts []time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	sorted := slices.Clone(starts)
	slices.SortFunc(sorted, func(a, b time.Time) int { return a.Compare(b) })

	streak, best := 0, 0
	var last date
	for i, start := range sorted {
		day := dateIn(start, loc)
		switch {
		case i == 0:
			streak = 1
		case day == last:
			// Same day as the previous puzzle.
		case day == last.next():
			streak++
		default:
			best = max(best, streak)
			streak = 1
		}
		last = day
	}
	return max(best, streak)
}

// date is a calendar day. Local midnight does not exist on some DST
// transition days, so days are compared as dates rather than instants.
type date struct {
	year  int
	month time.Month
	day   int
}

func dateIn(t time.Time, loc *time.Location) date {
	y, m, d := t.In(loc).Date()
	return date{y, m, d}
}

func (d date) next() date {
	y, m, dd := time.Date(d.year, d.month, d.day+1, 0, 0, 0, 0, time.UTC).Date()
	return date{y, m, dd}
}

