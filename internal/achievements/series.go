package achievements

import "time"

// HasSeries reports whether some n consecutive timeline entries were played
// within window, measured from the first start to the last finish. Windows
// ending on an unfinished puzzle (no positive duration) are skipped.
func HasSeries(timeline []Entry, n int, window time.Duration) bool {
	if n <= 0 {
		return false
	}
	for i := n - 1; i < len(timeline); i++ {
		last := timeline[i]
		if last.Duration <= 0 {
			continue
		}
		first := timeline[i-n+1]
		finish := last.Start.Add(last.Duration)
		if finish.Sub(first.Start) <= window {
			return true
		}
	}
	return false
}
