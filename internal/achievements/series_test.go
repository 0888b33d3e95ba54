package achievements

import (
	"testing"
	"time"
)

// run builds n entries started one minute apart from t0, with the last
// entry finishing at t0+lastFinish.
func run(t0 time.Time, n int, lastFinish time.Duration) []Entry {
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{Start: t0.Add(time.Duration(i) * time.Minute), Duration: 30 * time.Second}
	}
	last := &entries[n-1]
	last.Duration = lastFinish - last.Start.Sub(t0)
	return entries
}

func TestHasSeries(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		timeline []Entry
		n        int
		window   time.Duration
		want     bool
	}{
		{"five within ten minutes", run(t0, 5, 599999*time.Millisecond), 5, 10 * time.Minute, true},
		{"exactly ten minutes", run(t0, 5, 10*time.Minute), 5, 10 * time.Minute, true},
		{"five just over ten minutes", run(t0, 5, 600001*time.Millisecond), 5, 10 * time.Minute, false},
		{"too few puzzles", run(t0, 4, 5*time.Minute), 5, 10 * time.Minute, false},
		{"empty", nil, 5, 10 * time.Minute, false},
		{"zero length", run(t0, 3, time.Minute*3), 0, 10 * time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HasSeries(tt.timeline, tt.n, tt.window)
			if got != tt.want {
				t.Errorf("HasSeries() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasSeries_SkipsUnfinishedLast(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	timeline := run(t0, 5, 5*time.Minute)
	timeline[4].Duration = 0

	if HasSeries(timeline, 5, 10*time.Minute) {
		t.Error("window ending on an unfinished puzzle should be skipped")
	}

	// A later finished puzzle opens a new window over entries 1..5.
	timeline = append(timeline, Entry{Start: t0.Add(6 * time.Minute), Duration: time.Minute})
	if !HasSeries(timeline, 5, 10*time.Minute) {
		t.Error("expected series ending on the finished sixth puzzle")
	}
}

func TestHasSeries_SlidingWindow(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	// One slow puzzle an hour earlier, then a fast run of five.
	timeline := []Entry{{Start: t0.Add(-time.Hour), Duration: 20 * time.Minute}}
	timeline = append(timeline, run(t0, 5, 8*time.Minute)...)

	if !HasSeries(timeline, 5, 10*time.Minute) {
		t.Error("expected the trailing five puzzles to form a series")
	}
	if HasSeries(timeline, 6, 10*time.Minute) {
		t.Error("six puzzles including the slow one should not fit in ten minutes")
	}
}

func TestHasSeries_SkipsNegativeLast(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	timeline := make([]Entry, 5)
	for i := range timeline {
		timeline[i] = Entry{Start: t0.Add(time.Duration(i) * 3 * time.Hour), Duration: time.Minute}
	}
	timeline[4].Duration = -24 * time.Hour

	if HasSeries(timeline, 5, 10*time.Minute) {
		t.Error("a negative duration must not pull the finish inside the window")
	}
}
