package cmd

import (
	"testing"
	"time"

	"github.com/abhisek/cryptogram/internal/puzzle"
)

func TestSolveDuration(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	now := start.Add(4 * time.Minute)

	tests := []struct {
		name    string
		rec     puzzle.Record
		flag    time.Duration
		want    time.Duration
		wantErr bool
	}{
		{"timed from start", puzzle.Record{ID: 1, StartTime: start}, 0, 4 * time.Minute, false},
		{"explicit duration", puzzle.Record{ID: 1, StartTime: start}, 90 * time.Second, 90 * time.Second, false},
		{"negative duration", puzzle.Record{ID: 1, StartTime: start}, -time.Hour, 0, true},
		{"never started", puzzle.Record{ID: 1}, 0, 0, true},
		{"start in the future", puzzle.Record{ID: 1, StartTime: now.Add(time.Hour)}, 0, 0, true},
		{"already completed keeps stored duration",
			puzzle.Record{ID: 1, Completed: true, StartTime: start, Duration: 30 * time.Second}, 0, 30 * time.Second, false},
		{"already completed with explicit duration",
			puzzle.Record{ID: 1, Completed: true, StartTime: start, Duration: 30 * time.Second}, time.Minute, time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := solveDuration(tt.rec, tt.flag, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("solveDuration() = %v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("solveDuration: %v", err)
			}
			if got != tt.want {
				t.Errorf("solveDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}
