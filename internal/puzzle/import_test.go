package puzzle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestDecodeImport(t *testing.T) {
	input := `{
		"version": 1,
		"puzzles": [
			{"id": 1, "completed": true, "score": 1, "excess_count": 0, "reveals": 0,
			 "had_hints": false, "start_time_ms": 1700000000000, "duration_ms": 40000},
			{"id": 2, "completed": false}
		]
	}`

	records, err := DecodeImport(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeImport: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	first := records[0]
	if !first.Completed || first.Score != 1 {
		t.Errorf("first record = %+v, want completed with perfect score", first)
	}
	if !first.StartTime.Equal(time.UnixMilli(1700000000000)) {
		t.Errorf("StartTime = %v", first.StartTime)
	}
	if first.Duration != 40*time.Second {
		t.Errorf("Duration = %v, want 40s", first.Duration)
	}

	if records[1].Started() {
		t.Error("record without start_time_ms should not be started")
	}
}

func TestDecodeImport_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{"puzzles": [`},
		{"missing puzzles", `{"version": 1}`},
		{"score out of range", `{"puzzles": [{"id": 1, "completed": true, "score": 1.5}]}`},
		{"negative reveals", `{"puzzles": [{"id": 1, "completed": true, "reveals": -1}]}`},
		{"unknown field", `{"puzzles": [{"id": 1, "completed": true, "moves": 3}]}`},
		{"missing completed", `{"puzzles": [{"id": 1}]}`},
		{"negative duration", `{"puzzles": [{"id": 1, "completed": true, "duration_ms": -1}]}`},
		{"duration overflows", `{"puzzles": [{"id": 1, "completed": true, "duration_ms": 9300000000000}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeImport(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			var invalid *ErrInvalidImport
			if !errors.As(err, &invalid) {
				t.Errorf("error %v is not *ErrInvalidImport", err)
			}
		})
	}
}

func TestDecodeImport_LongestDuration(t *testing.T) {
	input := fmt.Sprintf(`{"puzzles": [{"id": 1, "completed": true, "duration_ms": %d}]}`, MaxDurationMs)

	records, err := DecodeImport(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeImport: %v", err)
	}
	if records[0].Duration <= 0 {
		t.Errorf("Duration = %v, want positive", records[0].Duration)
	}
}

func TestRecordFinish(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	done := Record{Completed: true, StartTime: start, Duration: time.Minute}
	if got := done.Finish(); !got.Equal(start.Add(time.Minute)) {
		t.Errorf("Finish() = %v, want %v", got, start.Add(time.Minute))
	}

	unfinished := Record{StartTime: start, Duration: time.Minute}
	if !unfinished.Finish().IsZero() {
		t.Error("unfinished puzzle should have zero finish time")
	}
}

func TestStaticProvider(t *testing.T) {
	p := StaticProvider{{ID: 1}, {ID: 2}}
	got, err := p.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	got[0].ID = 99
	if p[0].ID != 1 {
		t.Error("All should return a copy")
	}
}
