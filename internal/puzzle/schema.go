package puzzle

import (
	"math"
	"time"
)

// MaxDurationMs is the longest duration_ms that still fits a time.Duration.
const MaxDurationMs = math.MaxInt64 / int64(time.Millisecond)

// importSchema describes a puzzle history export. Times are Unix milliseconds.
var importSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":    "integer",
			"minimum": 1,
		},
		"puzzles": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":    "integer",
						"minimum": 0,
					},
					"completed": map[string]any{"type": "boolean"},
					"score": map[string]any{
						"type":    "number",
						"minimum": 0,
						"maximum": 1,
					},
					"excess_count":  map[string]any{"type": "integer", "minimum": 0},
					"reveals":       map[string]any{"type": "integer", "minimum": 0},
					"had_hints":     map[string]any{"type": "boolean"},
					"start_time_ms": map[string]any{"type": "integer", "minimum": 0},
					"duration_ms": map[string]any{
						"type":    "integer",
						"minimum": 0,
						"maximum": MaxDurationMs,
					},
				},
				"required":             []any{"id", "completed"},
				"additionalProperties": false,
			},
		},
	},
	"required": []any{"puzzles"},
}
