package puzzle

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const importSchemaURL = "schema://puzzle-import.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ErrInvalidImport indicates a puzzle export that is not valid JSON or does
// not match the import schema.
type ErrInvalidImport struct {
	Err error
}

func (e *ErrInvalidImport) Error() string {
	return fmt.Sprintf("invalid puzzle import: %v", e.Err)
}

func (e *ErrInvalidImport) Unwrap() error { return e.Err }

type importFile struct {
	Version int            `json:"version"`
	Puzzles []importRecord `json:"puzzles"`
}

type importRecord struct {
	ID          int     `json:"id"`
	Completed   bool    `json:"completed"`
	Score       float64 `json:"score"`
	ExcessCount int     `json:"excess_count"`
	Reveals     int     `json:"reveals"`
	HadHints    bool    `json:"had_hints"`
	StartTimeMs int64   `json:"start_time_ms"`
	DurationMs  int64   `json:"duration_ms"`
}

// DecodeImport reads a JSON puzzle export, validates it against the import
// schema and returns the decoded records.
func DecodeImport(r io.Reader) ([]Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidImport{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := getImportSchema()
	if err != nil {
		return nil, fmt.Errorf("compile import schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrInvalidImport{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var file importFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, &ErrInvalidImport{Err: err}
	}

	records := make([]Record, len(file.Puzzles))
	for i, p := range file.Puzzles {
		if p.DurationMs < 0 || p.DurationMs > MaxDurationMs {
			return nil, &ErrInvalidImport{Err: fmt.Errorf("puzzle %d: duration_ms %d out of range", p.ID, p.DurationMs)}
		}
		rec := Record{
			ID:          p.ID,
			Completed:   p.Completed,
			Score:       p.Score,
			ExcessCount: p.ExcessCount,
			Reveals:     p.Reveals,
			HadHints:    p.HadHints,
			Duration:    time.Duration(p.DurationMs) * time.Millisecond,
		}
		if p.StartTimeMs > 0 {
			rec.StartTime = time.UnixMilli(p.StartTimeMs)
		}
		records[i] = rec
	}
	return records, nil
}

func getImportSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain decoded JSON value, not Go literals.
		defBytes, err := json.Marshal(importSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(importSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(importSchemaURL)
	})
	return compiledSchema, compileErr
}
