package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/cryptogram/internal/puzzle"
)

const puzzleColumns = `id, completed, score, excess_count, reveals, had_hints, start_time_ms, duration_ms`

// puzzleRepo implements PuzzleRepo with raw SQL.
type puzzleRepo struct {
	db *sql.DB
}

func (r *puzzleRepo) Save(ctx context.Context, rec puzzle.Record) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO puzzles (`+puzzleColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			completed = excluded.completed,
			score = excluded.score,
			excess_count = excluded.excess_count,
			reveals = excluded.reveals,
			had_hints = excluded.had_hints,
			start_time_ms = excluded.start_time_ms,
			duration_ms = excluded.duration_ms`,
		rec.ID, rec.Completed, rec.Score, rec.ExcessCount, rec.Reveals, rec.HadHints,
		toMillis(rec.StartTime), rec.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("save puzzle %d: %w", rec.ID, err)
	}
	return nil
}

func (r *puzzleRepo) Get(ctx context.Context, id int) (puzzle.Record, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+puzzleColumns+` FROM puzzles WHERE id = ?`, id)
	rec, err := scanPuzzle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return puzzle.Record{}, ErrNotFound
	}
	if err != nil {
		return puzzle.Record{}, fmt.Errorf("get puzzle %d: %w", id, err)
	}
	return rec, nil
}

func (r *puzzleRepo) All(ctx context.Context) ([]puzzle.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+puzzleColumns+` FROM puzzles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query puzzles: %w", err)
	}
	defer rows.Close()

	var records []puzzle.Record
	for rows.Next() {
		rec, err := scanPuzzle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan puzzle: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query puzzles: %w", err)
	}
	return records, nil
}

func (r *puzzleRepo) MarkStarted(ctx context.Context, id int, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO puzzles (id, start_time_ms) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET start_time_ms =
			CASE WHEN start_time_ms = 0 THEN excluded.start_time_ms ELSE start_time_ms END`,
		id, toMillis(at),
	)
	if err != nil {
		return fmt.Errorf("mark puzzle %d started: %w", id, err)
	}
	return nil
}

func (r *puzzleRepo) MarkCompleted(ctx context.Context, id int, res puzzle.Result) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE puzzles SET completed = 1, score = ?, excess_count = ?, reveals = ?,
			had_hints = ?, duration_ms = ?
		WHERE id = ?`,
		res.Score, res.ExcessCount, res.Reveals, res.HadHints, res.Duration.Milliseconds(), id,
	)
	if err != nil {
		return fmt.Errorf("mark puzzle %d completed: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark puzzle %d completed: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *puzzleRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM puzzles`); err != nil {
		return fmt.Errorf("delete puzzles: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPuzzle(s scanner) (puzzle.Record, error) {
	var (
		rec                 puzzle.Record
		startMs, durationMs int64
		completed, hadHints bool
	)
	err := s.Scan(&rec.ID, &completed, &rec.Score, &rec.ExcessCount, &rec.Reveals,
		&hadHints, &startMs, &durationMs)
	if err != nil {
		return puzzle.Record{}, err
	}
	rec.Completed = completed
	rec.HadHints = hadHints
	rec.StartTime = fromMillis(startMs)
	rec.Duration = time.Duration(durationMs) * time.Millisecond
	return rec, nil
}

// toMillis stores the zero time as 0, meaning "never".
func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
