package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/cryptogram/internal/puzzle"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// PuzzleRepo manages the puzzle history. It satisfies puzzle.Provider.
type PuzzleRepo interface {
	puzzle.Provider

	// Save inserts or replaces a full puzzle record.
	Save(ctx context.Context, rec puzzle.Record) error

	// Get returns the puzzle with the given ID, or ErrNotFound.
	Get(ctx context.Context, id int) (puzzle.Record, error)

	// MarkStarted records the first start time of a puzzle, creating the
	// record if needed. Later calls keep the original start time.
	MarkStarted(ctx context.Context, id int, at time.Time) error

	// MarkCompleted stores the outcome of a started puzzle. Returns
	// ErrNotFound if the puzzle was never recorded.
	MarkCompleted(ctx context.Context, id int, res puzzle.Result) error

	// DeleteAll removes the whole history.
	DeleteAll(ctx context.Context) error
}

// UnlockRecord is one entry of the local unlock ledger.
type UnlockRecord struct {
	AchievementID string
	EventID       string
	Sequence      int64
	UnlockedAt    time.Time
}

// UnlockRepo is the local achievements service: an append-only ledger of
// unlocked achievement IDs.
type UnlockRepo interface {
	// Unlock marks id unlocked. Unlocking an already unlocked ID is a no-op.
	Unlock(ctx context.Context, id string) error

	// Unlocked returns the ledger in unlock order.
	Unlocked(ctx context.Context) ([]UnlockRecord, error)

	// IsUnlocked reports whether id has been unlocked.
	IsUnlocked(ctx context.Context, id string) (bool, error)

	// Reset clears the ledger.
	Reset(ctx context.Context) error
}
