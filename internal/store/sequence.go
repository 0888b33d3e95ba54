package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// unlockSequence numbers ledger rows in the order achievements were earned.
// Several achievements usually unlock within the same millisecond of one
// evaluation pass, so unlocked_at_ms cannot order them; the sequence can.
// Numbers are never reused, even after Reset empties the ledger.
type unlockSequence struct {
	mu sync.Mutex
	db *sql.DB
}

// Next reserves the next ledger sequence number.
func (s *unlockSequence) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	err := s.db.QueryRowContext(ctx,
		`UPDATE unlock_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("reserve unlock sequence: %w", err)
	}
	return n, nil
}
