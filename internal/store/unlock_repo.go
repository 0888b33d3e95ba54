package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// unlockRepo implements UnlockRepo. It also satisfies achievements.Unlocker.
type unlockRepo struct {
	db  *sql.DB
	seq *unlockSequence
}

func (r *unlockRepo) Unlock(ctx context.Context, id string) error {
	unlocked, err := r.IsUnlocked(ctx, id)
	if err != nil {
		return err
	}
	if unlocked {
		return nil
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO achievement_unlocks (achievement_id, event_id, sequence, unlocked_at_ms)
		VALUES (?, ?, ?, ?)`,
		id, uuid.NewString(), seqNum, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save unlock %s: %w", id, err)
	}
	return nil
}

func (r *unlockRepo) Unlocked(ctx context.Context) ([]UnlockRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT achievement_id, event_id, sequence, unlocked_at_ms
		FROM achievement_unlocks ORDER BY sequence`)
	if err != nil {
		return nil, fmt.Errorf("query unlocks: %w", err)
	}
	defer rows.Close()

	var records []UnlockRecord
	for rows.Next() {
		var (
			rec UnlockRecord
			ms  int64
		)
		if err := rows.Scan(&rec.AchievementID, &rec.EventID, &rec.Sequence, &ms); err != nil {
			return nil, fmt.Errorf("scan unlock: %w", err)
		}
		rec.UnlockedAt = time.UnixMilli(ms)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query unlocks: %w", err)
	}
	return records, nil
}

func (r *unlockRepo) IsUnlocked(ctx context.Context, id string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM achievement_unlocks WHERE achievement_id = ?`, id,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("query unlock %s: %w", id, err)
	}
	return n > 0, nil
}

func (r *unlockRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM achievement_unlocks`); err != nil {
		return fmt.Errorf("reset unlocks: %w", err)
	}
	return nil
}
