package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the SQLite connection and provides access to repositories.
type Store struct {
	db  *sql.DB
	seq *unlockSequence
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas are per connection.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, seq: &unlockSequence{db: db}}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// PuzzleRepo returns a PuzzleRepo backed by this store.
func (s *Store) PuzzleRepo() PuzzleRepo {
	return &puzzleRepo{db: s.db}
}

// UnlockRepo returns an UnlockRepo backed by this store.
func (s *Store) UnlockRepo() UnlockRepo {
	return &unlockRepo{db: s.db, seq: s.seq}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS puzzles (
		id            INTEGER PRIMARY KEY,
		completed     INTEGER NOT NULL DEFAULT 0,
		score         REAL    NOT NULL DEFAULT 0,
		excess_count  INTEGER NOT NULL DEFAULT 0,
		reveals       INTEGER NOT NULL DEFAULT 0,
		had_hints     INTEGER NOT NULL DEFAULT 0,
		start_time_ms INTEGER NOT NULL DEFAULT 0,
		duration_ms   INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS achievement_unlocks (
		achievement_id TEXT    PRIMARY KEY,
		event_id       TEXT    NOT NULL UNIQUE,
		sequence       INTEGER NOT NULL,
		unlocked_at_ms INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_puzzles_start ON puzzles (start_time_ms)`,
	`CREATE TABLE IF NOT EXISTS unlock_sequence (
		id       INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL
	)`,
	`INSERT OR IGNORE INTO unlock_sequence (id, next_val) VALUES (1, 1)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DataDir resolves the directory holding the app's data files:
// $XDG_DATA_HOME/cryptogram, falling back to ~/.local/share/cryptogram.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "cryptogram"), nil
}

// DefaultDBPath returns the puzzle database path inside DataDir and makes
// sure its directory exists.
func DefaultDBPath() (string, error) {
	return defaultPath("cryptogram.db")
}

// DefaultPrefsPath returns the preferences file path inside DataDir.
func DefaultPrefsPath() (string, error) {
	return defaultPath("prefs.db")
}

func defaultPath(name string) (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, name)
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
