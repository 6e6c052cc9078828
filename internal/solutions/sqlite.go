package solutions

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/mkarpows/sokotui/internal/sokoban"
)

// SQLiteStore keeps best solutions and snapshots in a single SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*SQLiteStore, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("solutions: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("solutions: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("solutions: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("solutions: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("solutions: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solutions (
			set_name TEXT NOT NULL,
			fingerprint INTEGER NOT NULL,
			moves TEXT NOT NULL,
			move_count INTEGER NOT NULL,
			push_count INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (set_name, fingerprint)
		);
		CREATE INDEX IF NOT EXISTS idx_solutions_set ON solutions(set_name);

		CREATE TABLE IF NOT EXISTS snapshots (
			set_name TEXT NOT NULL,
			fingerprint INTEGER NOT NULL,
			moves TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (set_name, fingerprint)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveIfBetter stores sol unless the recorded solution is already at
// least as good. The read and write happen in one transaction so two
// sessions racing on the same level cannot clobber a better result.
func (s *SQLiteStore) SaveIfBetter(set string, fingerprint uint32, sol sokoban.Solution) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("solutions: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current sokoban.Solution
	err = tx.QueryRow(
		"SELECT moves, move_count, push_count FROM solutions WHERE set_name = ? AND fingerprint = ?",
		set, fingerprint,
	).Scan(&current.Encoded, &current.MoveCount, &current.PushCount)

	switch {
	case err == sql.ErrNoRows:
		// First solution for this level, always keep.
	case err != nil:
		return false, fmt.Errorf("solutions: cannot query solution: %w", err)
	default:
		if !sol.BetterThan(&current) {
			return false, nil
		}
	}

	_, err = tx.Exec(
		`INSERT INTO solutions (set_name, fingerprint, moves, move_count, push_count, updated_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(set_name, fingerprint) DO UPDATE SET
		 	moves = excluded.moves,
		 	move_count = excluded.move_count,
		 	push_count = excluded.push_count,
		 	updated_at = CURRENT_TIMESTAMP`,
		set, fingerprint, sol.Encoded, sol.MoveCount, sol.PushCount,
	)
	if err != nil {
		return false, fmt.Errorf("solutions: cannot save solution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("solutions: cannot commit: %w", err)
	}
	return true, nil
}

// Best returns the recorded best solution for the level.
func (s *SQLiteStore) Best(set string, fingerprint uint32) (*Record, error) {
	r := &Record{Set: set, Fingerprint: fingerprint}
	var updatedAt any

	err := s.db.QueryRow(
		`SELECT moves, move_count, push_count, updated_at
		 FROM solutions
		 WHERE set_name = ? AND fingerprint = ?`,
		set, fingerprint,
	).Scan(&r.Solution.Encoded, &r.Solution.MoveCount, &r.Solution.PushCount, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("solutions: cannot query solution: %w", err)
	}

	r.UpdatedAt = parseTimestamp(updatedAt)
	return r, nil
}

// BestAll returns every recorded best solution for the set.
func (s *SQLiteStore) BestAll(set string) (map[uint32]*Record, error) {
	rows, err := s.db.Query(
		`SELECT fingerprint, moves, move_count, push_count, updated_at
		 FROM solutions
		 WHERE set_name = ?`,
		set,
	)
	if err != nil {
		return nil, fmt.Errorf("solutions: cannot query solutions: %w", err)
	}
	defer rows.Close()

	out := make(map[uint32]*Record)
	for rows.Next() {
		r := &Record{Set: set}
		var updatedAt any
		if err := rows.Scan(&r.Fingerprint, &r.Solution.Encoded, &r.Solution.MoveCount, &r.Solution.PushCount, &updatedAt); err != nil {
			return nil, fmt.Errorf("solutions: cannot scan row: %w", err)
		}
		r.UpdatedAt = parseTimestamp(updatedAt)
		out[r.Fingerprint] = r
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("solutions: row iteration error: %w", err)
	}

	return out, nil
}

// SaveSnapshot overwrites the saved position for the level.
func (s *SQLiteStore) SaveSnapshot(set string, fingerprint uint32, encoded string) error {
	_, err := s.db.Exec(
		`INSERT INTO snapshots (set_name, fingerprint, moves, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(set_name, fingerprint) DO UPDATE SET
		 	moves = excluded.moves,
		 	updated_at = CURRENT_TIMESTAMP`,
		set, fingerprint, encoded,
	)
	if err != nil {
		return fmt.Errorf("solutions: cannot save snapshot: %w", err)
	}
	return nil
}

// Snapshot returns the saved position for the level.
func (s *SQLiteStore) Snapshot(set string, fingerprint uint32) (*Snapshot, error) {
	snap := &Snapshot{Set: set, Fingerprint: fingerprint}
	var updatedAt any

	err := s.db.QueryRow(
		"SELECT moves, updated_at FROM snapshots WHERE set_name = ? AND fingerprint = ?",
		set, fingerprint,
	).Scan(&snap.Encoded, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("solutions: cannot query snapshot: %w", err)
	}

	snap.UpdatedAt = parseTimestamp(updatedAt)
	return snap, nil
}

// parseTimestamp handles both time.Time and string values the driver may
// hand back for DATETIME columns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Ensure SQLiteStore implements Store
var _ Store = (*SQLiteStore)(nil)
