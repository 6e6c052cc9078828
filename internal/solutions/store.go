// Package solutions persists best solutions and mid-game snapshots,
// keyed by collection name and level fingerprint. Uses the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies, with a plain-file
// store available for portable .sav exports.
package solutions

import (
	"errors"
	"time"

	"github.com/mkarpows/sokotui/internal/sokoban"
)

// ErrNotFound reports that no record exists for the requested level.
var ErrNotFound = errors.New("solutions: not found")

// Record is one stored best solution.
type Record struct {
	Set         string
	Fingerprint uint32
	Solution    sokoban.Solution
	UpdatedAt   time.Time
}

// Snapshot is a saved mid-game position: the solution string replayed so
// far, restorable onto a fresh copy of the level.
type Snapshot struct {
	Set         string
	Fingerprint uint32
	Encoded     string
	UpdatedAt   time.Time
}

// Store is the persistence surface the game layer talks to.
type Store interface {
	// SaveIfBetter stores sol for the level unless an equal-or-better
	// solution is already recorded. It reports whether sol was written.
	SaveIfBetter(set string, fingerprint uint32, sol sokoban.Solution) (bool, error)

	// Best returns the recorded best solution, or ErrNotFound.
	Best(set string, fingerprint uint32) (*Record, error)

	// BestAll returns every recorded best solution for the set, keyed by
	// fingerprint.
	BestAll(set string) (map[uint32]*Record, error)

	// SaveSnapshot overwrites the saved position for the level.
	SaveSnapshot(set string, fingerprint uint32, encoded string) error

	// Snapshot returns the saved position, or ErrNotFound.
	Snapshot(set string, fingerprint uint32) (*Snapshot, error)

	Close() error
}
