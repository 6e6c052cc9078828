package solutions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mkarpows/sokotui/internal/sokoban"
)

// FileStore keeps one plain-text file per level under a directory tree:
// <root>/<set>/<fingerprint>.sav for best solutions and .pos for saved
// positions. The format is a single solution string, so the files can be
// shared or inspected by hand.
type FileStore struct {
	root string
}

// NewFileStore opens a file-backed store rooted at dir, creating it if
// needed. A leading ~ expands to the home directory.
func NewFileStore(dir string) (*FileStore, error) {
	if dir != "" && dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("solutions: cannot expand home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("solutions: cannot create directory %s: %w", dir, err)
	}
	return &FileStore{root: dir}, nil
}

func (f *FileStore) path(set string, fingerprint uint32, ext string) string {
	return filepath.Join(f.root, set, fmt.Sprintf("%08x%s", fingerprint, ext))
}

// writeFile writes to a temp file in the target directory and renames it
// into place, so a crash never leaves a truncated record.
func (f *FileStore) writeFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("solutions: cannot create directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".sav-*")
	if err != nil {
		return fmt.Errorf("solutions: cannot create temp file: %w", err)
	}
	if _, err := tmp.WriteString(content + "\n"); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("solutions: cannot write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("solutions: cannot close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("solutions: cannot replace %s: %w", path, err)
	}
	return nil
}

func (f *FileStore) readFile(path string) (string, time.Time, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", time.Time{}, ErrNotFound
	}
	if err != nil {
		return "", time.Time{}, fmt.Errorf("solutions: cannot stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("solutions: cannot read %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), info.ModTime(), nil
}

// SaveIfBetter stores sol unless the file already holds an
// equal-or-better solution.
func (f *FileStore) SaveIfBetter(set string, fingerprint uint32, sol sokoban.Solution) (bool, error) {
	path := f.path(set, fingerprint, ".sav")
	encoded, _, err := f.readFile(path)
	if err == nil {
		current, perr := sokoban.ParseSolution(encoded)
		if perr == nil && !sol.BetterThan(current) {
			return false, nil
		}
		// A corrupt file is replaced outright.
	} else if err != ErrNotFound {
		return false, err
	}
	if err := f.writeFile(path, sol.Encoded); err != nil {
		return false, err
	}
	return true, nil
}

// Best returns the recorded best solution for the level.
func (f *FileStore) Best(set string, fingerprint uint32) (*Record, error) {
	encoded, mtime, err := f.readFile(f.path(set, fingerprint, ".sav"))
	if err != nil {
		return nil, err
	}
	sol, err := sokoban.ParseSolution(encoded)
	if err != nil {
		return nil, fmt.Errorf("solutions: corrupt record for %08x: %w", fingerprint, err)
	}
	return &Record{
		Set:         set,
		Fingerprint: fingerprint,
		Solution:    *sol,
		UpdatedAt:   mtime,
	}, nil
}

// BestAll scans the set directory and returns every readable record.
// Files that fail to parse are skipped rather than failing the scan.
func (f *FileStore) BestAll(set string) (map[uint32]*Record, error) {
	dir := filepath.Join(f.root, set)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return map[uint32]*Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("solutions: cannot read directory %s: %w", dir, err)
	}

	out := make(map[uint32]*Record)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".sav") {
			continue
		}
		var fp uint32
		if _, err := fmt.Sscanf(strings.TrimSuffix(name, ".sav"), "%08x", &fp); err != nil {
			continue
		}
		r, err := f.Best(set, fp)
		if err != nil {
			continue
		}
		out[fp] = r
	}
	return out, nil
}

// SaveSnapshot overwrites the saved position for the level.
func (f *FileStore) SaveSnapshot(set string, fingerprint uint32, encoded string) error {
	return f.writeFile(f.path(set, fingerprint, ".pos"), encoded)
}

// Snapshot returns the saved position for the level.
func (f *FileStore) Snapshot(set string, fingerprint uint32) (*Snapshot, error) {
	encoded, mtime, err := f.readFile(f.path(set, fingerprint, ".pos"))
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Set:         set,
		Fingerprint: fingerprint,
		Encoded:     encoded,
		UpdatedAt:   mtime,
	}, nil
}

// Close is a no-op; the store holds no open handles between calls.
func (f *FileStore) Close() error { return nil }

// Ensure FileStore implements Store
var _ Store = (*FileStore)(nil)
