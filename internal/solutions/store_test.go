package solutions

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mkarpows/sokotui/internal/sokoban"
)

func openTestStores(t *testing.T) []Store {
	t.Helper()

	tmpDir := t.TempDir()
	sqlStore, err := Open(filepath.Join(tmpDir, "solutions.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { sqlStore.Close() })

	fileStore, err := NewFileStore(filepath.Join(tmpDir, "sav"))
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	return []Store{sqlStore, fileStore}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "solutions.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSaveIfBetterKeepsFirstSolution(t *testing.T) {
	for _, store := range openTestStores(t) {
		sol := sokoban.Solution{Encoded: "3rU", MoveCount: 4, PushCount: 1}

		saved, err := store.SaveIfBetter("starter", 0xdeadbeef, sol)
		if err != nil {
			t.Fatalf("SaveIfBetter() failed: %v", err)
		}
		if !saved {
			t.Error("First solution should always be saved")
		}

		rec, err := store.Best("starter", 0xdeadbeef)
		if err != nil {
			t.Fatalf("Best() failed: %v", err)
		}
		if rec.Solution.Encoded != "3rU" || rec.Solution.MoveCount != 4 || rec.Solution.PushCount != 1 {
			t.Errorf("Stored solution does not match: %+v", rec.Solution)
		}
	}
}

func TestSaveIfBetterRejectsWorse(t *testing.T) {
	for _, store := range openTestStores(t) {
		best := sokoban.Solution{Encoded: "2rU", MoveCount: 3, PushCount: 1}
		worse := sokoban.Solution{Encoded: "4rU", MoveCount: 5, PushCount: 1}

		if _, err := store.SaveIfBetter("starter", 1, best); err != nil {
			t.Fatalf("SaveIfBetter() failed: %v", err)
		}

		saved, err := store.SaveIfBetter("starter", 1, worse)
		if err != nil {
			t.Fatalf("SaveIfBetter() failed: %v", err)
		}
		if saved {
			t.Error("Worse solution should not replace the recorded best")
		}

		rec, err := store.Best("starter", 1)
		if err != nil {
			t.Fatalf("Best() failed: %v", err)
		}
		if rec.Solution.Encoded != "2rU" {
			t.Errorf("Best was clobbered: %q", rec.Solution.Encoded)
		}
	}
}

func TestSaveIfBetterPushTiebreak(t *testing.T) {
	for _, store := range openTestStores(t) {
		heavy := sokoban.Solution{Encoded: "R2U", MoveCount: 3, PushCount: 3}
		light := sokoban.Solution{Encoded: "r2U", MoveCount: 3, PushCount: 2}

		if _, err := store.SaveIfBetter("starter", 2, heavy); err != nil {
			t.Fatalf("SaveIfBetter() failed: %v", err)
		}

		saved, err := store.SaveIfBetter("starter", 2, light)
		if err != nil {
			t.Fatalf("SaveIfBetter() failed: %v", err)
		}
		if !saved {
			t.Error("Same move count with fewer pushes should replace the best")
		}
	}
}

func TestBestNotFound(t *testing.T) {
	for _, store := range openTestStores(t) {
		if _, err := store.Best("starter", 42); !errors.Is(err, ErrNotFound) {
			t.Errorf("Best() on empty store: got %v, want ErrNotFound", err)
		}
	}
}

func TestBestAllScopedBySet(t *testing.T) {
	for _, store := range openTestStores(t) {
		a := sokoban.Solution{Encoded: "2r", MoveCount: 2}
		b := sokoban.Solution{Encoded: "2u", MoveCount: 2}
		c := sokoban.Solution{Encoded: "2d", MoveCount: 2}

		store.SaveIfBetter("starter", 10, a)
		store.SaveIfBetter("starter", 11, b)
		store.SaveIfBetter("pocket", 10, c)

		all, err := store.BestAll("starter")
		if err != nil {
			t.Fatalf("BestAll() failed: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("Expected 2 records for starter, got %d", len(all))
		}
		if all[10].Solution.Encoded != "2r" {
			t.Errorf("Record 10: got %q, want %q", all[10].Solution.Encoded, "2r")
		}
		if all[11].Solution.Encoded != "2u" {
			t.Errorf("Record 11: got %q, want %q", all[11].Solution.Encoded, "2u")
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	for _, store := range openTestStores(t) {
		if _, err := store.Snapshot("starter", 7); !errors.Is(err, ErrNotFound) {
			t.Errorf("Snapshot() on empty store: got %v, want ErrNotFound", err)
		}

		if err := store.SaveSnapshot("starter", 7, "3u2r"); err != nil {
			t.Fatalf("SaveSnapshot() failed: %v", err)
		}

		snap, err := store.Snapshot("starter", 7)
		if err != nil {
			t.Fatalf("Snapshot() failed: %v", err)
		}
		if snap.Encoded != "3u2r" {
			t.Errorf("Snapshot: got %q, want %q", snap.Encoded, "3u2r")
		}

		// A later save overwrites the previous position.
		if err := store.SaveSnapshot("starter", 7, "u"); err != nil {
			t.Fatalf("SaveSnapshot() failed: %v", err)
		}
		snap, err = store.Snapshot("starter", 7)
		if err != nil {
			t.Fatalf("Snapshot() failed: %v", err)
		}
		if snap.Encoded != "u" {
			t.Errorf("Snapshot after overwrite: got %q, want %q", snap.Encoded, "u")
		}
	}
}

func TestFileStoreLayout(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewFileStore(tmpDir)
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	sol := sokoban.Solution{Encoded: "2rU", MoveCount: 3, PushCount: 1}
	if _, err := store.SaveIfBetter("starter", 0x0000beef, sol); err != nil {
		t.Fatalf("SaveIfBetter() failed: %v", err)
	}

	path := filepath.Join(tmpDir, "starter", "0000beef.sav")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected record at %s: %v", path, err)
	}
	if got := string(data); got != "2rU\n" {
		t.Errorf("File contents: got %q, want %q", got, "2rU\n")
	}
}

func TestFileStoreReplacesCorruptRecord(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewFileStore(tmpDir)
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	path := filepath.Join(tmpDir, "starter", "00000001.sav")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not a solution!\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	sol := sokoban.Solution{Encoded: "5r", MoveCount: 5}
	saved, err := store.SaveIfBetter("starter", 1, sol)
	if err != nil {
		t.Fatalf("SaveIfBetter() failed: %v", err)
	}
	if !saved {
		t.Error("Corrupt record should be replaced")
	}

	rec, err := store.Best("starter", 1)
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if rec.Solution.Encoded != "5r" {
		t.Errorf("Got %q, want %q", rec.Solution.Encoded, "5r")
	}
}
