package levels

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestPacksListsEmbedded(t *testing.T) {
	packs := Packs()
	if len(packs) != 2 {
		t.Fatalf("Expected 2 embedded packs, got %d: %v", len(packs), packs)
	}
	if packs[0] != "pocket" || packs[1] != "starter" {
		t.Errorf("Unexpected pack names: %v", packs)
	}
}

func TestLoadPackStarter(t *testing.T) {
	col, err := LoadPack("starter")
	if err != nil {
		t.Fatalf("LoadPack() failed: %v", err)
	}
	if col.Comment != "Starter collection" {
		t.Errorf("Comment: got %q", col.Comment)
	}
	if len(col.Levels) != 5 {
		t.Fatalf("Expected 5 levels, got %d", len(col.Levels))
	}
	for i, lvl := range col.Levels {
		if lvl.Index != i+1 {
			t.Errorf("Level %d has index %d", i, lvl.Index)
		}
		if lvl.Fingerprint == 0 {
			t.Errorf("Level %d has zero fingerprint", i+1)
		}
	}
}

func TestLoadPackPocket(t *testing.T) {
	col, err := LoadPack("pocket")
	if err != nil {
		t.Fatalf("LoadPack() failed: %v", err)
	}
	if len(col.Levels) != 3 {
		t.Fatalf("Expected 3 levels, got %d", len(col.Levels))
	}
}

func TestLoadPackUnknown(t *testing.T) {
	if _, err := LoadPack("nope"); err == nil {
		t.Error("Expected error for unknown pack")
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tiny.xsb")
	if err := os.WriteFile(path, []byte("#####\n#@$.#\n#####\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	col, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if len(col.Levels) != 1 {
		t.Fatalf("Expected 1 level, got %d", len(col.Levels))
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.xsb")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("; Remote\n\n#####\n#@$.#\n#####\n"))
	}))
	defer srv.Close()

	col, err := Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if col.Comment != "Remote" {
		t.Errorf("Comment: got %q", col.Comment)
	}
	if len(col.Levels) != 1 {
		t.Fatalf("Expected 1 level, got %d", len(col.Levels))
	}
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := Fetch(context.Background(), srv.URL); err == nil {
		t.Error("Expected error for 404 response")
	}
}

func TestSetName(t *testing.T) {
	cases := map[string]string{
		"starter":                      "starter",
		"/home/p/levels/microban.xsb":  "microban",
		"https://example.com/pack.txt": "pack",
		"https://example.com/plain":    "plain",
		"levels.tar.xsb":               "levels.tar",
	}
	for in, want := range cases {
		if got := SetName(in); got != want {
			t.Errorf("SetName(%q): got %q, want %q", in, got, want)
		}
	}
}
