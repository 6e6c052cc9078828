package sokoban

import (
	"errors"
	"strings"
	"testing"
)

const rowLevel = "#####\n#@$.#\n#####"

func mustParseOne(t *testing.T, src string) *Level {
	t.Helper()
	col, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(col.Levels) != 1 {
		t.Fatalf("Expected 1 level, got %d", len(col.Levels))
	}
	return col.Levels[0]
}

func TestParseSimpleLevel(t *testing.T) {
	lvl := mustParseOne(t, rowLevel)

	if lvl.Width != 5 || lvl.Height != 3 {
		t.Errorf("Dimensions: got %dx%d, want 5x3", lvl.Width, lvl.Height)
	}
	if lvl.PlayerX != 1 || lvl.PlayerY != 1 {
		t.Errorf("Player at (%d,%d), want (1,1)", lvl.PlayerX, lvl.PlayerY)
	}
	if !lvl.Cell(2, 1).HasBox() {
		t.Error("Expected box at (2,1)")
	}
	if !lvl.Cell(3, 1).IsGoal() {
		t.Error("Expected goal at (3,1)")
	}
	if !lvl.Cell(0, 0).IsWall() {
		t.Error("Expected wall at (0,0)")
	}
}

func TestParseGoalBoxCountsMatch(t *testing.T) {
	srcs := []string{
		rowLevel,
		"####\n# .#\n#  ###\n#*@  #\n#  $ #\n#  ###\n####",
		"#######\n#     #\n# .$@ #\n# .$  #\n#  #  #\n#######",
	}
	for i, src := range srcs {
		lvl := mustParseOne(t, src)
		if lvl.Goals() != lvl.Boxes() {
			t.Errorf("Level %d: %d goals vs %d boxes", i, lvl.Goals(), lvl.Boxes())
		}
		if lvl.Goals() == 0 {
			t.Errorf("Level %d has no goals", i)
		}
	}
}

func TestParseMultipleLevels(t *testing.T) {
	src := "; starter pack\n\n" + rowLevel + "\n\n" +
		"#####\n#.$@#\n#####\n\n; trailing comment\n"
	col, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if col.Comment != "starter pack" {
		t.Errorf("Comment: got %q", col.Comment)
	}
	if len(col.Levels) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(col.Levels))
	}
	if col.Levels[0].Index != 1 || col.Levels[1].Index != 2 {
		t.Errorf("Indices: got %d, %d", col.Levels[0].Index, col.Levels[1].Index)
	}
}

func TestParseRLEExpansion(t *testing.T) {
	// 5#  ==  #####
	rle := "5#\n#@$.#\n5#"
	plain := mustParseOne(t, rowLevel)
	expanded := mustParseOne(t, rle)

	if expanded.Width != plain.Width || expanded.Height != plain.Height {
		t.Errorf("RLE level %dx%d, plain %dx%d",
			expanded.Width, expanded.Height, plain.Width, plain.Height)
	}
	if expanded.Fingerprint != plain.Fingerprint {
		t.Errorf("RLE and plain fingerprints differ: %08x vs %08x",
			expanded.Fingerprint, plain.Fingerprint)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", ErrEmptyInput},
		{"comments only", "; nothing here\n\n; still nothing", ErrEmptyInput},
		{"no player", "#####\n# $.#\n#####", ErrNoPlayer},
		{"two players", "######\n#@@$.#\n######", ErrNoPlayer},
		{"count mismatch", "#####\n#@$ #\n#####", ErrCountMismatch},
		{"no goals", "####\n#@ #\n####", ErrCountMismatch},
		{"bad symbol", "#####\n#@$.?\n#####", ErrBadSymbol},
		{"too wide", "63#\n#@$.#\n#####", ErrTooLarge},
		{"too tall", strings.Repeat("#@$.#\n", 63), ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src))
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestFingerprintStability(t *testing.T) {
	a := mustParseOne(t, rowLevel)
	b := mustParseOne(t, rowLevel)
	if a.Fingerprint != b.Fingerprint {
		t.Errorf("Identical levels got different fingerprints: %08x vs %08x",
			a.Fingerprint, b.Fingerprint)
	}

	// One-character difference flips the checksum.
	c := mustParseOne(t, "#####\n#@ $.#\n######")
	if c.Fingerprint == a.Fingerprint {
		t.Error("Different levels produced the same fingerprint")
	}
}

func TestFingerprintIgnoresComments(t *testing.T) {
	a := mustParseOne(t, rowLevel)
	b := mustParseOne(t, "; annotated copy\n"+rowLevel+"\n; tail")
	if a.Fingerprint != b.Fingerprint {
		t.Error("Comment lines changed the fingerprint")
	}
}

func TestLevelTextRoundTrip(t *testing.T) {
	lvl := mustParseOne(t, rowLevel)
	again := mustParseOne(t, lvl.Text())
	if again.Fingerprint != lvl.Fingerprint {
		t.Errorf("Text() did not round-trip: %q", lvl.Text())
	}
}
