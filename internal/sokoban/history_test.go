package sokoban

import (
	"errors"
	"testing"
)

func TestHistoryNotation(t *testing.T) {
	var h History
	h.Append(Up, false)
	h.Append(Up, true)
	h.Append(Right, false)

	if got := h.String(); got != "uUr" {
		t.Errorf("String: got %q, want %q", got, "uUr")
	}
	if h.Len() != 3 || h.PushCount() != 1 {
		t.Errorf("Counters: %d moves / %d pushes", h.Len(), h.PushCount())
	}
}

func TestEncodeRLECompression(t *testing.T) {
	var h History
	for i := 0; i < 3; i++ {
		h.Append(Up, false)
	}
	h.Append(Right, false)
	h.Append(Right, false)
	h.Append(Down, true)

	if got := h.EncodeRLE(); got != "3u2rD" {
		t.Errorf("EncodeRLE: got %q, want %q", got, "3u2rD")
	}
}

func TestEncodeRLESplitsOnCase(t *testing.T) {
	// A push run and a plain run in the same direction stay separate so
	// the push metric survives the round trip.
	var h History
	h.Append(Left, false)
	h.Append(Left, true)
	h.Append(Left, true)

	if got := h.EncodeRLE(); got != "l2L" {
		t.Errorf("EncodeRLE: got %q, want %q", got, "l2L")
	}
}

func TestDecodeSolutionExpansion(t *testing.T) {
	moves, err := DecodeSolution("3u2r")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := []Direction{Up, Up, Up, Right, Right}
	if len(moves) != len(want) {
		t.Fatalf("Got %d moves, want %d", len(moves), len(want))
	}
	for i, m := range moves {
		if m.Dir != want[i] {
			t.Errorf("Move %d: got %s, want %s", i, m.Dir, want[i])
		}
	}
}

func TestDecodeSolutionMultiDigitCount(t *testing.T) {
	moves, err := DecodeSolution("12d")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(moves) != 12 {
		t.Errorf("Got %d moves, want 12", len(moves))
	}
}

func TestDecodeSolutionCaseInsensitiveDirections(t *testing.T) {
	lower, err := DecodeSolution("udlr")
	if err != nil {
		t.Fatal(err)
	}
	upper, err := DecodeSolution("UDLR")
	if err != nil {
		t.Fatal(err)
	}
	for i := range lower {
		if lower[i].Dir != upper[i].Dir {
			t.Errorf("Move %d: %s vs %s", i, lower[i].Dir, upper[i].Dir)
		}
	}
}

func TestDecodeSolutionMalformed(t *testing.T) {
	for _, s := range []string{"", "3", "uu7", "u x", "3u2", "u-d"} {
		if _, err := DecodeSolution(s); !errors.Is(err, ErrMalformedSolution) {
			t.Errorf("DecodeSolution(%q): got %v, want ErrMalformedSolution", s, err)
		}
	}
}

func TestRLERoundTrip(t *testing.T) {
	var h History
	seq := []Move{
		{Up, false}, {Up, false}, {Up, false}, {Up, false}, {Up, false},
		{Up, false}, {Up, false}, {Up, false}, {Up, false}, {Up, false},
		{Up, false}, {Right, true}, {Down, false}, {Down, false},
		{Left, true}, {Left, true},
	}
	for _, m := range seq {
		h.Append(m.Dir, m.Push)
	}

	decoded, err := DecodeSolution(h.EncodeRLE())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(decoded) != len(seq) {
		t.Fatalf("Got %d moves, want %d", len(decoded), len(seq))
	}
	for i := range seq {
		if decoded[i] != seq[i] {
			t.Errorf("Move %d: got %+v, want %+v", i, decoded[i], seq[i])
		}
	}
}

func TestSolutionOrdering(t *testing.T) {
	base := &Solution{Encoded: "4r", MoveCount: 4, PushCount: 2}

	cases := []struct {
		name   string
		sol    *Solution
		better bool
	}{
		{"fewer moves", &Solution{MoveCount: 3, PushCount: 3}, true},
		{"more moves", &Solution{MoveCount: 5, PushCount: 1}, false},
		{"tie fewer pushes", &Solution{MoveCount: 4, PushCount: 1}, true},
		{"tie more pushes", &Solution{MoveCount: 4, PushCount: 3}, false},
		{"identical", &Solution{MoveCount: 4, PushCount: 2}, false},
	}
	for _, tc := range cases {
		if got := tc.sol.BetterThan(base); got != tc.better {
			t.Errorf("%s: BetterThan = %v, want %v", tc.name, got, tc.better)
		}
	}
	if !base.BetterThan(nil) {
		t.Error("Any solution should beat nil")
	}
}

func TestParseSolutionMetrics(t *testing.T) {
	s, err := ParseSolution("3u2RD")
	if err != nil {
		t.Fatalf("ParseSolution failed: %v", err)
	}
	if s.MoveCount != 6 {
		t.Errorf("MoveCount: got %d, want 6", s.MoveCount)
	}
	if s.PushCount != 3 {
		t.Errorf("PushCount: got %d, want 3", s.PushCount)
	}
}
