package sokoban

// Solution is a recorded solution for a level: the run-length encoded
// move string plus its derived metrics.
type Solution struct {
	Encoded   string
	MoveCount int
	PushCount int
}

// SolutionFromHistory captures the current ledger as a solution.
func SolutionFromHistory(h *History) *Solution {
	return &Solution{
		Encoded:   h.EncodeRLE(),
		MoveCount: h.Len(),
		PushCount: h.PushCount(),
	}
}

// ParseSolution validates and decodes an encoded solution string,
// deriving its metrics. The push metric trusts the letter case of the
// stored string; replaying against a level is the authoritative check.
func ParseSolution(encoded string) (*Solution, error) {
	moves, err := DecodeSolution(encoded)
	if err != nil {
		return nil, err
	}
	s := &Solution{Encoded: encoded, MoveCount: len(moves)}
	for _, m := range moves {
		if m.Push {
			s.PushCount++
		}
	}
	return s, nil
}

// Moves decodes the solution into its move sequence.
func (s *Solution) Moves() ([]Move, error) {
	return DecodeSolution(s.Encoded)
}

// BetterThan reports whether s beats other under the store's total
// order: fewest moves first, ties broken by fewest pushes. A nil other
// is always beaten.
func (s *Solution) BetterThan(other *Solution) bool {
	if other == nil {
		return true
	}
	if s.MoveCount != other.MoveCount {
		return s.MoveCount < other.MoveCount
	}
	return s.PushCount < other.PushCount
}
