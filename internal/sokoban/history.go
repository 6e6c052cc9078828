package sokoban

import "strings"

// Move is one history entry: a direction plus whether the move pushed a
// box. The push flag drives undo and the uppercase solution notation; at
// replay time it is re-derived from the grid, never trusted from input.
type Move struct {
	Dir  Direction
	Push bool
}

// History is the append-only ledger of committed moves for one game.
// Replaying it from the level's initial state reproduces the current
// game state exactly.
type History struct {
	moves []Move
}

// Append records one committed move.
func (h *History) Append(d Direction, push bool) {
	h.moves = append(h.moves, Move{Dir: d, Push: push})
}

// Pop removes and returns the most recent move. ok is false when the
// ledger is empty.
func (h *History) Pop() (m Move, ok bool) {
	if len(h.moves) == 0 {
		return Move{}, false
	}
	m = h.moves[len(h.moves)-1]
	h.moves = h.moves[:len(h.moves)-1]
	return m, true
}

// Len returns the number of recorded moves.
func (h *History) Len() int { return len(h.moves) }

// PushCount returns how many recorded moves were pushes.
func (h *History) PushCount() int {
	n := 0
	for _, m := range h.moves {
		if m.Push {
			n++
		}
	}
	return n
}

// Moves returns a copy of the recorded moves in execution order.
func (h *History) Moves() []Move {
	out := make([]Move, len(h.moves))
	copy(out, h.moves)
	return out
}

// Clear discards all recorded moves.
func (h *History) Clear() { h.moves = h.moves[:0] }

// String renders the ledger in LURD notation: lowercase for plain
// moves, uppercase for pushes.
func (h *History) String() string {
	var b strings.Builder
	b.Grow(len(h.moves))
	for _, m := range h.moves {
		b.WriteByte(m.letter())
	}
	return b.String()
}

func (m Move) letter() byte {
	ch := m.Dir.Symbol()
	if m.Push {
		ch -= 'a' - 'A'
	}
	return ch
}

// EncodeRLE renders the ledger with run-length compression: runs of the
// same letter longer than one become "<count><letter>". The output
// round-trips exactly through DecodeSolution.
func (h *History) EncodeRLE() string {
	return encodeRLE(h.String())
}

func encodeRLE(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw); {
		j := i
		for j < len(raw) && raw[j] == raw[i] {
			j++
		}
		if n := j - i; n > 1 {
			b.WriteString(itoa(n))
		}
		b.WriteByte(raw[i])
		i = j
	}
	return b.String()
}

// itoa avoids pulling strconv into the hot path for small counts.
func itoa(n int) string {
	if n < 10 {
		return string([]byte{byte('0' + n)})
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// maxSolutionMoves bounds a single repeat count so a clipboard string
// cannot request an absurd allocation.
const maxSolutionMoves = 1 << 20

// DecodeSolution expands a solution string into moves. Accepted
// characters are decimal digits (repeat counts) and the direction
// letters udlr in either case; uppercase marks a push, though replay
// re-derives pushes from the grid regardless. A digit not followed by a
// direction letter, any foreign character, or an empty string is a
// malformed solution.
func DecodeSolution(s string) ([]Move, error) {
	if s == "" {
		return nil, ErrMalformedSolution
	}
	var moves []Move
	count := 0
	pending := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= '0' && ch <= '9' {
			count = count*10 + int(ch-'0')
			if count > maxSolutionMoves {
				return nil, ErrMalformedSolution
			}
			pending = true
			continue
		}
		dir, ok := directionFor(ch)
		if !ok {
			return nil, ErrMalformedSolution
		}
		if count == 0 {
			count = 1
		}
		push := ch >= 'A' && ch <= 'Z'
		for ; count > 0; count-- {
			moves = append(moves, Move{Dir: dir, Push: push})
		}
		pending = false
	}
	if pending {
		return nil, ErrMalformedSolution
	}
	return moves, nil
}
