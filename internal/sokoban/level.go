package sokoban

import "strings"

// MaxSize is the maximum level width and height accepted by the parser.
const MaxSize = 62

// Level is an immutable parsed level definition. Games clone its grid;
// the Level itself is never mutated after parsing.
type Level struct {
	Index       int    // position within the source collection, 1-based
	Width       int
	Height      int
	PlayerX     int
	PlayerY     int
	Fingerprint uint32 // CRC-32 of the normalized grid text

	cells []Cell // row-major, len Width*Height
}

// Cell returns the cell at (x, y). Coordinates outside the grid read as
// wall so bounds checks collapse into the normal move legality check.
func (l *Level) Cell(x, y int) Cell {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return CellWall
	}
	return l.cells[y*l.Width+x]
}

// Goals returns the number of goal squares.
func (l *Level) Goals() int {
	n := 0
	for _, c := range l.cells {
		if c.IsGoal() {
			n++
		}
	}
	return n
}

// Boxes returns the number of boxes in the initial layout.
func (l *Level) Boxes() int {
	n := 0
	for _, c := range l.cells {
		if c.HasBox() {
			n++
		}
	}
	return n
}

// cloneCells returns a fresh copy of the grid for a Game working copy.
func (l *Level) cloneCells() []Cell {
	grid := make([]Cell, len(l.cells))
	copy(grid, l.cells)
	return grid
}

// Text renders the level back to XSB notation, one row per line. The
// player is drawn from the stored start position. Used for clipboard
// export and for fingerprint verification in tests.
func (l *Level) Text() string {
	var b strings.Builder
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			b.WriteByte(symbolFor(l.Cell(x, y), x == l.PlayerX && y == l.PlayerY))
		}
		if y < l.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// symbolFor maps a cell (plus player presence) back to its XSB character.
func symbolFor(c Cell, player bool) byte {
	switch {
	case c.IsWall():
		return '#'
	case player && c.IsGoal():
		return '+'
	case player:
		return '@'
	case c.HasBox() && c.IsGoal():
		return '*'
	case c.HasBox():
		return '$'
	case c.IsGoal():
		return '.'
	case c.IsFloor():
		return ' '
	default:
		return ' '
	}
}
