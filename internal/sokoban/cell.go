// Package sokoban implements the Sokoban puzzle core: level parsing,
// the move/undo state machine, move history with run-length encoded
// solutions, and best-solution bookkeeping. The package is pure logic
// with no I/O and no dependency on wall-clock time; persistence and
// presentation live elsewhere.
package sokoban

// Cell is a bitset describing one grid coordinate. Wall is exclusive
// with the floor-like bits; a cell is never wall and floor/goal/box at
// the same time.
type Cell uint8

const (
	CellFloor Cell = 1 << iota
	CellWall
	CellGoal
	CellBox
)

// IsWall reports whether the cell is a wall.
func (c Cell) IsWall() bool { return c&CellWall != 0 }

// IsFloor reports whether the cell is walkable floor (with or without goal/box).
func (c Cell) IsFloor() bool { return c&CellFloor != 0 }

// IsGoal reports whether the cell is a goal square.
func (c Cell) IsGoal() bool { return c&CellGoal != 0 }

// HasBox reports whether a box currently occupies the cell.
func (c Cell) HasBox() bool { return c&CellBox != 0 }

// Free reports whether the player or a box may enter the cell.
func (c Cell) Free() bool { return c.IsFloor() && !c.HasBox() }

// valid reports whether the bitset respects the wall exclusivity invariant.
func (c Cell) valid() bool {
	if c.IsWall() {
		return c&(CellFloor|CellGoal|CellBox) == 0
	}
	return true
}

// Direction is one of the four player moves.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the coordinate offset of one step in the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the reverse direction, used when unwinding a move.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Symbol returns the lowercase solution-notation letter for the direction.
func (d Direction) Symbol() byte {
	switch d {
	case Up:
		return 'u'
	case Down:
		return 'd'
	case Left:
		return 'l'
	default:
		return 'r'
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// directionFor maps a solution-notation letter (either case) to a direction.
func directionFor(ch byte) (Direction, bool) {
	switch ch {
	case 'u', 'U':
		return Up, true
	case 'd', 'D':
		return Down, true
	case 'l', 'L':
		return Left, true
	case 'r', 'R':
		return Right, true
	}
	return 0, false
}
