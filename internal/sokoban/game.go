package sokoban

import (
	"fmt"
	"hash/fnv"
)

// MoveResult reports the outcome of one Move call. A blocked move is a
// normal outcome, not an error.
type MoveResult struct {
	Legal  bool
	Pushed bool
	Solved bool

	// CornerDeadlock is set when a committed push left a box in a wall
	// corner that is not a goal, which makes the level unwinnable
	// without an undo or restart. The move itself remains legal.
	CornerDeadlock bool
}

// Game is the mutable working state of one level in play: a grid clone,
// the player position, move/push counters and the move history. The
// originating Level is never touched.
type Game struct {
	level   *Level
	grid    []Cell
	playerX int
	playerY int
	history History
}

// NewGame creates a fresh game from a parsed level.
func NewGame(level *Level) *Game {
	return &Game{
		level:   level,
		grid:    level.cloneCells(),
		playerX: level.PlayerX,
		playerY: level.PlayerY,
	}
}

// Level returns the immutable level this game was created from.
func (g *Game) Level() *Level { return g.level }

// Player returns the current player coordinates.
func (g *Game) Player() (x, y int) { return g.playerX, g.playerY }

// Moves returns the number of committed moves.
func (g *Game) Moves() int { return g.history.Len() }

// Pushes returns the number of committed moves that pushed a box.
func (g *Game) Pushes() int { return g.history.PushCount() }

// History returns the game's move ledger.
func (g *Game) History() *History { return &g.history }

// Cell returns the working-copy cell at (x, y); out of bounds reads as wall.
func (g *Game) Cell(x, y int) Cell {
	if x < 0 || x >= g.level.Width || y < 0 || y >= g.level.Height {
		return CellWall
	}
	return g.grid[y*g.level.Width+x]
}

func (g *Game) setCell(x, y int, c Cell) {
	g.grid[y*g.level.Width+x] = c
}

// Move attempts one step in the given direction. With commit false the
// check is a dry run: the result reports what would happen, including
// whether the move would push a box, and no state changes. With commit
// true a legal move updates the grid, the player position and the
// history ledger.
func (g *Game) Move(dir Direction, commit bool) MoveResult {
	dx, dy := dir.Delta()
	tx, ty := g.playerX+dx, g.playerY+dy
	target := g.Cell(tx, ty)

	if target.IsWall() {
		return MoveResult{}
	}

	push := target.HasBox()
	if push {
		bx, by := tx+dx, ty+dy
		if !g.Cell(bx, by).Free() {
			return MoveResult{}
		}
		if commit {
			g.setCell(bx, by, g.Cell(bx, by)|CellBox)
			g.setCell(tx, ty, target&^CellBox)
		}
	} else if !target.IsFloor() {
		// Blank space outside the playfield behaves like wall.
		return MoveResult{}
	}

	res := MoveResult{Legal: true, Pushed: push}
	if !commit {
		return res
	}

	g.playerX, g.playerY = tx, ty
	g.history.Append(dir, push)
	res.Solved = g.Solved()
	if push && !res.Solved {
		res.CornerDeadlock = g.boxCornered(tx+dx, ty+dy)
	}
	return res
}

// Undo reverses the most recent committed move exactly: the player
// steps back, and a pushed box is pulled back onto its prior cell.
func (g *Game) Undo() error {
	m, ok := g.history.Pop()
	if !ok {
		return ErrNothingToUndo
	}
	dx, dy := m.Dir.Delta()
	if m.Push {
		bx, by := g.playerX+dx, g.playerY+dy
		g.setCell(bx, by, g.Cell(bx, by)&^CellBox)
		g.setCell(g.playerX, g.playerY, g.Cell(g.playerX, g.playerY)|CellBox)
	}
	g.playerX -= dx
	g.playerY -= dy
	return nil
}

// Reset restores the initial level snapshot and clears the ledger.
func (g *Game) Reset() {
	g.grid = g.level.cloneCells()
	g.playerX = g.level.PlayerX
	g.playerY = g.level.PlayerY
	g.history.Clear()
}

// Solved reports whether every goal cell holds a box. Since the parser
// guarantees equal goal and box counts, this is equivalent to the box
// set matching the goal set.
func (g *Game) Solved() bool {
	for _, c := range g.grid {
		if c.IsGoal() != c.HasBox() {
			return false
		}
	}
	return true
}

// boxCornered reports whether the box at (x, y) sits in a wall corner
// off a goal. Such a box can never be moved again.
func (g *Game) boxCornered(x, y int) bool {
	c := g.Cell(x, y)
	if !c.HasBox() || c.IsGoal() {
		return false
	}
	up := g.Cell(x, y-1).IsWall()
	down := g.Cell(x, y+1).IsWall()
	left := g.Cell(x-1, y).IsWall()
	right := g.Cell(x+1, y).IsWall()
	return (up || down) && (left || right)
}

// StateHash returns a hash of the complete mutable state: grid, player
// position and ledger length. Two games with equal hashes went through
// state-equivalent play.
func (g *Game) StateHash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "P:%d,%d;N:%d;G:", g.playerX, g.playerY, g.history.Len())
	for _, c := range g.grid {
		h.Write([]byte{byte(c)})
	}
	return h.Sum64()
}

// Replay runs a decoded solution against a fresh game for the level.
// The push flags carried by the moves are ignored; pushes are re-derived
// from the grid, so identical symbol sequences always replay
// identically. Any blocked move means the solution does not belong to
// this level.
func Replay(level *Level, moves []Move) (*Game, error) {
	g := NewGame(level)
	for i, m := range moves {
		if res := g.Move(m.Dir, true); !res.Legal {
			return nil, fmt.Errorf("%w: move %d (%s) blocked", ErrReplayMismatch, i+1, m.Dir)
		}
	}
	return g, nil
}

// Text renders the current game state in XSB notation, with the player
// drawn at the live position. Used for clipboard snapshots.
func (g *Game) Text() string {
	out := make([]byte, 0, (g.level.Width+1)*g.level.Height)
	for y := 0; y < g.level.Height; y++ {
		for x := 0; x < g.level.Width; x++ {
			out = append(out, symbolFor(g.Cell(x, y), x == g.playerX && y == g.playerY))
		}
		if y < g.level.Height-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}
