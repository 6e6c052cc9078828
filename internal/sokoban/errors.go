package sokoban

import "errors"

// Parse errors. Each cause is a distinct sentinel so callers can tell a
// malformed file from an oversized or box-starved one.
var (
	ErrEmptyInput    = errors.New("sokoban: no level data in input")
	ErrTooLarge      = errors.New("sokoban: level exceeds maximum dimensions")
	ErrNoPlayer      = errors.New("sokoban: level must contain exactly one player")
	ErrCountMismatch = errors.New("sokoban: goal count does not match box count")
	ErrBadSymbol     = errors.New("sokoban: unrecognized symbol in level data")
)

// Move errors. A blocked move is NOT an error: Move reports it through
// MoveResult. Only undo-on-empty-history is an error condition.
var ErrNothingToUndo = errors.New("sokoban: no moves to undo")

// Solution errors.
var (
	ErrMalformedSolution = errors.New("sokoban: malformed solution string")
	ErrReplayMismatch    = errors.New("sokoban: solution does not replay on this level")
)
