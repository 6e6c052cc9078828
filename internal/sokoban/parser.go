package sokoban

import (
	"fmt"
	"hash/crc32"
	"strings"
)

// Collection is the result of parsing one level stream: zero or more
// levels plus the stream's leading comment, if any.
type Collection struct {
	Comment string
	Levels  []*Level
}

// Parse reads an XSB-format level stream. Levels are separated by blank
// lines; lines starting with ';' are comments. The first comment line
// becomes the collection comment. Grid rows may be run-length encoded
// with decimal repeat counts, which are expanded before validation.
func Parse(data []byte) (*Collection, error) {
	col := &Collection{}
	var block []string

	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		lvl, err := parseLevel(block)
		block = nil
		if err != nil {
			return fmt.Errorf("level %d: %w", len(col.Levels)+1, err)
		}
		lvl.Index = len(col.Levels) + 1
		col.Levels = append(col.Levels, lvl)
		return nil
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, " \t\r")
		switch {
		case strings.HasPrefix(line, ";"):
			if col.Comment == "" {
				col.Comment = strings.TrimSpace(strings.TrimPrefix(line, ";"))
			}
			if err := flush(); err != nil {
				return nil, err
			}
		case line == "":
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			block = append(block, line)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if len(col.Levels) == 0 {
		return nil, ErrEmptyInput
	}
	return col, nil
}

// parseLevel converts one block of non-blank rows into a validated Level.
func parseLevel(rows []string) (*Level, error) {
	expanded := make([]string, 0, len(rows))
	width := 0
	for _, row := range rows {
		exp, err := expandRow(row)
		if err != nil {
			return nil, err
		}
		if len(exp) > width {
			width = len(exp)
		}
		expanded = append(expanded, exp)
	}
	height := len(expanded)
	if width > MaxSize || height > MaxSize {
		return nil, ErrTooLarge
	}

	lvl := &Level{
		Width:   width,
		Height:  height,
		PlayerX: -1,
		PlayerY: -1,
		cells:   make([]Cell, width*height),
	}

	goals, boxes := 0, 0
	for y, row := range expanded {
		for x := 0; x < len(row); x++ {
			var c Cell
			player := false
			switch row[x] {
			case '#':
				c = CellWall
			case ' ':
				c = CellFloor
			case '-', '_':
				// explicit blank, outside the playfield
			case '.':
				c = CellFloor | CellGoal
				goals++
			case '$':
				c = CellFloor | CellBox
				boxes++
			case '*':
				c = CellFloor | CellGoal | CellBox
				goals++
				boxes++
			case '@':
				c = CellFloor
				player = true
			case '+':
				c = CellFloor | CellGoal
				goals++
				player = true
			default:
				return nil, fmt.Errorf("%w: %q", ErrBadSymbol, row[x])
			}
			if player {
				if lvl.PlayerX >= 0 {
					return nil, ErrNoPlayer
				}
				lvl.PlayerX, lvl.PlayerY = x, y
			}
			lvl.cells[y*width+x] = c
		}
	}

	if lvl.PlayerX < 0 {
		return nil, ErrNoPlayer
	}
	if goals == 0 || goals != boxes {
		return nil, fmt.Errorf("%w: %d goals, %d boxes", ErrCountMismatch, goals, boxes)
	}

	lvl.Fingerprint = crc32.ChecksumIEEE([]byte(strings.Join(expanded, "\n")))
	return lvl, nil
}

// expandRow decodes run-length encoding within one grid row. Digits
// accumulate into a repeat count for the next symbol, so counts above
// nine survive a round trip through the encoder.
func expandRow(row string) (string, error) {
	var b strings.Builder
	count := 0
	for i := 0; i < len(row); i++ {
		ch := row[i]
		if ch >= '0' && ch <= '9' {
			count = count*10 + int(ch-'0')
			continue
		}
		if count == 0 {
			count = 1
		}
		if b.Len()+count > MaxSize {
			return "", ErrTooLarge
		}
		for ; count > 0; count-- {
			b.WriteByte(ch)
		}
	}
	if count > 0 {
		return "", fmt.Errorf("%w: trailing repeat count", ErrBadSymbol)
	}
	return b.String(), nil
}
