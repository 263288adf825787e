package game

import (
	"errors"
	"fmt"
)

var ErrInvalidParams = errors.New("invalid board parameters")

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	X          // Maximizing player, moves first
	O          // Minimizing player
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "*"
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Params are the board extents and the run length needed to win, fixed for the lifetime of a game.
type Params struct {
	Rows int // m
	Cols int // n
	K    int
}

func (p Params) Validate() error {
	if p.Rows < 1 || p.Cols < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidParams, p.Rows, p.Cols)
	}
	if p.K < 1 || p.K > max(p.Rows, p.Cols) {
		return fmt.Errorf("%w: k=%d does not fit a %dx%d board", ErrInvalidParams, p.K, p.Rows, p.Cols)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%dx%d", p.Rows, p.Cols, p.K)
}
