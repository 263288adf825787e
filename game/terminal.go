package game

// Outcome is the state of a game as seen by Evaluate.
type Outcome int

const (
	Ongoing Outcome = iota
	XWins
	OWins
	Draw
)

func (o Outcome) IsTerminal() bool {
	return o != Ongoing
}

// Value scores a terminal outcome from X's perspective: +1 win, 0 draw, -1 loss. Ongoing scores 0.
func (o Outcome) Value() int {
	switch o {
	case XWins:
		return 1
	case OWins:
		return -1
	default:
		return 0
	}
}

// Winner returns the winning mark, or Empty for a draw or an unfinished game.
func (o Outcome) Winner() Cell {
	switch o {
	case XWins:
		return X
	case OWins:
		return O
	default:
		return Empty
	}
}

// Message is the line announced when the game ends.
func (o Outcome) Message() string {
	switch o {
	case XWins:
		return "The winner is X!"
	case OWins:
		return "The winner is O!"
	case Draw:
		return "Draw!"
	default:
		return ""
	}
}

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X"
	case OWins:
		return "O"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

func winsFor(c Cell) Outcome {
	if c == X {
		return XWins
	}
	return OWins
}

// Evaluate scans rows, then columns, then the diagonals of every k x k sub-square for k identical marks.
// The first winning line found decides the result; without one, the board is Ongoing while any cell is empty
// and a Draw otherwise.
func Evaluate(b *Board) Outcome {
	m, n, k := b.params.Rows, b.params.Cols, b.params.K

	// Horizontal
	for i := 0; i < m; i++ {
		for j := 0; j+k <= n; j++ {
			if c := b.run(i, j, 0, 1); c != Empty {
				return winsFor(c)
			}
		}
	}

	// Vertical
	for i := 0; i+k <= m; i++ {
		for j := 0; j < n; j++ {
			if c := b.run(i, j, 1, 0); c != Empty {
				return winsFor(c)
			}
		}
	}

	// Diagonal
	for i := 0; i+k <= m; i++ {
		for j := 0; j+k <= n; j++ {
			diag := b.run(i, j, 1, 1)
			anti := b.run(i, j+k-1, 1, -1)
			if diag == X || anti == X {
				return XWins
			}
			if diag == O || anti == O {
				return OWins
			}
		}
	}

	if !b.IsFull() {
		return Ongoing
	}
	return Draw
}

// run returns the mark filling the k cells starting at (row, col) along (dr, dc), or Empty if they differ.
func (b *Board) run(row, col, dr, dc int) Cell {
	first := b.At(row, col)
	if first == Empty {
		return Empty
	}
	for z := 1; z < b.params.K; z++ {
		if b.At(row+z*dr, col+z*dc) != first {
			return Empty
		}
	}
	return first
}
