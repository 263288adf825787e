package game

import "strings"

// Board is an m x n grid of cells stored row-major. Its dimensions never change after construction.
type Board struct {
	params Params
	cells  []Cell
}

// NewBoard returns an empty board. Params are expected to be validated by the caller.
func NewBoard(p Params) *Board {
	return &Board{
		params: p,
		cells:  make([]Cell, p.Rows*p.Cols),
	}
}

func (b *Board) Params() Params {
	return b.params
}

func (b *Board) Rows() int { return b.params.Rows }
func (b *Board) Cols() int { return b.params.Cols }

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.params.Rows && col >= 0 && col < b.params.Cols
}

func (b *Board) At(row, col int) Cell {
	return b.cells[row*b.params.Cols+col]
}

// IsValidMove reports whether (row, col) is on the board and still empty.
func (b *Board) IsValidMove(row, col int) bool {
	return b.inBounds(row, col) && b.At(row, col) == Empty
}

// Place writes a mark without validation; callers check IsValidMove first.
func (b *Board) Place(row, col int, c Cell) {
	b.cells[row*b.params.Cols+col] = c
}

// Clear resets a cell to Empty, undoing a speculative Place.
func (b *Board) Clear(row, col int) {
	b.cells[row*b.params.Cols+col] = Empty
}

func (b *Board) IsFull() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// EmptyCells lists the empty squares in row-major order.
func (b *Board) EmptyCells() []Move {
	moves := make([]Move, 0, len(b.cells))
	for i, c := range b.cells {
		if c == Empty {
			moves = append(moves, Move{Row: i / b.params.Cols, Col: i % b.params.Cols})
		}
	}
	return moves
}

func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{params: b.params, cells: cells}
}

func (b *Board) Equal(other *Board) bool {
	if other == nil || b.params != other.params {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders one line per row, e.g. "| X | O | * | ".
func (b *Board) String() string {
	var sb strings.Builder
	for i := 0; i < b.params.Rows; i++ {
		sb.WriteString("| ")
		for j := 0; j < b.params.Cols; j++ {
			sb.WriteString(b.At(i, j).String())
			sb.WriteString(" | ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
