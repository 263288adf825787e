package game

import "fmt"

// Move places the current player's mark at (Row, Col).
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("x = %d, y = %d", m.Row, m.Col)
}
