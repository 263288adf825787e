package player

import (
	"errors"
	"time"

	"mnk/experiments/metrics"
	"mnk/game"
	"mnk/searcher"
)

var ErrNoMove = errors.New("no move available in a finished game")

// Player picks the next move for its mark. The board it receives is a snapshot it may use freely.
type Player interface {
	Mark() game.Cell
	FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error)
}

// Human shows the searcher's recommendation, then asks for coordinates until they name a valid move.
type Human struct {
	mark     game.Cell
	searcher *searcher.Searcher
	console  *Console
}

func NewHuman(mark game.Cell, s *searcher.Searcher, console *Console) *Human {
	return &Human{mark: mark, searcher: s, console: console}
}

func (h *Human) Mark() game.Cell {
	return h.mark
}

func (h *Human) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	start := time.Now()
	result, metric := h.searcher.Search(board, h.mark)
	h.console.EvaluationTime(time.Since(start))

	recommended, ok := result.Move()
	for {
		if ok {
			h.console.Recommend(recommended)
		}

		x, err := h.console.ReadInt("Insert the x-coordinate: ")
		if err != nil {
			return game.Move{}, metric, err
		}
		y, err := h.console.ReadInt("Insert the y-coordinate: ")
		if err != nil {
			return game.Move{}, metric, err
		}

		if board.IsValidMove(x, y) {
			return game.Move{Row: x, Col: y}, metric, nil
		}
		h.console.Printf("Not a valid move! Try again.\n")
	}
}

// Computer always plays the searcher's optimal move. A nil console keeps it silent.
type Computer struct {
	mark     game.Cell
	searcher *searcher.Searcher
	console  *Console
}

func NewComputer(mark game.Cell, s *searcher.Searcher, console *Console) *Computer {
	return &Computer{mark: mark, searcher: s, console: console}
}

func (c *Computer) Mark() game.Cell {
	return c.mark
}

func (c *Computer) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	start := time.Now()
	result, metric := c.searcher.Search(board, c.mark)
	if c.console != nil {
		c.console.EvaluationTime(time.Since(start))
	}

	move, ok := result.Move()
	if !ok {
		return game.Move{}, metric, ErrNoMove
	}
	return move, metric, nil
}
