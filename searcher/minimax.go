package searcher

import (
	"mnk/experiments/metrics"
	"mnk/game"
)

// search borrows a board for the duration of one top-level call. Every speculative Place is undone before the
// call returns, so the caller sees the board exactly as it passed it in.
type search struct {
	board   *game.Board
	metrics metrics.Collector
}

func newSearch(board *game.Board, collector metrics.Collector) *search {
	return &search{board: board, metrics: collector}
}

// Maximize returns X's optimal value and move using plain minimax.
func Maximize(board *game.Board) Result {
	return newSearch(board, metrics.NewDummyCollector()).maximize()
}

// Minimize returns O's optimal value and move using plain minimax.
func Minimize(board *game.Board) Result {
	return newSearch(board, metrics.NewDummyCollector()).minimize()
}

func (s *search) visit() (Result, bool) {
	s.metrics.AddNode()
	outcome := game.Evaluate(s.board)
	if outcome.IsTerminal() {
		return terminal(Value(outcome.Value())), true
	}
	return Result{}, false
}

func (s *search) maximize() Result {
	if r, done := s.visit(); done {
		return r
	}

	best := Result{Value: -Inf}
	for i := 0; i < s.board.Rows(); i++ {
		for j := 0; j < s.board.Cols(); j++ {
			if s.board.At(i, j) != game.Empty {
				continue
			}
			s.board.Place(i, j, game.X)
			v := s.minimize().Value
			s.board.Clear(i, j)

			if v > best.Value {
				best = withMove(v, game.Move{Row: i, Col: j})
			}
		}
	}
	return best
}

func (s *search) minimize() Result {
	if r, done := s.visit(); done {
		return r
	}

	best := Result{Value: Inf}
	for i := 0; i < s.board.Rows(); i++ {
		for j := 0; j < s.board.Cols(); j++ {
			if s.board.At(i, j) != game.Empty {
				continue
			}
			s.board.Place(i, j, game.O)
			v := s.maximize().Value
			s.board.Clear(i, j)

			if v < best.Value {
				best = withMove(v, game.Move{Row: i, Col: j})
			}
		}
	}
	return best
}
