package searcher

import (
	"mnk/experiments/metrics"
	"mnk/game"
)

// MaximizeAB is Maximize with alpha-beta pruning. Start a search with alpha = -Inf and beta = Inf.
func MaximizeAB(board *game.Board, alpha, beta Value) Result {
	return newSearch(board, metrics.NewDummyCollector()).maximizeAB(alpha, beta)
}

// MinimizeAB is Minimize with alpha-beta pruning. Start a search with alpha = -Inf and beta = Inf.
func MinimizeAB(board *game.Board, alpha, beta Value) Result {
	return newSearch(board, metrics.NewDummyCollector()).minimizeAB(alpha, beta)
}

func (s *search) maximizeAB(alpha, beta Value) Result {
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
			v := s.minimizeAB(alpha, beta).Value
			s.board.Clear(i, j)

			if v > best.Value {
				best = withMove(v, game.Move{Row: i, Col: j})
			}
			if best.Value >= beta { // The minimizer above already has something better
				s.metrics.AddCutoff()
				return best
			}
			if best.Value > alpha {
				alpha = best.Value
			}
		}
	}
	return best
}

func (s *search) minimizeAB(alpha, beta Value) Result {
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
			v := s.maximizeAB(alpha, beta).Value
			s.board.Clear(i, j)

			if v < best.Value {
				best = withMove(v, game.Move{Row: i, Col: j})
			}
			if best.Value <= alpha { // The maximizer above already has something better
				s.metrics.AddCutoff()
				return best
			}
			if best.Value < beta {
				beta = best.Value
			}
		}
	}
	return best
}
