package searcher

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"mnk/experiments/metrics"
	"mnk/game"
)

var ErrUnknownAlgorithm = errors.New("unknown search algorithm")

type Algorithm int

const (
	Minimax Algorithm = iota
	AlphaBeta
)

func (a Algorithm) String() string {
	if a == Minimax {
		return "minimax"
	}
	return "alphabeta"
}

func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minimax":
		return Minimax, nil
	case "alphabeta", "alpha-beta", "ab":
		return AlphaBeta, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

type Option func(s *Searcher)

// Searcher runs complete game-tree searches. A Searcher is not safe for concurrent Search calls.
type Searcher struct {
	algorithm  Algorithm
	goroutines int
	metrics    metrics.Collector
}

func WithAlgorithm(algorithm Algorithm) Option {
	return func(s *Searcher) {
		s.algorithm = algorithm
	}
}

// WithGoroutines searches the first-move candidates on that many workers, each on its own copy of the board.
func WithGoroutines(goroutines int) Option {
	return func(s *Searcher) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		algorithm:  AlphaBeta,
		goroutines: 1,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Algorithm() Algorithm {
	return s.algorithm
}

// Search finds the optimal move for mark on board: X maximizes, O minimizes. The board is left unchanged.
func (s *Searcher) Search(board *game.Board, mark game.Cell) (Result, metrics.SearchMetric) {
	s.metrics.Start(s.algorithm.String(), s.goroutines)

	var result Result
	if s.goroutines > 1 {
		result = s.parallel(board, mark)
	} else {
		result = newSearch(board, s.metrics).best(mark, s.algorithm)
	}

	return result, s.metrics.Complete()
}

func (s *search) best(mark game.Cell, algorithm Algorithm) Result {
	switch {
	case mark == game.X && algorithm == Minimax:
		return s.maximize()
	case mark == game.X:
		return s.maximizeAB(-Inf, Inf)
	case algorithm == Minimax:
		return s.minimize()
	default:
		return s.minimizeAB(-Inf, Inf)
	}
}

// parallel evaluates every first move concurrently, then picks the best one in row-major order so that ties
// resolve exactly as in the sequential search.
func (s *Searcher) parallel(board *game.Board, mark game.Cell) Result {
	root := newSearch(board, s.metrics)
	if r, done := root.visit(); done {
		return r
	}

	moves := board.EmptyCells()
	values := make([]Value, len(moves))

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for g := 0; g < min(s.goroutines, len(moves)); g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				child := board.Clone()
				child.Place(moves[i].Row, moves[i].Col, mark)
				values[i] = newSearch(child, s.metrics).best(mark.Opponent(), s.algorithm).Value
			}
		}()
	}
	wg.Wait()

	best := Result{Value: -Inf}
	if mark == game.O {
		best.Value = Inf
	}
	for i, v := range values {
		if (mark == game.X && v > best.Value) || (mark == game.O && v < best.Value) {
			best = withMove(v, moves[i])
		}
	}
	return best
}
