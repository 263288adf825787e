package searcher

import (
	"math"

	"mnk/game"
)

// Value is a game-theoretic score from X's perspective.
type Value int

const (
	Win  Value = 1
	Draw Value = 0
	Loss Value = -1

	// Inf bounds every Value; the running best starts at -Inf for the maximizer and +Inf for the minimizer.
	Inf Value = math.MaxInt
)

// Result is either a bare value for a finished position or a value paired with the move that achieves it.
type Result struct {
	Value   Value
	move    game.Move
	hasMove bool
}

func terminal(v Value) Result {
	return Result{Value: v}
}

func withMove(v Value, move game.Move) Result {
	return Result{Value: v, move: move, hasMove: true}
}

// Move returns the recommended move, or false when the position was already terminal.
func (r Result) Move() (game.Move, bool) {
	return r.move, r.hasMove
}
