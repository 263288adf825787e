package engine

import (
	"mnk/experiments/metrics"
	"mnk/game"
)

// Phase is the state of the game loop, derived from the referee before every iteration.
type Phase int

const (
	AwaitingXMove Phase = iota
	ComputingOMove
	Terminal
)

func (p Phase) String() string {
	switch p {
	case AwaitingXMove:
		return "awaiting X move"
	case ComputingOMove:
		return "computing O move"
	default:
		return "terminal"
	}
}

// Display shows the game to whoever is watching it.
type Display interface {
	NewGame()
	DrawBoard(b *game.Board)
	Announce(o game.Outcome)
}

type Runner interface {
	// Run plays the game to the end and returns its outcome with per-game and per-move metrics
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

type quietDisplay struct{}

func (quietDisplay) NewGame()                {}
func (quietDisplay) DrawBoard(b *game.Board) {}
func (quietDisplay) Announce(o game.Outcome) {}
