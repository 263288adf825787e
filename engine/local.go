package engine

import (
	"fmt"
	"time"

	"mnk/experiments/metrics"
	"mnk/game"
	"mnk/gamemaster"
	"mnk/player"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Referee *gamemaster.Local
	Players map[game.Cell]player.Player
	display Display
}

// LocalEngine wires a referee, one player per mark and an optional display (nil runs silently).
func LocalEngine(referee *gamemaster.Local, x, o player.Player, display Display) *Engine {
	if x.Mark() != game.X || o.Mark() != game.O {
		panic("players must play X and O respectively")
	}
	if display == nil {
		display = quietDisplay{}
	}

	return &Engine{
		Referee: referee,
		Players: map[game.Cell]player.Player{game.X: x, game.O: o},
		display: display,
	}
}

func (e *Engine) Phase() Phase {
	switch {
	case e.Referee.Outcome().IsTerminal():
		return Terminal
	case e.Referee.Turn() == game.X:
		return AwaitingXMove
	default:
		return ComputingOMove
	}
}

// Run executes the entire game loop until the board is won or full.
func (e *Engine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Referee.Turn().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("starting %s game, %s moves first", e.Referee.Params(), e.Referee.Turn())
	e.display.NewGame()

	for {
		board := e.Referee.Board()
		e.display.DrawBoard(board)

		phase := e.Phase()
		if phase == Terminal {
			break
		}

		mark := e.Referee.Turn()
		move, searchMetric, err := e.Players[mark].FindMove(board)
		if err != nil {
			return game.Ongoing, gameMetric, moveMetrics, fmt.Errorf("player %s failed to move: %w", mark, err)
		}

		err = e.Referee.Play(move)
		if err != nil {
			return game.Ongoing, gameMetric, moveMetrics, fmt.Errorf("player %s made an illegal move: %w", mark, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         len(moveMetrics) + 1,
			Player:       mark.String(),
			Row:          move.Row,
			Col:          move.Col,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("%s (%s) played %s", mark, phase, move)
	}

	outcome := e.Referee.Outcome()
	e.display.Announce(outcome)

	gameMetric.Winner = outcome.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	log.Debug().Msgf("game over after %d moves: %s", gameMetric.TotalMoves, outcome)

	return outcome, gameMetric, moveMetrics, nil
}

var _ Runner = (*Engine)(nil)
