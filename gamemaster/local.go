package gamemaster

import (
	"errors"
	"fmt"

	"mnk/game"

	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrInvalidMove = errors.New("invalid move")
)

type Update struct {
	Player game.Cell
	Move   game.Move
}

// Local referees a game in-process. It owns the authoritative board; players only ever see copies.
type Local struct {
	board   *game.Board
	turn    game.Cell
	history []Update
}

func NewLocal(p game.Params) (*Local, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Local{
		board: game.NewBoard(p),
		turn:  game.X, // X plays first
	}, nil
}

// Board returns a snapshot of the current position.
func (l *Local) Board() *game.Board {
	return l.board.Clone()
}

func (l *Local) Params() game.Params {
	return l.board.Params()
}

func (l *Local) Turn() game.Cell {
	return l.turn
}

func (l *Local) Outcome() game.Outcome {
	return game.Evaluate(l.board)
}

// Play applies move for the player whose turn it is.
func (l *Local) Play(move game.Move) error {
	if l.Outcome().IsTerminal() {
		return ErrGameOver
	}

	if !l.board.IsValidMove(move.Row, move.Col) {
		log.Debug().Msgf("rejected move (%d, %d) by %s", move.Row, move.Col, l.turn)
		return fmt.Errorf("%w: (%d, %d) is out of bounds or occupied", ErrInvalidMove, move.Row, move.Col)
	}

	l.board.Place(move.Row, move.Col, l.turn)
	l.history = append(l.history, Update{Player: l.turn, Move: move})
	l.turn = l.turn.Opponent()

	return nil
}

func (l *Local) History() []Update {
	history := make([]Update, len(l.history))
	copy(history, l.history)
	return history
}
