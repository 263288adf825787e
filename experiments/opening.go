package experiments

import (
	"mnk/experiments/metrics"
	"mnk/game"
	"mnk/player"
)

// openingPlayer plays a fixed first move, then hands over to the wrapped player.
type openingPlayer struct {
	player.Player
	opening game.Move
	played  bool
}

func (p *openingPlayer) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	if !p.played && board.IsValidMove(p.opening.Row, p.opening.Col) {
		p.played = true
		return p.opening, metrics.SearchMetric{Algorithm: "opening"}, nil
	}
	p.played = true
	return p.Player.FindMove(board)
}
