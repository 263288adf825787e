package searcher

import (
	"testing"

	"mnk/game"

	"github.com/stretchr/testify/require"
)

// reachable collects every distinct position reachable from an empty board, terminal ones included.
func reachable(p game.Params) []*game.Board {
	seen := map[string]bool{}
	var positions []*game.Board

	var walk func(b *game.Board, mark game.Cell)
	walk = func(b *game.Board, mark game.Cell) {
		key := b.String()
		if seen[key] {
			return
		}
		seen[key] = true
		positions = append(positions, b.Clone())

		if game.Evaluate(b).IsTerminal() {
			return
		}
		for _, move := range b.EmptyCells() {
			b.Place(move.Row, move.Col, mark)
			walk(b, mark.Opponent())
			b.Clear(move.Row, move.Col)
		}
	}
	walk(game.NewBoard(p), game.X)

	return positions
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	for _, p := range []game.Params{
		{Rows: 3, Cols: 3, K: 3},
		{Rows: 3, Cols: 3, K: 2},
		{Rows: 2, Cols: 3, K: 2},
	} {
		t.Run("every reachable position of "+p.String(), func(t *testing.T) {
			for _, b := range reachable(p) {
				var plain, pruned Result
				if toMove(b) == game.X {
					plain = Maximize(b)
					pruned = MaximizeAB(b, -Inf, Inf)
				} else {
					plain = Minimize(b)
					pruned = MinimizeAB(b, -Inf, Inf)
				}

				require.Equal(t, plain.Value, pruned.Value, "Pruning should not change the value of\n%s", b)
				require.Equal(t, plain, pruned, "Pruning should keep the first optimal move of\n%s", b)
			}
		})
	}
}

func TestMaximizeAB(t *testing.T) {
	t.Run("empty 3x3x3 board is a draw under optimal play", func(t *testing.T) {
		got := MaximizeAB(emptyBoard(3, 3, 3), -Inf, Inf)

		require.Equal(t, Draw, got.Value)
		move, ok := got.Move()
		require.True(t, ok)
		require.Equal(t, game.Move{Row: 0, Col: 0}, move)
	})

	t.Run("beta cutoff returns as soon as the bound is met", func(t *testing.T) {
		b := parseBoard(3, "XX*", "OO*", "***")

		// Any win meets beta = Draw, so the first winning move is returned
		got := MaximizeAB(b, -Inf, Draw)

		require.Equal(t, Win, got.Value)
		move, _ := got.Move()
		require.Equal(t, game.Move{Row: 0, Col: 2}, move)
	})

	t.Run("board is restored after pruned searches", func(t *testing.T) {
		for _, b := range reachable(game.Params{Rows: 3, Cols: 3, K: 3})[:200] {
			before := b.Clone()

			MaximizeAB(b, -Inf, Inf)
			MinimizeAB(b, -Inf, Inf)
			MaximizeAB(b, Loss, Draw)
			MinimizeAB(b, Draw, Win)

			require.True(t, b.Equal(before), "Speculative moves should be undone on every exit path of\n%s", before)
		}
	})
}

func TestMinimizeAB(t *testing.T) {
	t.Run("taking an immediate win", func(t *testing.T) {
		got := MinimizeAB(parseBoard(3, "XX*", "OO*", "X**"), -Inf, Inf)

		require.Equal(t, Loss, got.Value)
		move, _ := got.Move()
		require.Equal(t, game.Move{Row: 1, Col: 2}, move)
	})

	t.Run("terminal board has a value but no move", func(t *testing.T) {
		got := MinimizeAB(parseBoard(3, "XXX", "OO*", "***"), -Inf, Inf)

		require.Equal(t, Win, got.Value)
		_, ok := got.Move()
		require.False(t, ok)
	})
}
