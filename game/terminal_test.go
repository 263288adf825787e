package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("empty board is ongoing", func(t *testing.T) {
		require.Equal(t, Ongoing, Evaluate(NewBoard(Params{Rows: 3, Cols: 3, K: 3})))
	})

	t.Run("row of X wins for X", func(t *testing.T) {
		require.Equal(t, XWins, Evaluate(parseBoard(3, "XXX", "OO*", "***")))
	})

	t.Run("row of O wins for O", func(t *testing.T) {
		require.Equal(t, OWins, Evaluate(parseBoard(3, "XX*", "OOO", "X**")))
	})

	t.Run("column wins", func(t *testing.T) {
		require.Equal(t, XWins, Evaluate(parseBoard(3, "XO*", "XO*", "X**")))
		require.Equal(t, OWins, Evaluate(parseBoard(3, "XOX", "*OX", "*O*")))
	})

	t.Run("main diagonal wins", func(t *testing.T) {
		require.Equal(t, XWins, Evaluate(parseBoard(3, "XO*", "OX*", "**X")))
	})

	t.Run("anti diagonal wins", func(t *testing.T) {
		require.Equal(t, OWins, Evaluate(parseBoard(3, "XXO", "XO*", "O**")))
	})

	t.Run("full board without a line is a draw", func(t *testing.T) {
		require.Equal(t, Draw, Evaluate(parseBoard(3, "XOX", "XOO", "OXX")))
	})

	t.Run("full board with a line is a win rather than a draw", func(t *testing.T) {
		require.Equal(t, XWins, Evaluate(parseBoard(3, "XOX", "OXO", "OXX")))
	})

	t.Run("windows slide across wider rows", func(t *testing.T) {
		require.Equal(t, XWins, Evaluate(parseBoard(3, "O*XXX", "*****", "O*O**")))
		require.Equal(t, Ongoing, Evaluate(parseBoard(4, "O*XXX", "*****", "O*O**")), "Three marks should not win when k=4")
	})

	t.Run("diagonals in offset sub-squares", func(t *testing.T) {
		require.Equal(t, OWins, Evaluate(parseBoard(2, "****", "**O*", "*O**")))
		require.Equal(t, XWins, Evaluate(parseBoard(2, "****", "*X**", "**X*", "****")))
	})

	t.Run("k longer than a side only allows lines along the other side", func(t *testing.T) {
		require.Equal(t, Ongoing, Evaluate(parseBoard(3, "X*", "X*")))
		require.Equal(t, Draw, Evaluate(parseBoard(3, "XO", "OX")))
		require.Equal(t, XWins, Evaluate(parseBoard(3, "XXX", "O*O")))
	})

	t.Run("rows are reported before columns before diagonals", func(t *testing.T) {
		require.Equal(t, OWins, Evaluate(parseBoard(3, "XOOO", "X***", "X***")))
		require.Equal(t, XWins, Evaluate(parseBoard(3, "X**O", "X*O*", "XO**")))
	})

	t.Run("evaluation is pure", func(t *testing.T) {
		b := parseBoard(3, "XO*", "*X*", "O**")
		before := b.Clone()

		first := Evaluate(b)
		second := Evaluate(b)

		require.Equal(t, first, second)
		require.True(t, b.Equal(before), "Evaluate should not mutate the board")
	})
}

func TestOutcome(t *testing.T) {
	require.Equal(t, 1, XWins.Value())
	require.Equal(t, -1, OWins.Value())
	require.Equal(t, 0, Draw.Value())
	require.False(t, Ongoing.IsTerminal())
	require.True(t, Draw.IsTerminal())
	require.Equal(t, X, XWins.Winner())
	require.Equal(t, Empty, Draw.Winner())
	require.Equal(t, "The winner is X!", XWins.Message())
	require.Equal(t, "The winner is O!", OWins.Message())
	require.Equal(t, "Draw!", Draw.Message())
}
