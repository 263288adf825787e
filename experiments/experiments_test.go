package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"mnk/config"
	"mnk/experiments/metrics"
	"mnk/game"
	"mnk/searcher"

	"github.com/stretchr/testify/require"
)

func readRows(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestComparisonConfigs(t *testing.T) {
	require.Len(t, comparisonConfigs(1), 2, "Without parallelism only the sequential agents play")
	require.Len(t, comparisonConfigs(4), 4)
}

func TestRunAlgorithmComparison(t *testing.T) {
	cfg := &config.Config{
		Rows: 3, Cols: 3, K: 3,
		Algorithm: "alphabeta", Goroutines: 2,
		Mode: config.ModeExperiment, Games: 1, Seed: 7,
		Output: t.TempDir(), LogLevel: "info",
	}

	dir, err := RunAlgorithmComparison(cfg)

	require.NoError(t, err)
	require.Equal(t, filepath.Join(cfg.Output, ComparisonName), filepath.Dir(dir))

	configs := readRows(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, configs, 5, "Header plus four agents")

	// Baseline against itself, then each other agent once as X and once as O
	games := readRows(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 1+7)
	for _, row := range games[1:] {
		require.Equal(t, "3x3x3", row[3])
		require.Equal(t, "draw", row[6], "Optimal replies hold any tic-tac-toe opening to a draw")
	}

	moves := readRows(t, filepath.Join(dir, "move_records.csv"))
	require.Len(t, moves, 1+7*9, "Every drawn game fills the board")
}

func TestOpeningPlayer(t *testing.T) {
	t.Run("playing the opening once, then searching", func(t *testing.T) {
		x, err := createComputer(game.X, metrics.AgentConfig{Algorithm: "alphabeta", Goroutines: 1})
		require.NoError(t, err)
		p := &openingPlayer{Player: x, opening: game.Move{Row: 2, Col: 1}}
		b := game.NewBoard(game.Params{Rows: 3, Cols: 3, K: 3})

		first, _, err := p.FindMove(b)
		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 2, Col: 1}, first)

		second, metric, err := p.FindMove(b)
		require.NoError(t, err)
		require.NotEqual(t, first, second)
		require.True(t, b.IsValidMove(second.Row, second.Col))
		require.Greater(t, metric.Nodes, int64(0))
		require.Equal(t, game.X, p.Mark())
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := createComputer(game.O, metrics.AgentConfig{Algorithm: "random"})

		require.ErrorIs(t, err, searcher.ErrUnknownAlgorithm)
	})
}

func TestSpeedupConfigs(t *testing.T) {
	goroutines := func(configs []metrics.AgentConfig) []int {
		gs := []int{}
		for _, c := range configs {
			gs = append(gs, c.Goroutines)
		}
		return gs
	}

	require.Equal(t, []int{1}, goroutines(speedupConfigs("minimax", 1)))
	require.Equal(t, []int{1, 2, 4, 8}, goroutines(speedupConfigs("minimax", 8)))
	require.Equal(t, []int{1, 2, 4, 6}, goroutines(speedupConfigs("minimax", 6)), "The last step is capped")

	configs := speedupConfigs("alphabeta", 4)
	for i, c := range configs {
		require.Equal(t, i+1, c.ID)
		require.Equal(t, "alphabeta", c.Algorithm)
	}
}

func TestRun(t *testing.T) {
	newConfig := func(experiment string) *config.Config {
		return &config.Config{
			Rows: 2, Cols: 3, K: 2,
			Algorithm: "ab", Goroutines: 2,
			Mode: config.ModeExperiment, Experiment: experiment, Games: 2, Seed: 3,
			Output: t.TempDir(), LogLevel: "info",
		}
	}

	t.Run("speedup", func(t *testing.T) {
		cfg := newConfig(config.ExperimentSpeedup)

		dir, err := Run(cfg)

		require.NoError(t, err)
		require.Equal(t, filepath.Join(cfg.Output, SpeedupName), filepath.Dir(dir))

		configs := readRows(t, filepath.Join(dir, "agent_configs.csv"))
		require.Equal(t, []string{"1", "alphabeta", "1"}, configs[1], "Aliases are stored by their canonical name")
		require.Equal(t, []string{"2", "alphabeta", "2"}, configs[2])

		games := readRows(t, filepath.Join(dir, "game_records.csv"))
		require.Len(t, games, 1+2*2)
		for _, row := range games[1:] {
			require.Equal(t, row[1], row[2], "Agents play themselves")
			require.Equal(t, "2x3x2", row[3])
		}
	})

	t.Run("comparison", func(t *testing.T) {
		dir, err := Run(newConfig(config.ExperimentComparison))

		require.NoError(t, err)
		require.Len(t, readRows(t, filepath.Join(dir, "game_records.csv")), 1+7*2)
	})

	t.Run("unknown experiment", func(t *testing.T) {
		_, err := Run(newConfig("tournament"))

		require.Error(t, err)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		cfg := newConfig(config.ExperimentSpeedup)
		cfg.Algorithm = "random"

		_, err := Run(cfg)

		require.ErrorIs(t, err, searcher.ErrUnknownAlgorithm)
	})
}
