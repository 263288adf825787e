package experiments

import (
	"fmt"

	"mnk/config"
	"mnk/engine"
	"mnk/experiments/metrics"
	"mnk/game"
	"mnk/gamemaster"
	"mnk/player"
	"mnk/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const ComparisonName = config.ExperimentComparison

// comparisonConfigs pits both algorithms, sequential and root-parallel, against each other.
func comparisonConfigs(goroutines int) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{
		{ID: 1, Algorithm: searcher.Minimax.String(), Goroutines: 1},
		{ID: 2, Algorithm: searcher.AlphaBeta.String(), Goroutines: 1},
	}
	if goroutines > 1 {
		configs = append(configs,
			metrics.AgentConfig{ID: 3, Algorithm: searcher.Minimax.String(), Goroutines: goroutines},
			metrics.AgentConfig{ID: 4, Algorithm: searcher.AlphaBeta.String(), Goroutines: goroutines},
		)
	}
	return configs
}

// RunAlgorithmComparison plays cfg.Games games per matchup and returns the directory holding the records.
func RunAlgorithmComparison(cfg *config.Config) (string, error) {
	configs := comparisonConfigs(cfg.Goroutines)

	// Each config plays X against the sequential minimax baseline, then O against it
	baseline := configs[0]
	matchUps := [][]metrics.AgentConfig{}
	for _, agent := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{agent, baseline})
		if agent.ID != baseline.ID {
			matchUps = append(matchUps, []metrics.AgentConfig{baseline, agent})
		}
	}

	return runExperiment(cfg, ComparisonName, configs, matchUps)
}

func runExperiment(cfg *config.Config, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	// Openings are random so that games between the same agents differ
	openings := rand.New(rand.NewSource(cfg.Seed))

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment on %s...", name, cfg.Params())

	for mi, matchup := range matchUps {
		configX := matchup[0]
		configO := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between X=%+v and O=%+v...", mi+1, len(matchUps), configX, configO)

		for i := 0; i < cfg.Games; i++ {
			opening := randomMove(cfg.Params(), openings)

			outcome, gameMetric, moveMetrics, err := runGame(cfg.Params(), configX, configO, opening)
			if err != nil {
				return "", fmt.Errorf("failed to run matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				AgentX:     configX.ID,
				AgentO:     configO.ID,
				Board:      cfg.Params().String(),
				Opening:    opening.String(),
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with result: %s", mi+1, len(matchUps), i+1, outcome)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.Output, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays a single silent game between two computers, X opening with the given move.
func runGame(params game.Params, configX, configO metrics.AgentConfig, opening game.Move) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	referee, err := gamemaster.NewLocal(params)
	if err != nil {
		return game.Ongoing, metrics.GameMetric{}, nil, err
	}

	x, err := createComputer(game.X, configX)
	if err != nil {
		return game.Ongoing, metrics.GameMetric{}, nil, err
	}
	o, err := createComputer(game.O, configO)
	if err != nil {
		return game.Ongoing, metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(referee, &openingPlayer{Player: x, opening: opening}, o, nil)
	return e.Run()
}

func createComputer(mark game.Cell, agent metrics.AgentConfig) (*player.Computer, error) {
	algorithm, err := searcher.ParseAlgorithm(agent.Algorithm)
	if err != nil {
		return nil, err
	}

	s := searcher.New(
		searcher.WithAlgorithm(algorithm),
		searcher.WithGoroutines(agent.Goroutines),
		searcher.WithMetrics(),
	)
	return player.NewComputer(mark, s, nil), nil
}

// searcherName normalises an algorithm alias such as "ab" to the name stored in the records.
func searcherName(name string) (string, error) {
	algorithm, err := searcher.ParseAlgorithm(name)
	if err != nil {
		return "", err
	}
	return algorithm.String(), nil
}

// Run dispatches to the experiment named in the config.
func Run(cfg *config.Config) (string, error) {
	switch cfg.Experiment {
	case SpeedupName:
		return RunSpeedupExperiment(cfg)
	case ComparisonName:
		return RunAlgorithmComparison(cfg)
	default:
		return "", fmt.Errorf("unknown experiment %q", cfg.Experiment)
	}
}

func randomMove(params game.Params, r *rand.Rand) game.Move {
	cell := r.Intn(params.Rows * params.Cols)
	return game.Move{Row: cell / params.Cols, Col: cell % params.Cols}
}
