package experiments

import (
	"mnk/config"
	"mnk/experiments/metrics"
)

const SpeedupName = config.ExperimentSpeedup

// speedupConfigs doubles the goroutines of the configured algorithm up to the configured count.
func speedupConfigs(algorithm string, goroutines int) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{}
	id := 1
	for g := 1; ; g *= 2 {
		if g > goroutines {
			g = goroutines
		}
		configs = append(configs, metrics.AgentConfig{ID: id, Algorithm: algorithm, Goroutines: g})
		id++
		if g == goroutines {
			break
		}
	}
	return configs
}

// RunSpeedupExperiment measures how root parallelism scales the configured algorithm.
func RunSpeedupExperiment(cfg *config.Config) (string, error) {
	algorithm, err := searcherName(cfg.Algorithm)
	if err != nil {
		return "", err
	}
	configs := speedupConfigs(algorithm, cfg.Goroutines)

	// Same config for both players in each game
	// for the same playing strength and similar game length
	matchUps := [][]metrics.AgentConfig{}
	for _, agent := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{agent, agent})
	}

	return runExperiment(cfg, SpeedupName, configs, matchUps)
}
