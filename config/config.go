package config

import (
	"errors"
	"fmt"
	"strings"

	"mnk/game"
	"mnk/meta"
	"mnk/searcher"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ModePlay       = "play"
	ModeExperiment = "experiment"

	ExperimentComparison = "algorithm_comparison"
	ExperimentSpeedup    = "speedup"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Rows       int    `mapstructure:"rows"`
	Cols       int    `mapstructure:"cols"`
	K          int    `mapstructure:"k"`
	Algorithm  string `mapstructure:"algorithm"`
	Goroutines int    `mapstructure:"goroutines"`
	Mode       string `mapstructure:"mode"`
	Experiment string `mapstructure:"experiment"`
	Games      int    `mapstructure:"games"`
	Seed       uint64 `mapstructure:"seed"`
	Output     string `mapstructure:"output"`
	LogLevel   string `mapstructure:"log-level"`
}

func (c Config) Params() game.Params {
	return game.Params{Rows: c.Rows, Cols: c.Cols, K: c.K}
}

// Load reads flags from args, then MNK_* environment variables, then the optional --config file.
// Flags given explicitly win over the environment, which wins over the file and the defaults.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("mnk", pflag.ContinueOnError)
	fs.Int("rows", meta.DEFAULT_ROWS, "board rows (m)")
	fs.Int("cols", meta.DEFAULT_COLS, "board columns (n)")
	fs.Int("k", meta.DEFAULT_K, "marks in a row needed to win")
	fs.String("algorithm", meta.DEFAULT_ALGORITHM, "search algorithm: minimax or alphabeta")
	fs.Int("goroutines", meta.GO_ROUTINES, "goroutines searching first moves in parallel")
	fs.String("mode", ModePlay, "play against the computer or run an experiment")
	fs.String("experiment", ExperimentComparison, "experiment to run: algorithm_comparison or speedup")
	fs.Int("games", meta.NUM_GAMES, "games per experiment matchup")
	fs.Uint64("seed", 1, "seed for experiment openings")
	fs.String("output", meta.EXPERIMENTS_DIR, "directory for experiment records")
	fs.String("log-level", zerolog.LevelInfoValue, "log level")
	cfgFile := fs.String("config", "", "optional config file (yaml, toml or json)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("MNK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if *cfgFile != "" {
		v.SetConfigFile(*cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := searcher.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Goroutines < 1 {
		return fmt.Errorf("%w: goroutines must be positive, got %d", ErrInvalidConfig, c.Goroutines)
	}
	if c.Mode != ModePlay && c.Mode != ModeExperiment {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	if c.Mode == ModeExperiment && c.Games < 1 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if c.Mode == ModeExperiment && c.Experiment != ExperimentComparison && c.Experiment != ExperimentSpeedup {
		return fmt.Errorf("%w: unknown experiment %q", ErrInvalidConfig, c.Experiment)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
