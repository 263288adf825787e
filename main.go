package main

import (
	"errors"
	"fmt"
	"os"

	"mnk/config"
	"mnk/engine"
	"mnk/experiments"
	"mnk/game"
	"mnk/gamemaster"
	"mnk/player"
	"mnk/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch cfg.Mode {
	case config.ModeExperiment:
		dir, err := experiments.Run(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		log.Info().Msgf("records written to %s", dir)
	default:
		if err := play(cfg); err != nil {
			log.Fatal().Err(err).Msg("game aborted")
		}
	}
}

// play runs one game with the user as X against the computer as O.
func play(cfg *config.Config) error {
	algorithm, err := searcher.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}
	referee, err := gamemaster.NewLocal(cfg.Params())
	if err != nil {
		return err
	}

	newSearcher := func() *searcher.Searcher {
		return searcher.New(searcher.WithAlgorithm(algorithm), searcher.WithGoroutines(cfg.Goroutines))
	}
	console := player.NewConsole(os.Stdin, os.Stdout)
	human := player.NewHuman(game.X, newSearcher(), console)
	computer := player.NewComputer(game.O, newSearcher(), console)

	_, _, _, err = engine.LocalEngine(referee, human, computer, console).Run()
	return err
}
