package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/unscramble/internal/config"
	"github.com/vovakirdan/unscramble/internal/game"
)

var (
	flagRounds     int
	flagDifficulty string
)

// addGameFlags registers the flags that shape a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagRounds, "rounds", 0, "Rounds per game (overrides config and difficulty)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// loadSettings resolves config file, environment, and flags, in that order
// of increasing precedence.
func loadSettings() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	if flagRounds > 0 {
		cfg.Game.Rounds = flagRounds
	}
	if flagDBPath != "" {
		cfg.Storage.DB = flagDBPath
	}
	logger.Debug("settings loaded",
		"rounds", cfg.Game.Rounds,
		"score_increment", cfg.Game.ScoreIncrement,
		"words_file", cfg.Words.File,
		"db", cfg.Storage.DB,
	)
	return cfg, nil
}

// gameConfig builds the engine configuration. A zero --seed picks one
// from the clock.
func gameConfig(cfg config.Config) (game.Config, error) {
	vocab, err := cfg.Vocabulary()
	if err != nil {
		return game.Config{}, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return game.Config{
		RoundBudget:    cfg.Game.Rounds,
		ScoreIncrement: cfg.Game.ScoreIncrement,
		Vocabulary:     vocab,
		Seed:           seed,
	}, nil
}

// checkGame builds the engine configuration and runs it through the same
// validation play does.
func checkGame(cfg config.Config) (game.Config, error) {
	gameCfg, err := gameConfig(cfg)
	if err != nil {
		return gameCfg, err
	}
	if _, err := game.New(gameCfg); err != nil {
		return gameCfg, err
	}
	return gameCfg, nil
}
