// Package config provides YAML-based configuration loading for the
// unscramble game, with environment overrides and difficulty presets.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/vovakirdan/unscramble/internal/words"
)

//go:embed defaults/unscramble.yaml
var defaultYAML []byte

// Config contains all configuration for the game and its surroundings.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Words   WordsConfig   `yaml:"words"`
	Storage StorageConfig `yaml:"storage"`
}

// GameConfig defines round and scoring parameters.
type GameConfig struct {
	Rounds         int `yaml:"rounds" env:"ROUNDS"`
	ScoreIncrement int `yaml:"score_increment" env:"SCORE_INCREMENT"`
}

// WordsConfig selects the vocabulary source.
// File wins over List; both empty means the built-in list.
type WordsConfig struct {
	File string   `yaml:"file" env:"WORDS_FILE"`
	List []string `yaml:"list"`
}

// StorageConfig locates the scores database.
type StorageConfig struct {
	DB string `yaml:"db" env:"DB"`
}

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Rounds:         words.DefaultRoundBudget,
			ScoreIncrement: words.DefaultScoreIncrement,
		},
		Storage: StorageConfig{
			DB: "~/.unscramble/scores.db",
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Vocabulary returns the raw word entries selected by the config.
func (c Config) Vocabulary() ([]string, error) {
	if c.Words.File != "" {
		f, err := os.Open(c.Words.File)
		if err != nil {
			return nil, fmt.Errorf("failed to open word list %s: %w", c.Words.File, err)
		}
		defer f.Close()
		return words.Parse(f)
	}
	if len(c.Words.List) > 0 {
		return c.Words.List, nil
	}
	return words.DefaultList(), nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// RoundsForPreset returns the round budget for a difficulty preset.
// Unknown presets return 0.
func RoundsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyNormal:
		return words.DefaultRoundBudget
	case DifficultyHard:
		return 20
	default:
		return 0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	rounds := RoundsForPreset(preset)
	if rounds == 0 {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", preset)
	}
	cfg.Game.Rounds = rounds
	return nil
}
