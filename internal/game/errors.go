package game

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks an engine that cannot be constructed.
	ErrConfiguration = errors.New("game: invalid configuration")

	// ErrGameOver is returned by round intents after the game has ended.
	ErrGameOver = errors.New("game: game is over")
)

// ConfigError describes why an engine configuration was rejected.
type ConfigError struct {
	Field  string
	Reason string
	Err    error // Underlying cause, if any
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("game: invalid %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("game: invalid %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrConfiguration) match any ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
