// Package game implements the unscramble game engine: word selection per
// round, guess checking, scoring and game-over detection.
//
// The engine is pure state and transition logic. It performs no I/O,
// never reads the clock and never blocks. It is not safe for concurrent
// mutation; callers serialize intents (the TUI does this in its Update loop).
package game

import (
	"fmt"
	"math/rand"

	"golang.org/x/text/cases"

	"github.com/vovakirdan/unscramble/internal/words"
)

// Config holds the values an engine is built with.
type Config struct {
	RoundBudget    int      // Rounds per game
	ScoreIncrement int      // Points per correct guess
	Vocabulary     []string // Candidate words
	Seed           int64    // RNG seed; equal seeds give equal games
}

// DefaultConfig returns the build-time defaults with the embedded vocabulary.
func DefaultConfig() Config {
	return Config{
		RoundBudget:    words.DefaultRoundBudget,
		ScoreIncrement: words.DefaultScoreIncrement,
		Vocabulary:     words.DefaultList(),
	}
}

// Engine owns one game session.
type Engine struct {
	roundBudget    int
	scoreIncrement int
	vocab          *words.Vocabulary
	rng            *rand.Rand

	// Round session, replaced on reset
	used      map[string]struct{}
	usedOrder []string
	current   string
	guess     string

	state State
	obs   observers
}

// New validates cfg and starts the first game.
// It returns a *ConfigError if the engine could not run to the end of a game.
func New(cfg Config) (*Engine, error) {
	if cfg.RoundBudget < 1 {
		return nil, &ConfigError{Field: "round budget", Reason: fmt.Sprintf("must be at least 1, got %d", cfg.RoundBudget)}
	}
	if cfg.ScoreIncrement < 1 {
		return nil, &ConfigError{Field: "score increment", Reason: fmt.Sprintf("must be at least 1, got %d", cfg.ScoreIncrement)}
	}

	vocab, err := words.NewVocabulary(cfg.Vocabulary)
	if err != nil {
		return nil, &ConfigError{Field: "vocabulary", Reason: "rejected", Err: err}
	}
	if cfg.RoundBudget > vocab.Len() {
		return nil, &ConfigError{
			Field:  "round budget",
			Reason: fmt.Sprintf("%d rounds need at least %d words, vocabulary has %d", cfg.RoundBudget, cfg.RoundBudget, vocab.Len()),
		}
	}

	e := &Engine{
		roundBudget:    cfg.RoundBudget,
		scoreIncrement: cfg.ScoreIncrement,
		vocab:          vocab,
		rng:            rand.New(rand.NewSource(cfg.Seed)),
	}
	if err := e.ResetGame(); err != nil {
		return nil, err
	}
	return e, nil
}

// State returns the latest published snapshot.
func (e *Engine) State() State {
	return e.state
}

// UserGuess returns the in-progress guess text. It is not part of State.
func (e *Engine) UserGuess() string {
	return e.guess
}

// RoundBudget returns the number of rounds per game.
func (e *Engine) RoundBudget() int {
	return e.roundBudget
}

// Used returns the words presented this game, in order.
func (e *Engine) Used() []string {
	out := make([]string, len(e.usedOrder))
	copy(out, e.usedOrder)
	return out
}

// Answer returns the unscrambled word of the active round, or of the last
// round once the game is over.
func (e *Engine) Answer() string {
	return e.current
}

// Subscribe registers fn and immediately calls it with the current snapshot.
// fn is then called with every published snapshot until the returned
// function is called. fn may call intents; snapshots they publish are
// delivered after the current one has reached every observer.
func (e *Engine) Subscribe(fn Observer) (unsubscribe func()) {
	return e.obs.subscribe(fn)
}

// ResetGame starts a new game from any phase. On error the previous
// session is left as it was.
func (e *Engine) ResetGame() error {
	used := make(map[string]struct{}, e.roundBudget)
	w, scrambled, err := e.drawWord(used)
	if err != nil {
		return err
	}

	e.used = used
	e.usedOrder = e.usedOrder[:0]
	e.guess = ""
	e.record(w)
	e.state = State{
		CurrentScrambledWord: scrambled,
		CurrentWordCount:     1,
	}
	e.obs.publish(e.state)
	return nil
}

// UpdateUserGuess stores the player's in-progress input.
// It does not clear WrongGuess.
func (e *Engine) UpdateUserGuess(text string) error {
	if e.state.IsGameOver {
		return ErrGameOver
	}
	e.guess = text
	return nil
}

// CheckUserGuess submits the current guess. A case-insensitive match scores
// and advances the round; a miss sets WrongGuess. The guess is cleared
// either way.
func (e *Engine) CheckUserGuess() (correct bool, err error) {
	if e.state.IsGameOver {
		return false, ErrGameOver
	}

	correct = sameWord(e.guess, e.current)
	if correct {
		err = e.advance(e.state.Score + e.scoreIncrement)
	} else {
		e.state.WrongGuess = true
		e.obs.publish(e.state)
	}

	e.guess = ""
	return correct, err
}

// SkipWord moves to the next round without scoring.
func (e *Engine) SkipWord() error {
	if e.state.IsGameOver {
		return ErrGameOver
	}
	err := e.advance(e.state.Score)
	e.guess = ""
	return err
}

// advance ends the game once the round budget is used up, otherwise
// starts the next round.
func (e *Engine) advance(score int) error {
	if len(e.used) >= e.roundBudget {
		e.finish(score)
		return nil
	}

	w, scrambled, err := e.drawWord(e.used)
	if err != nil {
		// Vocabulary ran dry before the budget; end rather than stall.
		e.finish(score)
		return err
	}
	e.record(w)

	e.state = State{
		CurrentScrambledWord: scrambled,
		CurrentWordCount:     e.state.CurrentWordCount + 1,
		Score:                score,
	}
	e.obs.publish(e.state)
	return nil
}

func (e *Engine) finish(score int) {
	e.state.Score = score
	e.state.WrongGuess = false
	e.state.IsGameOver = true
	e.obs.publish(e.state)
}

// drawWord picks a word not in used and scrambles it. Nothing is recorded.
func (e *Engine) drawWord(used map[string]struct{}) (word, scrambled string, err error) {
	word, err = words.PickUnused(e.rng, e.vocab, used)
	if err != nil {
		return "", "", fmt.Errorf("game: draw word: %w", err)
	}
	scrambled, err = words.Scramble(e.rng, word)
	if err != nil {
		return "", "", fmt.Errorf("game: draw word: %w", err)
	}
	return word, scrambled, nil
}

// record makes w the current round's word.
func (e *Engine) record(w string) {
	e.used[w] = struct{}{}
	e.usedOrder = append(e.usedOrder, w)
	e.current = w
}

// sameWord compares using Unicode case folding, independent of locale.
func sameWord(guess, answer string) bool {
	fold := cases.Fold()
	return fold.String(guess) == fold.String(answer)
}
