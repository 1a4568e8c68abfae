package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/unscramble/internal/words"
)

func newTestEngine(t *testing.T, vocab []string, budget int) *Engine {
	t.Helper()
	e, err := New(Config{
		RoundBudget:    budget,
		ScoreIncrement: 20,
		Vocabulary:     vocab,
		Seed:           12345,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return e
}

// unscrambled finds the vocabulary word the snapshot was built from.
func unscrambled(t *testing.T, vocab []string, scrambled string) string {
	t.Helper()
	for _, w := range vocab {
		if words.IsAnagram(w, scrambled) {
			return w
		}
	}
	t.Fatalf("no vocabulary word matches %q", scrambled)
	return ""
}

var threeWords = []string{"kotlin", "flow", "compose"}

func TestNewInitialState(t *testing.T) {
	e := newTestEngine(t, threeWords, 3)
	s := e.State()

	if s.CurrentWordCount != 1 {
		t.Errorf("CurrentWordCount = %d, want 1", s.CurrentWordCount)
	}
	if s.Score != 0 {
		t.Errorf("Score = %d, want 0", s.Score)
	}
	if s.WrongGuess || s.IsGameOver {
		t.Errorf("fresh state has flags set: %+v", s)
	}
	w := unscrambled(t, threeWords, s.CurrentScrambledWord)
	if w == s.CurrentScrambledWord {
		t.Errorf("scrambled word %q equals its answer", w)
	}
	if len(e.Used()) != s.CurrentWordCount {
		t.Errorf("used %d words, word count %d", len(e.Used()), s.CurrentWordCount)
	}
}

func TestNewRejectsConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"budget exceeds vocabulary", Config{RoundBudget: 4, ScoreIncrement: 20, Vocabulary: threeWords}},
		{"zero budget", Config{RoundBudget: 0, ScoreIncrement: 20, Vocabulary: threeWords}},
		{"zero increment", Config{RoundBudget: 1, ScoreIncrement: 0, Vocabulary: threeWords}},
		{"duplicate word", Config{RoundBudget: 1, ScoreIncrement: 20, Vocabulary: []string{"flow", "flow"}}},
		{"unscramblable word", Config{RoundBudget: 1, ScoreIncrement: 20, Vocabulary: []string{"flow", "aa"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.cfg)
			if e != nil {
				t.Error("New() returned an engine for invalid config")
			}
			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("New() error = %v, want ErrConfiguration", err)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("New() error %T is not *ConfigError", err)
			}
		})
	}
}

func TestCorrectGuessScoresAndAdvances(t *testing.T) {
	e := newTestEngine(t, threeWords, 3)

	if err := e.UpdateUserGuess(strings.ToUpper(e.Answer())); err != nil {
		t.Fatalf("UpdateUserGuess failed: %v", err)
	}
	correct, err := e.CheckUserGuess()
	if err != nil {
		t.Fatalf("CheckUserGuess failed: %v", err)
	}
	if !correct {
		t.Fatal("upper-case answer was not accepted")
	}

	s := e.State()
	if s.Score != 20 {
		t.Errorf("Score = %d, want 20", s.Score)
	}
	if s.CurrentWordCount != 2 {
		t.Errorf("CurrentWordCount = %d, want 2", s.CurrentWordCount)
	}
	if s.WrongGuess {
		t.Error("WrongGuess set after correct guess")
	}
	if e.UserGuess() != "" {
		t.Errorf("guess not cleared: %q", e.UserGuess())
	}
}

func TestWrongThenCorrect(t *testing.T) {
	e := newTestEngine(t, threeWords, 3)

	e.UpdateUserGuess("and")
	correct, err := e.CheckUserGuess()
	if err != nil || correct {
		t.Fatalf("CheckUserGuess() = %v, %v; want false, nil", correct, err)
	}

	s := e.State()
	if !s.WrongGuess {
		t.Error("WrongGuess not set after wrong guess")
	}
	if s.Score != 0 || s.CurrentWordCount != 1 {
		t.Errorf("wrong guess changed progress: %+v", s)
	}
	if e.UserGuess() != "" {
		t.Errorf("guess not cleared after wrong submit: %q", e.UserGuess())
	}

	// Editing does not clear the flag.
	e.UpdateUserGuess("x")
	if !e.State().WrongGuess {
		t.Error("editing the guess cleared WrongGuess")
	}

	e.UpdateUserGuess(e.Answer())
	if _, err := e.CheckUserGuess(); err != nil {
		t.Fatalf("CheckUserGuess failed: %v", err)
	}
	s = e.State()
	if s.WrongGuess {
		t.Error("WrongGuess still set after correct guess")
	}
	if s.Score != 20 {
		t.Errorf("Score = %d, want 20", s.Score)
	}
	if s.CurrentWordCount != 2 {
		t.Errorf("CurrentWordCount = %d, want 2", s.CurrentWordCount)
	}
}

func TestAllCorrect(t *testing.T) {
	e := newTestEngine(t, threeWords, 3)
	expected := 0

	for range 3 {
		answer := unscrambled(t, threeWords, e.State().CurrentScrambledWord)
		e.UpdateUserGuess(answer)
		if _, err := e.CheckUserGuess(); err != nil {
			t.Fatalf("CheckUserGuess failed: %v", err)
		}
		expected += 20
		if e.State().Score != expected {
			t.Errorf("Score = %d, want %d", e.State().Score, expected)
		}
	}

	s := e.State()
	if !s.IsGameOver {
		t.Error("game not over after all rounds")
	}
	if s.Score != 60 {
		t.Errorf("final Score = %d, want 60", s.Score)
	}
	if s.CurrentWordCount != 3 {
		t.Errorf("final CurrentWordCount = %d, want 3", s.CurrentWordCount)
	}
}

func TestSkipKeepsScore(t *testing.T) {
	e := newTestEngine(t, threeWords, 3)

	e.UpdateUserGuess(e.Answer())
	e.CheckUserGuess()
	e.UpdateUserGuess("wrong")
	e.CheckUserGuess()
	e.UpdateUserGuess("partial")

	before := e.State()
	if err := e.SkipWord(); err != nil {
		t.Fatalf("SkipWord failed: %v", err)
	}
	after := e.State()

	if after.Score != before.Score {
		t.Errorf("Score changed on skip: %d -> %d", before.Score, after.Score)
	}
	if after.CurrentWordCount != before.CurrentWordCount+1 {
		t.Errorf("CurrentWordCount = %d, want %d", after.CurrentWordCount, before.CurrentWordCount+1)
	}
	if after.WrongGuess {
		t.Error("WrongGuess not cleared by skip")
	}
	if e.UserGuess() != "" {
		t.Errorf("guess not cleared by skip: %q", e.UserGuess())
	}
}

func TestMixedRoundsEndGame(t *testing.T) {
	vocab := words.DefaultList()
	e := newTestEngine(t, vocab, words.DefaultRoundBudget)

	for i := range words.DefaultRoundBudget {
		if e.State().IsGameOver {
			t.Fatalf("game over early at round %d", i+1)
		}
		if i%2 == 0 {
			e.UpdateUserGuess(e.Answer())
			e.CheckUserGuess()
		} else {
			e.SkipWord()
		}
		if got := len(e.Used()); got != e.State().CurrentWordCount {
			t.Fatalf("used %d words at word count %d", got, e.State().CurrentWordCount)
		}
	}

	s := e.State()
	if !s.IsGameOver {
		t.Fatal("game not over after round budget")
	}
	if s.CurrentWordCount != words.DefaultRoundBudget {
		t.Errorf("CurrentWordCount = %d, want %d", s.CurrentWordCount, words.DefaultRoundBudget)
	}
	if want := 5 * 20; s.Score != want {
		t.Errorf("Score = %d, want %d", s.Score, want)
	}

	seen := make(map[string]bool)
	for _, w := range e.Used() {
		if seen[w] {
			t.Errorf("word %q used twice", w)
		}
		seen[w] = true
	}
}

func TestIntentsRejectedWhenOver(t *testing.T) {
	e := newTestEngine(t, []string{"flow"}, 1)
	if err := e.SkipWord(); err != nil {
		t.Fatalf("SkipWord failed: %v", err)
	}
	over := e.State()
	if !over.IsGameOver {
		t.Fatal("expected game over")
	}

	if err := e.UpdateUserGuess("flow"); !errors.Is(err, ErrGameOver) {
		t.Errorf("UpdateUserGuess error = %v, want ErrGameOver", err)
	}
	if _, err := e.CheckUserGuess(); !errors.Is(err, ErrGameOver) {
		t.Errorf("CheckUserGuess error = %v, want ErrGameOver", err)
	}
	if err := e.SkipWord(); !errors.Is(err, ErrGameOver) {
		t.Errorf("SkipWord error = %v, want ErrGameOver", err)
	}
	if e.State() != over {
		t.Errorf("state changed while over: %+v -> %+v", over, e.State())
	}
}

func TestResetFromOver(t *testing.T) {
	e := newTestEngine(t, threeWords, 3)
	for range 3 {
		e.UpdateUserGuess(e.Answer())
		e.CheckUserGuess()
	}
	if !e.State().IsGameOver {
		t.Fatal("expected game over")
	}

	if err := e.ResetGame(); err != nil {
		t.Fatalf("ResetGame failed: %v", err)
	}
	s := e.State()
	if s.IsGameOver || s.WrongGuess || s.Score != 0 || s.CurrentWordCount != 1 {
		t.Errorf("reset state = %+v", s)
	}
	if len(e.Used()) != 1 {
		t.Errorf("used = %v, want one word", e.Used())
	}
	unscrambled(t, threeWords, s.CurrentScrambledWord)
}

func TestSeedDeterminism(t *testing.T) {
	a := newTestEngine(t, words.DefaultList(), 5)
	b := newTestEngine(t, words.DefaultList(), 5)
	for range 5 {
		if a.State() != b.State() {
			t.Fatalf("same seed diverged: %+v vs %+v", a.State(), b.State())
		}
		a.SkipWord()
		b.SkipWord()
	}
}

func TestSameWordCaseFolding(t *testing.T) {
	tests := []struct {
		guess, answer string
		want          bool
	}{
		{"FLOW", "flow", true},
		{"Compose", "compose", true},
		{"STRASSE", "straße", true},
		{"flows", "flow", false},
		{"", "flow", false},
	}
	for _, tc := range tests {
		if got := sameWord(tc.guess, tc.answer); got != tc.want {
			t.Errorf("sameWord(%q, %q) = %v, want %v", tc.guess, tc.answer, got, tc.want)
		}
	}
}

func TestExhaustedPoolEndsGame(t *testing.T) {
	e := newTestEngine(t, threeWords, 3)
	// Budget larger than the vocabulary; New refuses this, so set it here.
	e.roundBudget = 4

	for range 2 {
		if err := e.SkipWord(); err != nil {
			t.Fatalf("SkipWord failed: %v", err)
		}
	}
	err := e.SkipWord()
	if !errors.Is(err, words.ErrExhaustedPool) {
		t.Fatalf("SkipWord error = %v, want ErrExhaustedPool", err)
	}

	s := e.State()
	if !s.IsGameOver {
		t.Errorf("state after exhaustion = %+v, want game over", s)
	}
	if s.CurrentWordCount != 3 {
		t.Errorf("CurrentWordCount = %d, want 3", s.CurrentWordCount)
	}
	if err := e.SkipWord(); !errors.Is(err, ErrGameOver) {
		t.Errorf("SkipWord after exhaustion error = %v, want ErrGameOver", err)
	}
	if err := e.UpdateUserGuess("flow"); !errors.Is(err, ErrGameOver) {
		t.Errorf("UpdateUserGuess after exhaustion error = %v, want ErrGameOver", err)
	}
}

func TestResetFailureKeepsSession(t *testing.T) {
	e := newTestEngine(t, threeWords, 3)
	if err := e.SkipWord(); err != nil {
		t.Fatalf("SkipWord failed: %v", err)
	}
	e.UpdateUserGuess("half")
	before := e.State()
	usedBefore := e.Used()
	answer := e.Answer()

	empty, err := words.NewVocabulary(nil)
	if err != nil {
		t.Fatalf("NewVocabulary failed: %v", err)
	}
	e.vocab = empty

	if err := e.ResetGame(); !errors.Is(err, words.ErrExhaustedPool) {
		t.Fatalf("ResetGame error = %v, want ErrExhaustedPool", err)
	}
	if e.State() != before {
		t.Errorf("state changed on failed reset: %+v -> %+v", before, e.State())
	}
	if got := e.Used(); len(got) != len(usedBefore) || len(got) != before.CurrentWordCount {
		t.Errorf("used = %v, want %v", got, usedBefore)
	}
	if e.Answer() != answer {
		t.Errorf("Answer() = %q, want %q", e.Answer(), answer)
	}
	if e.UserGuess() != "half" {
		t.Errorf("UserGuess() = %q, want %q", e.UserGuess(), "half")
	}
}
