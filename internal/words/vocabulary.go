// Package words holds the game vocabulary and the word shuffler.
// It has no knowledge of rounds or scoring; the game engine decides
// when to draw and records which words were used.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Build-time game constants.
const (
	DefaultRoundBudget    = 10 // Rounds per game
	DefaultScoreIncrement = 20 // Points per correct guess
)

//go:embed words.txt
var defaultWordsTxt string

var (
	// ErrInvalidWord is returned when a vocabulary entry is a duplicate or
	// can never be scrambled into something different from itself.
	ErrInvalidWord = errors.New("words: invalid vocabulary entry")

	// ErrExhaustedPool is returned when every vocabulary word has been used.
	ErrExhaustedPool = errors.New("words: no unused words left")
)

// Vocabulary is an immutable set of distinct lowercase words.
type Vocabulary struct {
	list []string // sorted
	set  map[string]struct{}
}

// NewVocabulary builds a vocabulary from raw entries.
// Entries are trimmed and lowercased, blanks are skipped. Duplicates and
// words with fewer than two distinct letters are rejected.
func NewVocabulary(entries []string) (*Vocabulary, error) {
	v := &Vocabulary{
		list: make([]string, 0, len(entries)),
		set:  make(map[string]struct{}, len(entries)),
	}

	for _, raw := range entries {
		w := strings.ToLower(strings.TrimSpace(raw))
		if w == "" {
			continue
		}
		if _, dup := v.set[w]; dup {
			return nil, fmt.Errorf("%w: duplicate word %q", ErrInvalidWord, w)
		}
		if !Scramblable(w) {
			return nil, fmt.Errorf("%w: %q has fewer than two distinct letters", ErrInvalidWord, w)
		}
		v.set[w] = struct{}{}
		v.list = append(v.list, w)
	}

	sort.Strings(v.list)
	return v, nil
}

// Default returns the embedded default vocabulary.
func Default() *Vocabulary {
	entries, err := Parse(strings.NewReader(defaultWordsTxt))
	if err != nil {
		panic(fmt.Sprintf("words: embedded list unreadable: %v", err))
	}
	v, err := NewVocabulary(entries)
	if err != nil {
		panic(fmt.Sprintf("words: embedded list invalid: %v", err))
	}
	return v
}

// DefaultList returns the embedded default word list as plain strings.
func DefaultList() []string {
	return Default().Words()
}

// Parse reads one word per line. Blank lines and lines starting with '#'
// are ignored.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read list: %w", err)
	}
	return out, nil
}

// Len returns the number of words.
func (v *Vocabulary) Len() int {
	return len(v.list)
}

// Contains reports whether w is in the vocabulary.
func (v *Vocabulary) Contains(w string) bool {
	_, ok := v.set[w]
	return ok
}

// Words returns a sorted copy of the vocabulary.
func (v *Vocabulary) Words() []string {
	out := make([]string, len(v.list))
	copy(out, v.list)
	return out
}
