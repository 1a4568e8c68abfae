package words

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// maxShuffleAttempts bounds re-sampling in Scramble before falling back
// to a rotation.
var maxShuffleAttempts = 64

// ErrUnscramblable is returned by Scramble for words whose every
// permutation equals the word itself.
var ErrUnscramblable = errors.New("words: word cannot be scrambled")

// PickUnused selects uniformly at random from the vocabulary words not in used.
// used is never modified; the caller records the pick.
func PickUnused(rng *rand.Rand, v *Vocabulary, used map[string]struct{}) (string, error) {
	candidates := make([]string, 0, v.Len())
	for _, w := range v.list {
		if _, ok := used[w]; !ok {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return "", ErrExhaustedPool
	}
	return candidates[rng.Intn(len(candidates))], nil
}

// Scramble returns a uniformly random permutation of word's letters that
// differs from word. If re-sampling keeps reproducing the original, the
// letters are rotated left by one instead.
func Scramble(rng *rand.Rand, word string) (string, error) {
	if !Scramblable(word) {
		return "", fmt.Errorf("%w: %q", ErrUnscramblable, word)
	}

	letters := []rune(word)
	for range maxShuffleAttempts {
		rng.Shuffle(len(letters), func(i, j int) {
			letters[i], letters[j] = letters[j], letters[i]
		})
		if s := string(letters); s != word {
			return s, nil
		}
	}

	// Rotation of a word with two or more distinct letters never
	// reproduces it.
	letters = []rune(word)
	return string(append(letters[1:], letters[0])), nil
}

// Scramblable reports whether word has at least two distinct letters.
func Scramblable(word string) bool {
	var first rune
	for i, r := range word {
		if i == 0 {
			first = r
			continue
		}
		if r != first {
			return true
		}
	}
	return false
}

// IsAnagram reports whether a and b contain exactly the same letters.
func IsAnagram(a, b string) bool {
	return sortedRunes(a) == sortedRunes(b)
}

func sortedRunes(s string) string {
	r := []rune(s)
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
	return string(r)
}
