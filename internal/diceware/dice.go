// Package diceware draws memorable-but-random words from a word list.
package diceware

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/antithesishq/antithesis-sdk-go/assert"
	"github.com/antithesishq/xkcdpass/internal/wordlist"
)

var (
	// ErrEmptyList is returned when there are no words to draw from. Loaded
	// lists are never empty, so callers should treat it as an internal error.
	ErrEmptyList = errors.New("word list is empty")
	// ErrBadCount is returned when fewer than one word is requested.
	ErrBadCount = errors.New("word count must be positive")
)

// Pick draws n words from list. Each draw is independent and uniform over the
// whole list, so the same word may appear more than once.
//
// r.IntN rejects out-of-range samples instead of reducing modulo the list
// length, so no index is favored.
func Pick(r *rand.Rand, list *wordlist.List, n int) ([]string, error) {
	indices, err := PickIndex(r, list.Len(), n)
	if err != nil {
		return nil, err
	}
	words := make([]string, n)
	for i, idx := range indices {
		words[i] = list.At(idx)
		assert.Always(list.Contains(words[i]), "Picked word is in the word list", map[string]any{
			"list": list.Name(),
			"word": words[i],
		})
	}
	return words, nil
}

// PickIndex draws n independent, uniform indices in [0, length).
func PickIndex(r *rand.Rand, length, n int) ([]int, error) {
	if length < 1 {
		return nil, ErrEmptyList
	}
	if n < 1 {
		return nil, ErrBadCount
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = r.IntN(length)
	}
	return indices, nil
}

// Bits returns the entropy of n independent draws from a list of the given
// length: log2(length) bits per word.
func Bits(length, n int) float64 {
	if length < 1 || n < 1 {
		return 0
	}
	return math.Log2(float64(length)) * float64(n)
}
