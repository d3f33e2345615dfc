package diceware

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/antithesishq/xkcdpass/internal/wordlist"
	"go.akshayshah.org/attest"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func TestPick(t *testing.T) {
	list, err := wordlist.New("test", "alpha", "bravo", "charlie", "delta")
	attest.Ok(t, err)
	r := newRand()
	for n := 1; n <= 32; n++ {
		words, err := Pick(r, list, n)
		attest.Ok(t, err)
		attest.Equal(t, len(words), n)
		for _, w := range words {
			attest.True(t, list.Contains(w), attest.Sprintf("%q not in list", w))
		}
	}
}

func TestPickSingleWordList(t *testing.T) {
	list, err := wordlist.New("test", "only")
	attest.Ok(t, err)
	words, err := Pick(newRand(), list, 5)
	attest.Ok(t, err)
	attest.Equal(t, words, []string{"only", "only", "only", "only", "only"})
}

func TestPickAllowsRepeats(t *testing.T) {
	// With two words and many draws, sampling without replacement would be
	// impossible.
	list, err := wordlist.New("test", "heads", "tails")
	attest.Ok(t, err)
	words, err := Pick(newRand(), list, 64)
	attest.Ok(t, err)
	attest.Equal(t, len(words), 64)
}

func TestPickDeterministic(t *testing.T) {
	list, err := wordlist.Builtin(wordlist.Long)
	attest.Ok(t, err)
	a, err := Pick(rand.New(rand.NewPCG(1, 2)), list, 6)
	attest.Ok(t, err)
	b, err := Pick(rand.New(rand.NewPCG(1, 2)), list, 6)
	attest.Ok(t, err)
	attest.Equal(t, a, b)
}

func TestPickErrors(t *testing.T) {
	_, err := Pick(newRand(), nil, 3)
	attest.ErrorIs(t, err, ErrEmptyList)

	list, err := wordlist.New("test", "word")
	attest.Ok(t, err)
	for _, n := range []int{0, -1} {
		_, err := Pick(newRand(), list, n)
		attest.ErrorIs(t, err, ErrBadCount)
	}
}

func TestBits(t *testing.T) {
	attest.Equal(t, Bits(1, 5), 0.0)
	attest.Equal(t, Bits(2, 6), 6.0)
	attest.Equal(t, Bits(1024, 3), 30.0)
	attest.True(t, math.Abs(Bits(7776, 6)-77.548) < 0.001)
	attest.Zero(t, Bits(0, 6))
	attest.Zero(t, Bits(7776, 0))
}

func TestPickIndex(t *testing.T) {
	indices, err := PickIndex(newRand(), 3, 300)
	attest.Ok(t, err)
	attest.Equal(t, len(indices), 300)
	seen := make(map[int]int)
	for _, i := range indices {
		attest.True(t, i >= 0 && i < 3, attest.Sprintf("index %d out of range", i))
		seen[i]++
	}
	attest.Equal(t, len(seen), 3)

	_, err = PickIndex(newRand(), 0, 3)
	attest.ErrorIs(t, err, ErrEmptyList)
	_, err = PickIndex(newRand(), 3, 0)
	attest.ErrorIs(t, err, ErrBadCount)
}

func TestPickMatchesPickIndex(t *testing.T) {
	list, err := wordlist.New("test", "alpha", "bravo", "alpha", "delta")
	attest.Ok(t, err)
	indices, err := PickIndex(rand.New(rand.NewPCG(9, 9)), list.Len(), 16)
	attest.Ok(t, err)
	words, err := Pick(rand.New(rand.NewPCG(9, 9)), list, 16)
	attest.Ok(t, err)
	for i, idx := range indices {
		attest.Equal(t, words[i], list.At(idx))
	}
}
