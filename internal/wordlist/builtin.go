package wordlist

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/sethvargo/go-diceware/diceware"
)

// ErrUnknownList is returned by Builtin for names it doesn't recognize.
var ErrUnknownList = errors.New("unknown word list")

// Names of the built-in lists.
const (
	Long     = "long"
	Short1   = "short1"
	Short2   = "short2"
	Original = "original"
)

const prefixLen = 3

var longList = sync.OnceValues(func() (*List, error) {
	return fromDice(Long, diceware.WordListEffLarge())
})

var builtins = map[string]func() (*List, error){
	Long:     longList,
	Short1:   sync.OnceValues(func() (*List, error) { return fromDice(Short1, diceware.WordListEffSmall()) }),
	Short2:   sync.OnceValues(loadShort2),
	Original: sync.OnceValues(func() (*List, error) { return fromDice(Original, diceware.WordListOriginal()) }),
}

var descriptions = map[string]string{
	Long:     "EFF large word list",
	Short1:   "EFF short word list #1",
	Short2:   "unique three-character prefixes, derived from the long list (not EFF short list #2)",
	Original: "Reinhold's original diceware list",
}

// Describe returns a one-line description of a built-in list's source, or ""
// for unknown names.
func Describe(name string) string {
	return descriptions[name]
}

// Names returns the built-in list names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Builtin returns the named built-in list. The lists are compiled into the
// binary; nothing is fetched at runtime.
func Builtin(name string) (*List, error) {
	load, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownList)
	}
	return load()
}

// fromDice flattens a dice-indexed table into roll order: 11111, 11112, ...,
// 66666 for a five-dice list.
func fromDice(name string, wl diceware.WordList) (*List, error) {
	digits := wl.Digits()
	total := 1
	for range digits {
		total *= 6
	}
	words := make([]string, 0, total)
	for n := range total {
		key, place := 0, total
		for range digits {
			place /= 6
			key = key*10 + (n/place)%6 + 1
		}
		words = append(words, wl.WordAt(key))
	}
	return New(name, words...)
}

// loadShort2 keeps the first long-list word for each distinct three-character
// prefix, so any word can be identified by its first three characters.
func loadShort2() (*List, error) {
	long, err := longList()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var words []string
	for _, w := range long.words {
		r := []rune(w)
		if len(r) < prefixLen {
			continue
		}
		p := string(r[:prefixLen])
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		words = append(words, w)
	}
	return New(Short2, words...)
}
