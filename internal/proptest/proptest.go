// Package proptest provides statistical property checks for passphrase
// generation. The same checks back the unit tests and the check subcommand.
package proptest

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/antithesishq/xkcdpass/internal/casing"
	"github.com/antithesishq/xkcdpass/internal/diceware"
	"github.com/antithesishq/xkcdpass/internal/wordlist"
)

// DefaultZ is the standard normal quantile used for the critical value. 3.09
// corresponds to a significance level of roughly 0.001, so a correct
// generator fails about once in a thousand runs.
const DefaultZ = 3.09

// Error is returned from CheckUniform when the observed word frequencies are
// too far from uniform.
type Error struct {
	List     string
	Stat     float64
	Critical float64
	DF       int
}

// Error implements error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: distribution not uniform: chi-square %.1f exceeds %.1f (df %d)",
		e.List, e.Stat, e.Critical, e.DF)
}

// Histogram draws trials indices from list and counts how often each position
// is chosen. Repeated words are counted per position.
func Histogram(r *rand.Rand, list *wordlist.List, trials int) ([]int, error) {
	indices, err := diceware.PickIndex(r, list.Len(), trials)
	if err != nil {
		return nil, err
	}
	counts := make([]int, list.Len())
	for _, i := range indices {
		counts[i]++
	}
	return counts, nil
}

// ChiSquare computes Pearson's statistic for counts against a uniform
// expectation, along with its degrees of freedom.
func ChiSquare(counts []int) (float64, int) {
	if len(counts) < 2 {
		return 0, 0
	}
	var total float64
	for _, c := range counts {
		total += float64(c)
	}
	expected := total / float64(len(counts))
	if expected == 0 {
		return 0, len(counts) - 1
	}
	var stat float64
	for _, c := range counts {
		d := float64(c) - expected
		stat += d * d / expected
	}
	return stat, len(counts) - 1
}

// CriticalValue approximates the upper quantile of the chi-square
// distribution with df degrees of freedom using the Wilson-Hilferty
// transformation, where z is the matching standard normal quantile.
func CriticalValue(df int, z float64) float64 {
	if df < 1 {
		return 0
	}
	k := float64(df)
	v := 2 / (9 * k)
	return k * math.Pow(1-v+z*math.Sqrt(v), 3)
}

// CheckUniform draws trials words from list and verifies, with a chi-square
// goodness-of-fit test, that selection is uniform over the list. For a
// meaningful result, trials should be at least five times the list length.
func CheckUniform(r *rand.Rand, list *wordlist.List, trials int) error {
	counts, err := Histogram(r, list, trials)
	if err != nil {
		return err
	}
	stat, df := ChiSquare(counts)
	critical := CriticalValue(df, DefaultZ)
	if stat > critical {
		return &Error{List: list.Name(), Stat: stat, Critical: critical, DF: df}
	}
	return nil
}

// CheckMixedCase transforms trials words in mixed mode and verifies that
// upper, lower, and capitalized forms are chosen equally often.
func CheckMixedCase(r *rand.Rand, trials int) error {
	const probe = "probe"
	words := make([]string, trials)
	for i := range words {
		words[i] = probe
	}
	mixed, err := casing.Apply(r, casing.Mixed, words)
	if err != nil {
		return err
	}
	forms := map[string]int{"PROBE": 0, "probe": 1, "Probe": 2}
	counts := make([]int, len(forms))
	for _, w := range mixed {
		i, ok := forms[w]
		if !ok {
			return fmt.Errorf("unexpected mixed case form %q", w)
		}
		counts[i]++
	}
	stat, df := ChiSquare(counts)
	critical := CriticalValue(df, DefaultZ)
	if stat > critical {
		return &Error{List: "mixed case", Stat: stat, Critical: critical, DF: df}
	}
	return nil
}
