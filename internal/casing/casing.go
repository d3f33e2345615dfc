// Package casing provides the letter-case transformations applied to picked
// words.
package casing

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/antithesishq/antithesis-sdk-go/assert"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A Mode is a case transformation. The set of modes is closed.
type Mode string

const (
	Upper       Mode = "upper"
	Lower       Mode = "lower"
	Capitalized Mode = "capitalized"
	// Mixed picks one of Upper, Lower, or Capitalized for each word.
	Mixed Mode = "mixed"
)

// Modes returns every supported Mode.
func Modes() []Mode {
	return []Mode{Upper, Lower, Capitalized, Mixed}
}

// UnknownModeError is returned for modes outside the supported set.
type UnknownModeError struct {
	Mode Mode
}

// Error implements error.
func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("unknown case %q", string(e.Mode))
}

// Parse converts user input into a Mode, ignoring letter case.
func Parse(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", &UnknownModeError{Mode: Mode(s)}
	}
	return m, nil
}

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool {
	switch m {
	case Upper, Lower, Capitalized, Mixed:
		return true
	}
	return false
}

// String implements Stringer.
func (m Mode) String() string {
	return string(m)
}

// Apply transforms each word according to mode, returning a new slice of the
// same length and order. Only Mixed reads from r.
func Apply(r *rand.Rand, mode Mode, words []string) ([]string, error) {
	if !mode.Valid() {
		assert.Unreachable("Unexpected case mode", map[string]any{"mode": mode})
		return nil, &UnknownModeError{Mode: mode}
	}
	out := make([]string, len(words))
	fixed := []Mode{Upper, Lower, Capitalized}
	for i, w := range words {
		m := mode
		if m == Mixed {
			m = fixed[r.IntN(len(fixed))]
		}
		switch m {
		case Upper:
			out[i] = upper(w)
		case Lower:
			out[i] = lower(w)
		case Capitalized:
			out[i] = capitalize(w)
		default:
			assert.Unreachable("Unexpected case mode", map[string]any{"mode": mode})
			return nil, &UnknownModeError{Mode: mode}
		}
	}
	return out, nil
}

// cases.Caser values are stateful, so each call gets a fresh one.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// capitalize upper-cases the first rune and lower-cases the rest. Unlike
// cases.Title, it doesn't start a new word after hyphens or apostrophes.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return upper(s[:size]) + lower(s[size:])
}
