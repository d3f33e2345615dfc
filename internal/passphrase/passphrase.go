// Package passphrase assembles xkcd-style passphrases: it loads a word list,
// picks words, changes their case, and joins them.
package passphrase

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/antithesishq/xkcdpass/internal/casing"
	"github.com/antithesishq/xkcdpass/internal/diceware"
	"github.com/antithesishq/xkcdpass/internal/wordlist"
)

// Defaults for Config fields.
const (
	DefaultList      = wordlist.Long
	DefaultCase      = casing.Lower
	DefaultNumber    = 6
	DefaultSeparator = " "
)

// Config describes one passphrase. File, if set, takes precedence over List.
type Config struct {
	List      string
	File      string
	Case      casing.Mode
	Number    int
	Separator string
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() Config {
	return Config{
		List:      DefaultList,
		Case:      DefaultCase,
		Number:    DefaultNumber,
		Separator: DefaultSeparator,
	}
}

// ConfigError is returned when a Config is invalid.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
	Err    error
}

// Error implements error.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %v: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns the underlying error, if any.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Validate checks the Config without loading any files.
func (c Config) Validate() error {
	if err := c.validateShape(); err != nil {
		return err
	}
	if c.File == "" {
		if _, err := wordlist.Builtin(c.List); errors.Is(err, wordlist.ErrUnknownList) {
			return &ConfigError{Field: "list", Value: c.List, Err: wordlist.ErrUnknownList}
		}
	}
	return nil
}

// validateShape checks the fields that don't depend on a word list.
func (c Config) validateShape() error {
	if c.Number < 1 {
		return &ConfigError{Field: "number", Value: c.Number, Reason: "must be at least 1"}
	}
	if !c.Case.Valid() {
		return &ConfigError{Field: "case", Value: c.Case, Err: &casing.UnknownModeError{Mode: c.Case}}
	}
	return nil
}

// LoadList resolves the Config's word list.
func (c Config) LoadList() (*wordlist.List, error) {
	if c.File != "" {
		return wordlist.Load(c.File)
	}
	return wordlist.Builtin(c.List)
}

// Passphrase is a generated passphrase.
type Passphrase struct {
	Words     []string
	Separator string
	// ListLen is the length of the list the words were drawn from.
	ListLen int
	Case    casing.Mode
}

// String joins the words with the separator.
func (p *Passphrase) String() string {
	return Join(p.Words, p.Separator)
}

// Entropy returns the bits contributed by word selection alone.
func (p *Passphrase) Entropy() float64 {
	return diceware.Bits(p.ListLen, len(p.Words))
}

// EntropyWithCase adds the bits contributed by mixed casing, if any.
func (p *Passphrase) EntropyWithCase() float64 {
	bits := p.Entropy()
	if p.Case == casing.Mixed {
		bits += math.Log2(3) * float64(len(p.Words))
	}
	return bits
}

// Join concatenates words with sep between each pair. sep may be empty.
func Join(words []string, sep string) string {
	return strings.Join(words, sep)
}

// Generate builds a passphrase from cfg, drawing all randomness from r. The
// config is validated before r is used.
func Generate(r *rand.Rand, cfg Config) (*Passphrase, error) {
	return NewGenerator(r, slog.New(slog.DiscardHandler)).Generate(cfg)
}

// FromList builds a passphrase from an already-loaded list. cfg.List and
// cfg.File are ignored.
func FromList(r *rand.Rand, list *wordlist.List, cfg Config) (*Passphrase, error) {
	if err := cfg.validateShape(); err != nil {
		return nil, err
	}
	picked, err := diceware.Pick(r, list, cfg.Number)
	if err != nil {
		return nil, fmt.Errorf("pick words: %w", err)
	}
	words, err := casing.Apply(r, cfg.Case, picked)
	if err != nil {
		return nil, &ConfigError{Field: "case", Value: cfg.Case, Err: err}
	}
	return &Passphrase{
		Words:     words,
		Separator: cfg.Separator,
		ListLen:   list.Len(),
		Case:      cfg.Case,
	}, nil
}

// Generator generates passphrases from a shared random source, logging each
// step.
//
// Generators are not safe for concurrent use.
type Generator struct {
	rand   *rand.Rand
	logger *slog.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(r *rand.Rand, logger *slog.Logger) *Generator {
	return &Generator{rand: r, logger: logger}
}

// Generate validates cfg, loads its list, and builds a passphrase.
func (g *Generator) Generate(cfg Config) (*Passphrase, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	list, err := cfg.LoadList()
	if err != nil {
		return nil, err
	}
	g.logger.Debug("loaded word list", "list", list.Name(), "words", list.Len())
	p, err := FromList(g.rand, list, cfg)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("generated passphrase",
		"words", len(p.Words),
		"case", p.Case,
		"bits", p.EntropyWithCase(),
	)
	return p, nil
}
