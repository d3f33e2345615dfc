// Package wordlist loads the word lists that passphrases are drawn from.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoWords is wrapped by LoadError when a list has no usable words.
var ErrNoWords = errors.New("no words")

// LoadError is returned when a custom word list can't be read or is empty
// after blank lines are dropped.
type LoadError struct {
	Path string
	Err  error
}

// Error implements error.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load word list %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// List is an immutable, ordered word list. Every word is non-empty.
type List struct {
	name  string
	words []string
	index map[string]struct{}
}

// New constructs a List from words, dropping empty entries. It returns an
// error wrapping ErrNoWords if nothing is left.
func New(name string, words ...string) (*List, error) {
	kept := make([]string, 0, len(words))
	index := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		kept = append(kept, w)
		index[w] = struct{}{}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoWords)
	}
	return &List{name: name, words: kept, index: index}, nil
}

// Name identifies the list: a built-in name or a file path.
func (l *List) Name() string {
	return l.name
}

// Len returns the number of words in the list.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

// At returns the i'th word.
func (l *List) At(i int) string {
	return l.words[i]
}

// Contains reports whether word is in the list, compared verbatim.
func (l *List) Contains(word string) bool {
	_, ok := l.index[word]
	return ok
}

// Words returns the list's words in order. It's safe for the caller to mutate
// the returned slice.
func (l *List) Words() []string {
	return append([]string(nil), l.words...)
}

// Load reads a custom word list from a file: one word per line, surrounding
// whitespace trimmed, blank lines ignored.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	return Parse(path, f)
}

// Parse reads a word list from r using the same rules as Load. Failures are
// reported as *LoadError with name as the path.
func Parse(name string, r io.Reader) (*List, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	if len(words) == 0 {
		return nil, &LoadError{Path: name, Err: ErrNoWords}
	}
	return New(name, words...)
}
