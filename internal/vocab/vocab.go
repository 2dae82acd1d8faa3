// Package vocab holds the supported-token vocabulary the matcher consults.
// The store is loaded once at startup from a plain text file and is
// read-only afterwards, so it is safe for any number of concurrent readers.
package vocab

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Store is an immutable set of supported tokens and phrases.
type Store struct {
	tokens map[string]struct{}
}

// Load reads a vocabulary file with one token or phrase per line.
// Lines are trimmed and lowercased; blank lines are ignored.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file: %w", err)
	}
	defer f.Close()

	tokens := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line != "" {
			tokens[line] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	return &Store{tokens: tokens}, nil
}

// NewStore builds a store from an in-memory token list. Used by tests and
// by callers that assemble a vocabulary programmatically.
func NewStore(tokens []string) *Store {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			set[tok] = struct{}{}
		}
	}
	return &Store{tokens: set}
}

// Contains reports whether the store knows the given normalized token.
func (s *Store) Contains(token string) bool {
	_, ok := s.tokens[token]
	return ok
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	return len(s.tokens)
}
