package translate

import (
	"strings"
	"unicode"
)

// NormalizeText splits raw text on whitespace and cleans each word.
// Words that become empty after cleaning are dropped.
func NormalizeText(text string) []string {
	var tokens []string
	for _, word := range strings.Fields(text) {
		if tok := CleanToken(word); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// CleanToken lowercases a word and strips every character that is not a
// letter, digit, space, underscore, or hyphen. Idempotent: cleaning an
// already-clean token is a no-op.
func CleanToken(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	var b strings.Builder
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
