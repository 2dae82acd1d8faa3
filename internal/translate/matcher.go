package translate

import "strings"

// maxPhraseLen caps vocabulary phrases at three words. Longer joins are
// never attempted; the longest supported phrase always wins.
const maxPhraseLen = 3

// Resolver runs the resolution pipeline against an immutable vocabulary
// and clip catalogue. It holds no per-request state and is safe for
// concurrent use.
type Resolver struct {
	vocab     Vocabulary
	catalogue Catalogue
}

// NewResolver creates a resolver over the given vocabulary and catalogue.
func NewResolver(v Vocabulary, c Catalogue) *Resolver {
	return &Resolver{vocab: v, catalogue: c}
}

// matchPhrase finds the longest supported phrase starting at token i,
// trying 3-, then 2-, then 1-token joins. It returns the matched surface
// phrase and how many tokens it spans, or consumed == 0 on a miss.
func (r *Resolver) matchPhrase(tokens []string, i int) (phrase string, consumed int) {
	for size := maxPhraseLen; size >= 1; size-- {
		if i+size > len(tokens) {
			continue
		}
		candidate := strings.Join(tokens[i:i+size], " ")
		if r.vocab.Contains(candidate) {
			return candidate, size
		}
	}
	return "", 0
}

// resolveAt resolves the token sequence at cursor position i into one unit
// and reports how many tokens were consumed (always >= 1).
func (r *Resolver) resolveAt(tokens []string, i int) (ResolutionUnit, int) {
	// Longest supported phrase first. A vocabulary hit whose clip is
	// missing falls through to the single-token tiers below rather than
	// retrying shorter phrases.
	if phrase, size := r.matchPhrase(tokens, i); size > 0 {
		if clip, ok := r.catalogue.Word(phrase); ok {
			return ResolutionUnit{
				Kind:    UnitWholeMatch,
				Surface: phrase,
				Assets:  []string{clip},
			}, size
		}
	}

	word := tokens[i]

	// Multi-digit numbers are decomposed digit by digit.
	if len(word) > 1 && isAllDigits(word) {
		return r.spellDigits(word), 1
	}

	// A word may have its own clip even when the vocabulary list does not
	// mention it.
	if clip, ok := r.catalogue.Word(word); ok {
		return ResolutionUnit{
			Kind:    UnitWholeMatch,
			Surface: word,
			Assets:  []string{clip},
		}, 1
	}

	return r.spellWord(word), 1
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
