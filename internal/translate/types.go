package translate

import "errors"

// Vocabulary is the read-only supported-token set the matcher consults.
type Vocabulary interface {
	Contains(token string) bool
}

// Catalogue resolves normalized token text to clip assets. Every lookup is
// an expected-miss operation and reports ok instead of returning an error.
type Catalogue interface {
	Word(token string) (string, bool)
	SingleHandedLetter(ch byte) (string, bool)
	DoubleHandedLetter(ch byte) (string, bool)
	Digit(ch byte) (string, bool)
	ZeroFallback() (string, bool)
	Pause() (string, bool)
}

// UnitKind identifies how a token or phrase was resolved.
type UnitKind int

const (
	// UnitWholeMatch is a word or phrase resolved to its own clip.
	UnitWholeMatch UnitKind = iota

	// UnitLetterFallback is a word spelled out letter by letter.
	UnitLetterFallback

	// UnitDigitFallback is a multi-digit number decomposed per digit.
	UnitDigitFallback

	// UnitSkipped is a token that could not be resolved at any tier.
	UnitSkipped
)

// ResolutionUnit is the outcome of resolving one word or phrase. A skipped
// unit carries no assets.
type ResolutionUnit struct {
	Kind    UnitKind
	Surface string
	Assets  []string
}

// Plan is the assembled translation for one request: the ordered clip
// sequence (including inserted pauses) plus the per-word accounting lists.
// Both word lists are always non-nil so callers can marshal them directly.
type Plan struct {
	Assets          []string
	TranslatedWords []string
	SkippedWords    []string
}

// ErrNoInput indicates the normalized input contained no tokens.
var ErrNoInput = errors.New("nothing to translate")

// ErrNoTranslatableContent indicates every token was skipped. The plan
// returned alongside this error still carries the skipped-word list.
var ErrNoTranslatableContent = errors.New("no translatable words found")
