// Package translate implements the text-to-sign resolution pipeline:
// token normalization, greedy longest-phrase matching against the
// vocabulary, letter/digit fallback spelling, and assembly of the ordered
// clip plan with word-separator pauses.
package translate
