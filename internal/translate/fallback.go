package translate

// spellDigits decomposes a multi-digit number into per-digit clips.
// The whole token is skipped if any digit other than "0" has no clip;
// "0" substitutes the designated fallback clip when its own is missing.
func (r *Resolver) spellDigits(word string) ResolutionUnit {
	assets, ok := r.spell(word)
	if !ok {
		return ResolutionUnit{Kind: UnitSkipped, Surface: word}
	}
	return ResolutionUnit{Kind: UnitDigitFallback, Surface: word, Assets: assets}
}

// spellWord spells an unmatched word character by character. Letters
// prefer the single-handed clip and fall back to the double-handed one;
// digits use the digit lookup. Any character outside [a-z0-9], or any
// character without a clip at every tier, skips the whole token.
func (r *Resolver) spellWord(word string) ResolutionUnit {
	assets, ok := r.spell(word)
	if !ok {
		return ResolutionUnit{Kind: UnitSkipped, Surface: word}
	}
	return ResolutionUnit{Kind: UnitLetterFallback, Surface: word, Assets: assets}
}

// spell resolves each character of word to a clip, all-or-nothing.
func (r *Resolver) spell(word string) ([]string, bool) {
	var assets []string
	for i := 0; i < len(word); i++ {
		ch := word[i]
		switch {
		case ch >= '0' && ch <= '9':
			clip, ok := r.catalogue.Digit(ch)
			if !ok && ch == '0' {
				clip, ok = r.catalogue.ZeroFallback()
			}
			if !ok {
				return nil, false
			}
			assets = append(assets, clip)

		case ch >= 'a' && ch <= 'z':
			clip, ok := r.catalogue.SingleHandedLetter(ch)
			if !ok {
				clip, ok = r.catalogue.DoubleHandedLetter(ch)
			}
			if !ok {
				return nil, false
			}
			assets = append(assets, clip)

		default:
			// Multi-byte runes and punctuation survivors ('-', '_')
			// disqualify the token entirely.
			return nil, false
		}
	}
	return assets, len(assets) > 0
}
