package translate

// Resolve runs the full pipeline over raw text and assembles the plan.
//
// The returned plan is always non-nil and its word lists always account
// for every normalized token, even when an error is returned: ErrNoInput
// when cleaning leaves no tokens, ErrNoTranslatableContent when every
// token was skipped.
func (r *Resolver) Resolve(text string) (*Plan, error) {
	plan := &Plan{
		TranslatedWords: []string{},
		SkippedWords:    []string{},
	}

	tokens := NormalizeText(text)
	if len(tokens) == 0 {
		return plan, ErrNoInput
	}

	var units []ResolutionUnit
	for i := 0; i < len(tokens); {
		unit, consumed := r.resolveAt(tokens, i)
		units = append(units, unit)
		i += consumed
	}

	pause, usePause := r.catalogue.Pause()
	for _, unit := range units {
		switch unit.Kind {
		case UnitSkipped:
			plan.SkippedWords = append(plan.SkippedWords, unit.Surface)
		case UnitWholeMatch, UnitLetterFallback, UnitDigitFallback:
			// Pause separates consecutive resolved units; never inside a
			// spelled word and never at the ends of the plan.
			if usePause && len(plan.Assets) > 0 {
				plan.Assets = append(plan.Assets, pause)
			}
			plan.Assets = append(plan.Assets, unit.Assets...)
			plan.TranslatedWords = append(plan.TranslatedWords, unit.Surface)
		}
	}

	if len(plan.TranslatedWords) == 0 {
		return plan, ErrNoTranslatableContent
	}
	return plan, nil
}
