package translate

// fakeCatalogue is an in-memory Catalogue for pipeline tests. Word lookups
// also cover single-character digit clips, matching the real catalogue
// where a digit clip is indexed under its own name.
type fakeCatalogue struct {
	words  map[string]string
	single map[byte]string
	double map[byte]string
	digits map[byte]string
	zero   string
	pause  string
}

func newFakeCatalogue() *fakeCatalogue {
	return &fakeCatalogue{
		words:  make(map[string]string),
		single: make(map[byte]string),
		double: make(map[byte]string),
		digits: make(map[byte]string),
	}
}

func (f *fakeCatalogue) addWord(token string) *fakeCatalogue {
	f.words[token] = token + ".mp4"
	return f
}

func (f *fakeCatalogue) addSingleLetters(letters string) *fakeCatalogue {
	for i := 0; i < len(letters); i++ {
		f.single[letters[i]] = string(letters[i]) + "(single-handed-letter).mp4"
	}
	return f
}

func (f *fakeCatalogue) addDoubleLetters(letters string) *fakeCatalogue {
	for i := 0; i < len(letters); i++ {
		f.double[letters[i]] = string(letters[i]) + "(double-handed-letter).mp4"
	}
	return f
}

func (f *fakeCatalogue) addDigits(digits string) *fakeCatalogue {
	for i := 0; i < len(digits); i++ {
		f.digits[digits[i]] = string(digits[i]) + ".mp4"
	}
	return f
}

func (f *fakeCatalogue) withZero(path string) *fakeCatalogue {
	f.zero = path
	return f
}

func (f *fakeCatalogue) withPause(path string) *fakeCatalogue {
	f.pause = path
	return f
}

func (f *fakeCatalogue) Word(token string) (string, bool) {
	if path, ok := f.words[token]; ok {
		return path, true
	}
	if len(token) == 1 && token[0] >= '0' && token[0] <= '9' {
		path, ok := f.digits[token[0]]
		return path, ok
	}
	return "", false
}

func (f *fakeCatalogue) SingleHandedLetter(ch byte) (string, bool) {
	path, ok := f.single[ch]
	return path, ok
}

func (f *fakeCatalogue) DoubleHandedLetter(ch byte) (string, bool) {
	path, ok := f.double[ch]
	return path, ok
}

func (f *fakeCatalogue) Digit(ch byte) (string, bool) {
	path, ok := f.digits[ch]
	return path, ok
}

func (f *fakeCatalogue) ZeroFallback() (string, bool) {
	return f.zero, f.zero != ""
}

func (f *fakeCatalogue) Pause() (string, bool) {
	return f.pause, f.pause != ""
}

// fakeVocab is a minimal Vocabulary for tests.
type fakeVocab map[string]struct{}

func newFakeVocab(tokens ...string) fakeVocab {
	v := make(fakeVocab, len(tokens))
	for _, tok := range tokens {
		v[tok] = struct{}{}
	}
	return v
}

func (v fakeVocab) Contains(token string) bool {
	_, ok := v[token]
	return ok
}
