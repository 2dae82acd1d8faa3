package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateAssetDir builds a temporary clip directory containing empty .mp4
// files named after the given tokens. Letter and digit clips follow the
// dataset naming used by the catalogue.
func CreateAssetDir(t *testing.T, words []string, singleLetters, doubleLetters, digits string) string {
	t.Helper()

	dir := t.TempDir()
	write := func(name string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name+".mp4"), []byte("clip"), 0644); err != nil {
			t.Fatalf("Failed to write clip %s: %v", name, err)
		}
	}

	for _, w := range words {
		write(w)
	}
	for i := 0; i < len(singleLetters); i++ {
		write(string(singleLetters[i]) + "(single-handed-letter)")
	}
	for i := 0; i < len(doubleLetters); i++ {
		write(string(doubleLetters[i]) + "(double-handed-letter)")
	}
	for i := 0; i < len(digits); i++ {
		write(string(digits[i]))
	}

	return dir
}

// CreateVocabFile writes a vocabulary file with one entry per line.
func CreateVocabFile(t *testing.T, entries []string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "supported_words.txt")
	content := strings.Join(entries, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write vocabulary file: %v", err)
	}
	return path
}
