// Package catalogue indexes the on-disk clip library. Clips are addressed
// by normalized token text: whole words and phrases by their own name,
// letters by the dataset's "x(single-handed-letter)" / "x(double-handed-letter)"
// naming, digits by the digit itself. The index is built once by scanning
// the assets directory and never mutated afterwards.
package catalogue

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// clipExtension is the only media type the clip library uses.
const clipExtension = ".mp4"

// Reserved clip names inside the assets directory.
const (
	pauseClipName = "pause"
	zeroClipName  = "0"
)

// Config holds catalogue construction options.
type Config struct {
	// AssetsDir is the directory scanned for clips.
	AssetsDir string

	// PausePath overrides the pause clip location. Defaults to
	// "Pause.mp4" inside AssetsDir; if neither exists, pauses are disabled.
	PausePath string

	// DisablePause leaves the pause clip unset even when one exists.
	DisablePause bool

	// ZeroFallbackPath overrides the fallback clip used for the digit "0"
	// when the catalogue has no dedicated entry. Defaults to "0.mp4"
	// inside AssetsDir.
	ZeroFallbackPath string
}

// Catalogue maps normalized token text to clip file paths.
type Catalogue struct {
	clips map[string]string
	pause string
	zero  string
}

// Load scans the assets directory and builds the clip index.
func Load(cfg *Config) (*Catalogue, error) {
	if cfg == nil || cfg.AssetsDir == "" {
		return nil, fmt.Errorf("assets directory is required")
	}
	if _, err := os.Stat(cfg.AssetsDir); err != nil {
		return nil, fmt.Errorf("assets directory not accessible: %w", err)
	}

	clips := make(map[string]string)
	err := filepath.WalkDir(cfg.AssetsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), clipExtension) {
			return nil
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		token := strings.ToLower(strings.TrimSpace(name))
		if token == "" {
			return nil
		}
		// First clip wins for duplicate names in nested directories.
		if _, exists := clips[token]; !exists {
			clips[token] = path
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan assets directory: %w", err)
	}

	c := &Catalogue{clips: clips}

	if !cfg.DisablePause {
		c.pause = cfg.PausePath
		if c.pause == "" {
			c.pause = clips[pauseClipName]
		}
		if c.pause != "" {
			if _, err := os.Stat(c.pause); err != nil {
				c.pause = ""
			}
		}
	}

	c.zero = cfg.ZeroFallbackPath
	if c.zero == "" {
		c.zero = clips[zeroClipName]
	}
	if c.zero != "" {
		if _, err := os.Stat(c.zero); err != nil {
			c.zero = ""
		}
	}

	return c, nil
}

// Word looks up the clip for a whole word or phrase.
func (c *Catalogue) Word(token string) (string, bool) {
	path, ok := c.clips[token]
	return path, ok
}

// SingleHandedLetter looks up the single-handed clip for a letter.
func (c *Catalogue) SingleHandedLetter(ch byte) (string, bool) {
	return c.Word(fmt.Sprintf("%c(single-handed-letter)", ch))
}

// DoubleHandedLetter looks up the double-handed clip for a letter.
func (c *Catalogue) DoubleHandedLetter(ch byte) (string, bool) {
	return c.Word(fmt.Sprintf("%c(double-handed-letter)", ch))
}

// Digit looks up the clip for a single digit character.
func (c *Catalogue) Digit(ch byte) (string, bool) {
	return c.Word(string(ch))
}

// Pause returns the word-separator pause clip. ok is false when no pause
// clip is configured, which disables pause insertion entirely.
func (c *Catalogue) Pause() (string, bool) {
	return c.pause, c.pause != ""
}

// ZeroFallback returns the designated substitute clip for the digit "0".
func (c *Catalogue) ZeroFallback() (string, bool) {
	return c.zero, c.zero != ""
}

// Len returns the number of indexed clips.
func (c *Catalogue) Len() int {
	return len(c.clips)
}
