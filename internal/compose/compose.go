// Package compose turns an ordered clip list into one playable video by
// concatenating the clips with ffmpeg. The composer is the only slow and
// failure-prone stage of a translation request, so it runs under a timeout
// and behind a circuit breaker.
package compose

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

// outputPrefix is the artifact naming scheme the /videos route serves.
const outputPrefix = "sign_translation_"

// Config holds composer settings.
type Config struct {
	// OutputDir receives the composed artifacts. Created on demand.
	OutputDir string

	// Timeout bounds one ffmpeg invocation. Zero means DefaultTimeout.
	Timeout time.Duration

	// ConsecutiveFailures opens the breaker after this many failures in a
	// row. Zero means DefaultConsecutiveFailures.
	ConsecutiveFailures uint32
}

// DefaultTimeout bounds a single composition.
const DefaultTimeout = 2 * time.Minute

// DefaultConsecutiveFailures is the breaker trip threshold.
const DefaultConsecutiveFailures = 5

// Composer concatenates clip sequences into single artifacts.
type Composer struct {
	outputDir string
	timeout   time.Duration
	breaker   *gobreaker.CircuitBreaker

	// run executes ffmpeg; replaced in tests.
	run func(ctx context.Context, listFile, outputPath string) error
}

// NewComposer creates a composer writing artifacts into cfg.OutputDir.
func NewComposer(cfg *Config) *Composer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	failures := cfg.ConsecutiveFailures
	if failures == 0 {
		failures = DefaultConsecutiveFailures
	}

	c := &Composer{
		outputDir: cfg.OutputDir,
		timeout:   timeout,
		run:       runFFmpeg,
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "compose",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("composer breaker state change", "from", from.String(), "to", to.String())
		},
	})
	return c
}

// Available returns true if ffmpeg is on the PATH.
func Available() bool {
	_, err := exec.LookPath("ffmpeg")
	return err == nil
}

// Compose concatenates the clips into a uniquely named artifact and
// returns its filename within the output directory. Each call writes to a
// fresh name, so concurrent compositions never collide.
func (c *Composer) Compose(ctx context.Context, clips []string) (string, error) {
	if len(clips) == 0 {
		return "", fmt.Errorf("no clips to compose")
	}
	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := outputPrefix + strings.ReplaceAll(uuid.New().String(), "-", "") + ".mp4"
	outputPath := filepath.Join(c.outputDir, filename)

	listFile, err := writeConcatList(clips)
	if err != nil {
		return "", err
	}
	defer os.Remove(listFile)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	_, err = c.breaker.Execute(func() (interface{}, error) {
		return nil, c.run(ctx, listFile, outputPath)
	})
	if err != nil {
		os.Remove(outputPath)
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return "", fmt.Errorf("composer temporarily unavailable: %w", err)
		}
		return "", fmt.Errorf("composition failed: %w", err)
	}

	slog.Info("composed artifact",
		"file", filename,
		"clips", len(clips),
		"duration", time.Since(start).Round(time.Millisecond))
	return filename, nil
}

// writeConcatList writes the ffmpeg concat demuxer input file.
func writeConcatList(clips []string) (string, error) {
	f, err := os.CreateTemp("", "signbridge_concat_*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create concat list: %w", err)
	}

	var b strings.Builder
	for _, clip := range clips {
		abs, err := filepath.Abs(clip)
		if err != nil {
			abs = clip
		}
		// Single quotes in the path must be escaped for the demuxer.
		escaped := strings.ReplaceAll(abs, "'", `'\''`)
		fmt.Fprintf(&b, "file '%s'\n", escaped)
	}

	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write concat list: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close concat list: %w", err)
	}
	return f.Name(), nil
}

// runFFmpeg concatenates the listed clips, re-encoding without audio.
func runFFmpeg(ctx context.Context, listFile, outputPath string) error {
	cmd := exec.CommandContext(ctx,
		"ffmpeg",
		"-f", "concat",
		"-safe", "0",
		"-i", listFile,
		"-an",
		"-r", "30",
		"-pix_fmt", "yuv420p",
		"-y",
		outputPath,
	)

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg concat failed: %w\n%s", err, string(out))
	}
	return nil
}
