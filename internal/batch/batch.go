// Package batch translates many sentences in one run with bounded
// parallelism and rate limiting.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Result is the outcome of translating one batch line.
type Result struct {
	Line     int
	Text     string
	Artifact string
	Err      error
}

// Options configures a batch run.
type Options struct {
	MaxConcurrent   int
	RateLimitPerMin int
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		MaxConcurrent:   3,
		RateLimitPerMin: 60,
	}
}

// TranslateFunc turns one sentence into a composed artifact name.
type TranslateFunc func(ctx context.Context, text string) (string, error)

// ReadBatchFile reads sentences from a file, one per line. Blank lines
// and lines starting with '#' are ignored.
func ReadBatchFile(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	var sentences []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sentences = append(sentences, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return sentences, nil
}

// Process translates each sentence with bounded parallelism. Failed
// lines are reported in their Result; Process itself only fails when
// the context is cancelled.
func Process(ctx context.Context, sentences []string, translate TranslateFunc, opts Options) ([]Result, error) {
	if opts.MaxConcurrent < 1 {
		opts.MaxConcurrent = 1
	}

	// Rate limiter: tokens per second = RPM / 60.
	var limiter *rate.Limiter
	if opts.RateLimitPerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RateLimitPerMin)/60.0), 1)
	}

	var (
		mu      sync.Mutex
		results []Result
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.MaxConcurrent)

	for i, text := range sentences {
		g.Go(func() error {
			if limiter != nil {
				if err := limiter.Wait(gctx); err != nil {
					return fmt.Errorf("rate limiter: %w", err)
				}
			}

			artifact, err := translate(gctx, text)

			mu.Lock()
			results = append(results, Result{
				Line:     i + 1,
				Text:     text,
				Artifact: artifact,
				Err:      err,
			})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(a, b int) bool { return results[a].Line < results[b].Line })
	return results, nil
}

// Summary counts successes and failures in a result set.
func Summary(results []Result) (succeeded, failed int) {
	for _, r := range results {
		if r.Err != nil {
			failed++
		} else {
			succeeded++
		}
	}
	return succeeded, failed
}
