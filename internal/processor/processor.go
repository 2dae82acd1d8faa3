package processor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/silentspeaker/signbridge/internal"
	"github.com/silentspeaker/signbridge/internal/batch"
	"github.com/silentspeaker/signbridge/internal/catalogue"
	"github.com/silentspeaker/signbridge/internal/cli"
	"github.com/silentspeaker/signbridge/internal/compose"
	"github.com/silentspeaker/signbridge/internal/history"
	"github.com/silentspeaker/signbridge/internal/observe"
	"github.com/silentspeaker/signbridge/internal/server"
	"github.com/silentspeaker/signbridge/internal/transcribe"
	"github.com/silentspeaker/signbridge/internal/translate"
	"github.com/silentspeaker/signbridge/internal/vocab"
)

// Processor handles the main translation logic
type Processor struct {
	flags    *cli.Flags
	resolver *translate.Resolver
	composer server.Composer
	history  *history.Store
}

// NewProcessor loads the vocabulary and clip catalogue and builds a
// ready-to-use processor. Call Close when done.
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	store, err := vocab.Load(flags.VocabFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}

	cat, err := catalogue.Load(&catalogue.Config{
		AssetsDir:    flags.AssetsDir,
		DisablePause: flags.NoPause,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load clip catalogue: %w", err)
	}
	if cat.Len() == 0 {
		return nil, fmt.Errorf("no clips found in %s", flags.AssetsDir)
	}

	p := &Processor{
		flags:    flags,
		resolver: translate.NewResolver(store, cat),
	}

	if !flags.SkipCompose {
		if !compose.Available() {
			return nil, fmt.Errorf("ffmpeg not found in PATH (use --skip-compose to resolve clips only)")
		}
		p.composer = compose.NewComposer(&compose.Config{
			OutputDir: flags.OutputDir,
			Timeout:   flags.ComposeTimeout,
		})
	}

	if flags.HistoryDB != "" {
		hist, err := history.Open(flags.HistoryDB)
		if err != nil {
			return nil, fmt.Errorf("failed to open history database: %w", err)
		}
		p.history = hist
	}

	return p, nil
}

// Close releases the history database, if any.
func (p *Processor) Close() error {
	if p.history != nil {
		return p.history.Close()
	}
	return nil
}

// TranslateText translates a single sentence and prints the outcome.
func (p *Processor) TranslateText(ctx context.Context, text string) error {
	fmt.Printf("Translating: %s\n", text)

	artifact, plan, err := p.translate(ctx, text)
	if plan != nil {
		printPlan(plan)
	}
	if err != nil {
		return err
	}

	if artifact != "" {
		fmt.Printf("Composed video: %s\n", artifact)
	}
	return nil
}

// translate resolves one sentence and composes its artifact. The plan is
// returned even on failure so callers can report what was skipped.
func (p *Processor) translate(ctx context.Context, text string) (string, *translate.Plan, error) {
	plan, err := p.resolver.Resolve(text)
	if err != nil {
		return "", plan, err
	}

	if p.composer == nil {
		return "", plan, nil
	}

	artifact, err := p.composer.Compose(ctx, plan.Assets)
	if err != nil {
		p.record(text, plan, "")
		return "", plan, fmt.Errorf("failed to compose video: %w", err)
	}

	p.record(text, plan, artifact)
	return artifact, plan, nil
}

// record persists a translation outcome; failures only warn.
func (p *Processor) record(text string, plan *translate.Plan, artifact string) {
	if p.history == nil {
		return
	}
	rec := &history.Record{
		InputText:      text,
		NormalizedText: strings.Join(translate.NormalizeText(text), " "),
		Translated:     plan.TranslatedWords,
		Skipped:        plan.SkippedWords,
		Artifact:       artifact,
	}
	if err := p.history.Add(rec); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record history: %v\n", err)
	}
}

func printPlan(plan *translate.Plan) {
	if len(plan.TranslatedWords) > 0 {
		fmt.Printf("  Translated: %s\n", strings.Join(plan.TranslatedWords, ", "))
	}
	if len(plan.SkippedWords) > 0 {
		fmt.Printf("  Skipped: %s\n", strings.Join(plan.SkippedWords, ", "))
	}
}

// ProcessBatch translates every sentence in the batch file.
func (p *Processor) ProcessBatch(ctx context.Context) error {
	sentences, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}
	if len(sentences) == 0 {
		return fmt.Errorf("no sentences found in %s", p.flags.BatchFile)
	}

	fmt.Printf("Translating %d sentences from %s\n", len(sentences), p.flags.BatchFile)

	results, err := batch.Process(ctx, sentences, func(ctx context.Context, text string) (string, error) {
		artifact, _, err := p.translate(ctx, text)
		return artifact, err
	}, batch.Options{
		MaxConcurrent:   p.flags.MaxConcurrent,
		RateLimitPerMin: p.flags.RateLimitPerMin,
	})
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "Error on line %d (%s): %v\n", r.Line, r.Text, r.Err)
		} else if r.Artifact != "" {
			fmt.Printf("Line %d: %s -> %s\n", r.Line, r.Text, r.Artifact)
		} else {
			fmt.Printf("Line %d: %s (resolved, composition skipped)\n", r.Line, r.Text)
		}
	}

	succeeded, failed := batch.Summary(results)
	fmt.Printf("\n=== Batch Translation Summary ===\n")
	fmt.Printf("Total sentences: %d\n", len(results))
	fmt.Printf("Translated: %d\n", succeeded)
	if failed > 0 {
		fmt.Printf("Errors: %d\n", failed)
	}
	fmt.Printf("=================================\n")

	return nil
}

// TranscribeAndTranslate transcribes an audio file and translates the text.
func (p *Processor) TranscribeAndTranslate(ctx context.Context) error {
	cfg := transcribe.DefaultProviderConfig()
	cfg.OpenAIKey = cli.GetOpenAIKey()
	if p.flags.OpenAIModel != "" {
		cfg.OpenAIModel = p.flags.OpenAIModel
	}

	provider, err := transcribe.NewProvider(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Transcribing %s with %s\n", p.flags.TranscribeFile, provider.Name())
	text, err := provider.Transcribe(ctx, p.flags.TranscribeFile)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}
	fmt.Printf("Transcript: %s\n", text)

	return p.TranslateText(ctx, text)
}

// RunServer starts the HTTP translation service and blocks until the
// context is cancelled.
func (p *Processor) RunServer(ctx context.Context) error {
	shutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{
		ServiceVersion: internal.Version,
	})
	if err != nil {
		return fmt.Errorf("failed to initialise telemetry: %w", err)
	}
	defer shutdown(context.Background())

	if p.composer == nil {
		return fmt.Errorf("the HTTP service requires composition (remove --skip-compose)")
	}

	srv := server.New(&server.Config{
		ListenAddr:      p.flags.ListenAddr,
		OutputDir:       p.flags.OutputDir,
		CORSOrigins:     p.flags.CORSOrigins,
		MaxCompositions: int64(p.flags.MaxCompositions),
	}, p.resolver, p.composer, p.history, nil)

	fmt.Printf("Listening on %s\n", p.flags.ListenAddr)
	return srv.ListenAndServe(ctx)
}
