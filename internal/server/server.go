// Package server exposes the translation pipeline over HTTP: the
// /translate endpoint used by the frontend, the /videos static route
// serving composed artifacts, and /metrics for Prometheus scraping.
//
// Requests are stateless and independent; the only shared state is the
// read-only vocabulary and catalogue plus a semaphore bounding concurrent
// ffmpeg invocations so one slow composition cannot stall the process.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/silentspeaker/signbridge/internal/history"
	"github.com/silentspeaker/signbridge/internal/observe"
	"github.com/silentspeaker/signbridge/internal/translate"
)

// Composer abstracts the artifact composition stage.
type Composer interface {
	Compose(ctx context.Context, clips []string) (string, error)
}

// Config holds server settings.
type Config struct {
	// ListenAddr is the TCP address the server listens on (e.g. ":8000").
	ListenAddr string

	// OutputDir is the directory artifacts are served from.
	OutputDir string

	// CORSOrigins lists origins allowed to call the API.
	CORSOrigins []string

	// MaxCompositions bounds concurrent ffmpeg invocations. Zero means
	// DefaultMaxCompositions.
	MaxCompositions int64
}

// DefaultMaxCompositions bounds concurrent artifact compositions.
const DefaultMaxCompositions = 4

// Server handles translation requests over HTTP.
type Server struct {
	cfg      *Config
	resolver *translate.Resolver
	composer Composer
	history  *history.Store // optional, may be nil
	metrics  *observe.Metrics
	sem      *semaphore.Weighted
}

// New creates a server. history may be nil to disable persistence and
// artifact reuse.
func New(cfg *Config, resolver *translate.Resolver, composer Composer, hist *history.Store, metrics *observe.Metrics) *Server {
	maxCompositions := cfg.MaxCompositions
	if maxCompositions <= 0 {
		maxCompositions = DefaultMaxCompositions
	}
	if metrics == nil {
		metrics = observe.Default()
	}
	return &Server{
		cfg:      cfg,
		resolver: resolver,
		composer: composer,
		history:  hist,
		metrics:  metrics,
		sem:      semaphore.NewWeighted(maxCompositions),
	}
}

// Handler builds the full HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /translate", s.handleTranslate)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.Handle("GET /videos/", http.StripPrefix("/videos/", http.FileServer(http.Dir(s.cfg.OutputDir))))
	mux.Handle("GET /metrics", promhttp.Handler())

	var handler http.Handler = mux
	handler = s.corsMiddleware(handler)
	handler = observe.Middleware(s.metrics)(handler)
	return handler
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", s.cfg.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	}
}

// corsMiddleware allows the configured frontend origins.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(s.cfg.CORSOrigins))
	for _, origin := range s.cfg.CORSOrigins {
		allowed[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case allowed["*"]:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && allowed[origin]:
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}
