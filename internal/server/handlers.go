package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/silentspeaker/signbridge/internal"
	"github.com/silentspeaker/signbridge/internal/history"
	"github.com/silentspeaker/signbridge/internal/translate"
)

// translateResponse is the wire format of the /translate endpoint.
// The word lists are always present, even on failure.
type translateResponse struct {
	Success         bool     `json:"success"`
	VideoURL        *string  `json:"video_url"`
	TranslatedWords []string `json:"translated_words"`
	SkippedWords    []string `json:"skipped_words"`
	Error           *string  `json:"error"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	reqID := internal.GenerateRequestID(text)
	log := slog.With("request_id", reqID)

	resolveStart := time.Now()
	plan, err := s.resolver.Resolve(text)
	s.metrics.ResolveDuration.Record(r.Context(), time.Since(resolveStart).Seconds())
	s.metrics.WordsTranslated.Add(r.Context(), int64(len(plan.TranslatedWords)))
	s.metrics.WordsSkipped.Add(r.Context(), int64(len(plan.SkippedWords)))

	if err != nil {
		status := "untranslatable"
		if errors.Is(err, translate.ErrNoInput) {
			status = "empty"
		}
		s.countRequest(r, status)
		log.Info("request not translatable", "reason", err.Error(), "skipped", len(plan.SkippedWords))
		s.recordHistory(log, text, plan, "")
		writeJSON(w, failureResponse(plan, err.Error()))
		return
	}

	normalized := strings.Join(translate.NormalizeText(text), " ")

	// Reuse an existing artifact for identical input when possible.
	if artifact, ok := s.cachedArtifact(normalized); ok {
		s.countRequest(r, "ok")
		log.Info("artifact reused", "artifact", artifact)
		writeJSON(w, successResponse(plan, artifact))
		return
	}

	if err := s.sem.Acquire(r.Context(), 1); err != nil {
		s.countRequest(r, "cancelled")
		writeJSON(w, failureResponse(plan, "request cancelled"))
		return
	}
	s.metrics.ActiveCompositions.Add(r.Context(), 1)
	composeStart := time.Now()
	artifact, err := s.composer.Compose(r.Context(), plan.Assets)
	s.metrics.ComposeDuration.Record(r.Context(), time.Since(composeStart).Seconds())
	s.metrics.ActiveCompositions.Add(r.Context(), -1)
	s.sem.Release(1)

	if err != nil {
		s.countRequest(r, "compose_error")
		log.Error("composition failed", "err", err)
		s.recordHistory(log, text, plan, "")
		writeJSON(w, failureResponse(plan, "failed to compose video: "+err.Error()))
		return
	}

	s.countRequest(r, "ok")
	log.Info("translation complete",
		"translated", len(plan.TranslatedWords),
		"skipped", len(plan.SkippedWords),
		"artifact", artifact)
	s.recordHistory(log, text, plan, artifact)
	writeJSON(w, successResponse(plan, artifact))
}

func (s *Server) countRequest(r *http.Request, status string) {
	s.metrics.TranslateRequests.Add(r.Context(), 1,
		metric.WithAttributes(attribute.String("status", status)))
}

// cachedArtifact looks up a previously composed artifact for the same
// normalized text, verifying the file still exists.
func (s *Server) cachedArtifact(normalized string) (string, bool) {
	if s.history == nil {
		return "", false
	}
	artifact, ok, err := s.history.FindArtifact(normalized)
	if err != nil {
		slog.Warn("artifact lookup failed", "err", err)
		return "", false
	}
	if !ok {
		return "", false
	}
	if _, err := os.Stat(filepath.Join(s.cfg.OutputDir, artifact)); err != nil {
		return "", false
	}
	return artifact, true
}

// recordHistory persists a request outcome; failures only warn.
func (s *Server) recordHistory(log *slog.Logger, text string, plan *translate.Plan, artifact string) {
	if s.history == nil {
		return
	}
	rec := &history.Record{
		InputText:      text,
		NormalizedText: strings.Join(translate.NormalizeText(text), " "),
		Translated:     plan.TranslatedWords,
		Skipped:        plan.SkippedWords,
		Artifact:       artifact,
	}
	if err := s.history.Add(rec); err != nil {
		log.Warn("failed to record history", "err", err)
	}
}

func successResponse(plan *translate.Plan, artifact string) translateResponse {
	url := "/videos/" + artifact
	return translateResponse{
		Success:         true,
		VideoURL:        &url,
		TranslatedWords: plan.TranslatedWords,
		SkippedWords:    plan.SkippedWords,
	}
}

func failureResponse(plan *translate.Plan, message string) translateResponse {
	return translateResponse{
		Success:         false,
		TranslatedWords: plan.TranslatedWords,
		SkippedWords:    plan.SkippedWords,
		Error:           &message,
	}
}

func writeJSON(w http.ResponseWriter, resp translateResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Warn("failed to encode response", "err", err)
	}
}
