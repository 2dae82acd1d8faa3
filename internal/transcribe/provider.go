// Package transcribe integrates the upstream speech-to-text collaborator.
// The pipeline itself only consumes the resulting sentence; transcription
// is optional and lives entirely behind the Provider interface.
package transcribe

import (
	"context"
	"fmt"
)

// Provider defines the interface for speech-to-text providers.
type Provider interface {
	// Transcribe converts an audio file into plain text.
	Transcribe(ctx context.Context, audioFile string) (string, error)

	// Name returns the provider name.
	Name() string

	// IsAvailable checks if the provider is properly configured.
	IsAvailable() error
}

// Config holds common configuration for transcription providers.
type Config struct {
	Provider string // Provider name: "openai"

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string // e.g. "whisper-1"
	Language    string // optional ISO-639-1 hint
	Prompt      string // optional transcription guidance
}

// DefaultProviderConfig returns default configuration.
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:    "openai",
		OpenAIModel: "whisper-1",
		Language:    "en",
	}
}

// NewProvider creates the appropriate transcription provider based on
// configuration.
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config)

	default:
		return nil, fmt.Errorf("unknown transcription provider: %s", config.Provider)
	}
}
