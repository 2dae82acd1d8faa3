package transcribe

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider using the OpenAI audio API.
type OpenAIProvider struct {
	client *openai.Client
	config *Config
}

// NewOpenAIProvider creates a new OpenAI transcription provider.
func NewOpenAIProvider(config *Config) (Provider, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &OpenAIProvider{
		client: openai.NewClient(config.OpenAIKey),
		config: config,
	}, nil
}

// Transcribe sends the audio file to the OpenAI transcription endpoint and
// returns the recognized text.
func (p *OpenAIProvider) Transcribe(ctx context.Context, audioFile string) (string, error) {
	if _, err := os.Stat(audioFile); err != nil {
		return "", fmt.Errorf("audio file not accessible: %w", err)
	}

	model := p.config.OpenAIModel
	if model == "" {
		model = openai.Whisper1
	}

	req := openai.AudioRequest{
		Model:    model,
		FilePath: audioFile,
		Language: p.config.Language,
		Prompt:   p.config.Prompt,
	}

	resp, err := p.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI transcription error: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("empty transcript returned")
	}
	return text, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured.
func (p *OpenAIProvider) IsAvailable() error {
	if p.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}
