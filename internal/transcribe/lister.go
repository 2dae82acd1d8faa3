package transcribe

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models.
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister.
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ListAvailableModels prints the audio-capable OpenAI models usable for
// transcription.
func (l *Lister) ListAvailableModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .signbridge.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	var audioModels []string
	for _, model := range models.Models {
		id := model.ID
		if strings.Contains(id, "whisper") || strings.Contains(id, "transcribe") || strings.Contains(id, "audio") {
			audioModels = append(audioModels, id)
		}
	}
	sort.Strings(audioModels)

	fmt.Println("Available OpenAI transcription models:")
	if len(audioModels) == 0 {
		fmt.Println("  No audio models found")
		return nil
	}
	for _, model := range audioModels {
		fmt.Printf("  %s\n", model)
	}
	return nil
}
