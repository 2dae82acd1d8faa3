// Package testutil provides shared mocks and fixture helpers for tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// MockComposer mocks the artifact composition stage.
type MockComposer struct {
	mu sync.Mutex

	// Artifacts maps a clip-count to a fixed artifact name; when empty, a
	// unique name is generated per call.
	Artifacts map[int]string

	// Err, when set, is returned by every Compose call.
	Err error

	// OutputDir, when set, receives an empty artifact file per call.
	OutputDir string

	Calls [][]string
	seq   int
}

// Compose records the call and returns a mock artifact name.
func (m *MockComposer) Compose(ctx context.Context, clips []string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, append([]string(nil), clips...))

	if m.Err != nil {
		return "", m.Err
	}

	name, ok := m.Artifacts[len(clips)]
	if !ok {
		m.seq++
		name = fmt.Sprintf("mock_artifact_%03d.mp4", m.seq)
	}

	if m.OutputDir != "" {
		if err := os.WriteFile(filepath.Join(m.OutputDir, name), []byte("video"), 0644); err != nil {
			return "", err
		}
	}
	return name, nil
}

// CallCount returns the number of Compose invocations.
func (m *MockComposer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockTranscriber mocks the speech-to-text provider.
type MockTranscriber struct {
	Transcripts map[string]string
	Err         error
	Calls       []string
}

// Transcribe records the call and returns the configured transcript.
func (m *MockTranscriber) Transcribe(ctx context.Context, audioFile string) (string, error) {
	m.Calls = append(m.Calls, audioFile)
	if m.Err != nil {
		return "", m.Err
	}
	if text, ok := m.Transcripts[audioFile]; ok {
		return text, nil
	}
	return "mock transcript", nil
}

// Name returns the provider name.
func (m *MockTranscriber) Name() string {
	return "mock"
}

// IsAvailable always reports the mock as available.
func (m *MockTranscriber) IsAvailable() error {
	return nil
}
