package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestArchiveOutputs(t *testing.T) {
	tmpDir := t.TempDir()

	// Create output directory with some composed videos
	outputDir := filepath.Join(tmpDir, "outputs")
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		t.Fatalf("Failed to create output directory: %v", err)
	}

	testFile := filepath.Join(outputDir, "sign_translation_abc123.mp4")
	if err := os.WriteFile(testFile, []byte("video"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	// Archive the output directory
	if err := ArchiveOutputs(outputDir); err != nil {
		t.Fatalf("ArchiveOutputs failed: %v", err)
	}

	// Check that output directory no longer exists
	if _, err := os.Stat(outputDir); !os.IsNotExist(err) {
		t.Error("Output directory still exists after archiving")
	}

	// Check that archive directory was created
	archiveDir := filepath.Join(tmpDir, "archive")
	entries, err := os.ReadDir(archiveDir)
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry in archive directory, got %d", len(entries))
	}

	archivedName := entries[0].Name()
	if !strings.HasPrefix(archivedName, "outputs-") {
		t.Errorf("Archived directory name doesn't start with 'outputs-': %s", archivedName)
	}

	// Check that archived videos exist
	archivedFile := filepath.Join(archiveDir, archivedName, "sign_translation_abc123.mp4")
	if _, err := os.Stat(archivedFile); os.IsNotExist(err) {
		t.Error("Video not found in archive")
	}
}

func TestArchiveOutputs_NonExistentDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	err := ArchiveOutputs(filepath.Join(tmpDir, "nonexistent"))
	if err == nil {
		t.Error("Expected error for non-existent directory")
	}

	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected 'does not exist' error, got: %v", err)
	}
}

func TestArchiveOutputs_MultipleArchives(t *testing.T) {
	tmpDir := t.TempDir()

	// Archive twice to ensure unique timestamps
	for i := 0; i < 2; i++ {
		outputDir := filepath.Join(tmpDir, "outputs")
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			t.Fatalf("Failed to create output directory: %v", err)
		}

		if i == 1 {
			time.Sleep(10 * time.Millisecond)
		}

		if err := ArchiveOutputs(outputDir); err != nil {
			t.Fatalf("ArchiveOutputs failed on iteration %d: %v", i, err)
		}
	}

	archiveDir := filepath.Join(tmpDir, "archive")
	entries, err := os.ReadDir(archiveDir)
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries in archive directory, got %d", len(entries))
	}

	if entries[0].Name() == entries[1].Name() {
		t.Error("Archive names are not unique")
	}
}
