// Package archive moves composed videos out of the output directory.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveOutputs moves the output directory to a timestamped archive
func ArchiveOutputs(outputDir string) error {
	// Check if output directory exists
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		return fmt.Errorf("output directory does not exist: %s", outputDir)
	}

	// Get parent directory and create archive path
	parentDir := filepath.Dir(outputDir)
	archiveDir := filepath.Join(parentDir, "archive")

	// Create archive directory if it doesn't exist
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	// Generate timestamp
	timestamp := time.Now().Format("20060102-150405")
	archiveName := fmt.Sprintf("outputs-%s", timestamp)
	archivePath := filepath.Join(archiveDir, archiveName)

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archiveName = fmt.Sprintf("outputs-%s", timestamp)
		archivePath = filepath.Join(archiveDir, archiveName)
	}

	// Rename output directory to archive
	if err := os.Rename(outputDir, archivePath); err != nil {
		return fmt.Errorf("failed to archive output directory: %w", err)
	}

	fmt.Printf("Output directory archived to: %s\n", archivePath)
	return nil
}
