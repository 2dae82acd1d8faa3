// Package history persists the outcome of every translation request in a
// local SQLite database. Besides audit, it lets the server reuse an
// existing artifact when the same normalized text is requested again.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the translations database.
type Store struct {
	db *sql.DB
}

// Record is one translation request outcome. Artifact is empty for failed
// requests.
type Record struct {
	ID             int64
	InputText      string
	NormalizedText string
	Translated     []string
	Skipped        []string
	Artifact       string
	CreatedAt      time.Time
}

// Open opens (or creates) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	query := `CREATE TABLE IF NOT EXISTS translations (
		id integer PRIMARY KEY AUTOINCREMENT,
		input_text text NOT NULL,
		normalized_text text NOT NULL,
		translated text NOT NULL,
		skipped text NOT NULL,
		artifact text NOT NULL,
		created_at integer NOT NULL
	)`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create translations table: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_translations_normalized
		ON translations(normalized_text, created_at)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts one record and fills in its ID and CreatedAt.
func (s *Store) Add(rec *Record) error {
	translated, err := json.Marshal(rec.Translated)
	if err != nil {
		return fmt.Errorf("failed to encode translated words: %w", err)
	}
	skipped, err := json.Marshal(rec.Skipped)
	if err != nil {
		return fmt.Errorf("failed to encode skipped words: %w", err)
	}

	rec.CreatedAt = time.Now()
	res, err := s.db.Exec(
		`INSERT INTO translations (input_text, normalized_text, translated, skipped, artifact, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.InputText, rec.NormalizedText, string(translated), string(skipped),
		rec.Artifact, rec.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	rec.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read record id: %w", err)
	}
	return nil
}

// FindArtifact returns the newest non-empty artifact recorded for the given
// normalized text. ok is false when no artifact exists.
func (s *Store) FindArtifact(normalizedText string) (string, bool, error) {
	var artifact string
	err := s.db.QueryRow(
		`SELECT artifact FROM translations
		 WHERE normalized_text = ? AND artifact != ''
		 ORDER BY created_at DESC, id DESC LIMIT 1`,
		normalizedText,
	).Scan(&artifact)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query artifact: %w", err)
	}
	return artifact, true, nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, input_text, normalized_text, translated, skipped, artifact, created_at
		 FROM translations ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var translated, skipped string
		var createdAt int64
		if err := rows.Scan(&rec.ID, &rec.InputText, &rec.NormalizedText,
			&translated, &skipped, &rec.Artifact, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		if err := json.Unmarshal([]byte(translated), &rec.Translated); err != nil {
			return nil, fmt.Errorf("failed to decode translated words: %w", err)
		}
		if err := json.Unmarshal([]byte(skipped), &rec.Skipped); err != nil {
			return nil, fmt.Errorf("failed to decode skipped words: %w", err)
		}
		rec.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, rec)
	}
	return records, rows.Err()
}
