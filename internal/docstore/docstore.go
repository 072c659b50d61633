// Package docstore persists polynomial documents as human-readable JSON.
//
// Documents are written with 2-space indentation and overwritten in place;
// there is no versioning or append history. A missing or malformed file is
// an error for the caller to treat as fatal.
package docstore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/roach88/vieta/internal/record"
)

// DefaultPath is the well-known document location in the working directory.
const DefaultPath = "polynomial.json"

// Save serializes doc with 2-space indentation and writes it to path,
// replacing any existing content.
func Save(path string, doc record.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// Load reads and parses the document at path.
func Load(path string) (record.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return record.Document{}, fmt.Errorf("read document: %w", err)
	}

	var doc record.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return record.Document{}, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}
