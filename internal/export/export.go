// Package export encodes citation records and writes them to disk.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/junwei/citegrab/internal/citation"
)

// Format is an output encoding for citation records.
type Format string

const (
	JSON   Format = "json"
	YAML   Format = "yaml"
	BibTeX Format = "bibtex"
)

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	switch f {
	case JSON, YAML, BibTeX:
		return true
	}
	return false
}

// extension returns the file extension for a format.
func (f Format) extension() string {
	switch f {
	case YAML:
		return ".yml"
	case BibTeX:
		return ".bib"
	}
	return ".json"
}

// Encode renders a record in the given format.
func Encode(rec citation.Record, format Format) ([]byte, error) {
	switch format {
	case JSON:
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding JSON: %w", err)
		}
		return append(data, '\n'), nil
	case YAML:
		data, err := yaml.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("encoding YAML: %w", err)
		}
		return data, nil
	case BibTeX:
		return []byte(ToBibTeX(rec)), nil
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

// Write encodes a record and writes it into dir, named by the record id.
// An existing file with the same name is overwritten silently.
// Returns the written path.
func Write(rec citation.Record, dir string, format Format) (string, error) {
	if rec.ID == "" {
		return "", fmt.Errorf("record has no id")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	data, err := Encode(rec, format)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, rec.ID+format.extension())
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing record: %w", err)
	}
	return path, nil
}
