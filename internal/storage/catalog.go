// Package storage keeps a local catalog of finished extractions.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/junwei/citegrab/internal/citation"
)

// Catalog wraps a SQLite database of extracted citation records.
type Catalog struct {
	db *sql.DB
}

// Entry is one catalog row: summary columns for listing plus the full
// record JSON.
type Entry struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Year      int             `json:"year,omitempty"`
	Container string          `json:"container,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Record    citation.Record `json:"record"`
}

// Open opens or creates the catalog database at the given path.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}

	return &Catalog{db: db}, nil
}

// Close closes the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS extractions (
			id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			title TEXT,
			year INTEGER,
			container TEXT,
			created_at INTEGER NOT NULL,
			record_json TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_extractions_type ON extractions(type);
	`
	_, err := db.Exec(schema)
	return err
}

// Put inserts or replaces a record in the catalog under its document
// type. The type column carries the document-type vocabulary (book,
// thesis, journal, bookchapter), not the record's CSL type, so List
// filters line up with the rest of the system. Id collisions overwrite,
// matching the on-disk output behavior.
func (c *Catalog) Put(rec citation.Record, docType citation.Type) error {
	recordJSON, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}

	year := 0
	if rec.Issued != nil {
		year = rec.Issued.Year
	}

	_, err = c.db.Exec(`
		INSERT OR REPLACE INTO extractions (id, type, title, year, container, created_at, record_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, string(docType), rec.Title, year, rec.ContainerTitle,
		time.Now().Unix(), string(recordJSON))
	if err != nil {
		return fmt.Errorf("inserting record %s: %w", rec.ID, err)
	}
	return nil
}

// Get retrieves one entry by id. Returns (nil, nil) when absent.
func (c *Catalog) Get(id string) (*Entry, error) {
	row := c.db.QueryRow(`
		SELECT id, type, title, year, container, created_at, record_json
		FROM extractions WHERE id = ?`, id)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading record %s: %w", id, err)
	}
	return entry, nil
}

// List returns entries newest first, optionally filtered by type.
// A limit of 0 means no limit.
func (c *Catalog) List(docType string, limit int) ([]Entry, error) {
	query := `
		SELECT id, type, title, year, container, created_at, record_json
		FROM extractions`
	var args []any
	if docType != "" {
		query += " WHERE type = ?"
		args = append(args, docType)
	}
	query += " ORDER BY created_at DESC, id"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// scanner abstracts sql.Row and sql.Rows for scanEntry.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*Entry, error) {
	var entry Entry
	var createdAt int64
	var recordJSON string

	if err := s.Scan(&entry.ID, &entry.Type, &entry.Title, &entry.Year,
		&entry.Container, &createdAt, &recordJSON); err != nil {
		return nil, err
	}

	entry.CreatedAt = time.Unix(createdAt, 0)
	if err := json.Unmarshal([]byte(recordJSON), &entry.Record); err != nil {
		return nil, fmt.Errorf("decoding record JSON: %w", err)
	}
	return &entry, nil
}
