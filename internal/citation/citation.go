// Package citation defines the core domain types for extracted citations.
package citation

// Type identifies the kind of document a citation was extracted from.
type Type string

const (
	Book        Type = "book"
	Thesis      Type = "thesis"
	Journal     Type = "journal"
	BookChapter Type = "bookchapter"
)

// Valid reports whether t is one of the four supported document types.
func (t Type) Valid() bool {
	switch t {
	case Book, Thesis, Journal, BookChapter:
		return true
	}
	return false
}

// CSLType maps an internal document type to the CSL citation-type vocabulary.
// Unrecognized types map to "document".
func (t Type) CSLType() string {
	switch t {
	case Book:
		return "book"
	case Thesis:
		return "thesis"
	case Journal:
		return "article-journal"
	case BookChapter:
		return "chapter"
	}
	return "document"
}

// Author represents one author with optional structured name parts.
// Literal always preserves the raw form the name was extracted in.
type Author struct {
	Family  string `json:"family,omitempty" yaml:"family,omitempty"`
	Given   string `json:"given,omitempty" yaml:"given,omitempty"`
	Literal string `json:"literal,omitempty" yaml:"literal,omitempty"`
}

// Date represents a publication date with optional month and day.
type Date struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month,omitempty" yaml:"month,omitempty"` // 1-12, 0 if unknown
	Day   int `json:"day,omitempty" yaml:"day,omitempty"`     // 1-31, 0 if unknown
}

// IsZero reports whether the date carries no information at all.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Record is the normalized citation produced at the end of an extraction run.
type Record struct {
	ID   string `json:"id" yaml:"id"`
	Type string `json:"type" yaml:"type"` // CSL type vocabulary

	Title          string   `json:"title,omitempty" yaml:"title,omitempty"`
	Authors        []Author `json:"author,omitempty" yaml:"author,omitempty"`
	Editors        []Author `json:"editor,omitempty" yaml:"editor,omitempty"`
	ContainerTitle string   `json:"container-title,omitempty" yaml:"container-title,omitempty"`
	Issued         *Date    `json:"issued,omitempty" yaml:"issued,omitempty"`
	Publisher      string   `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Location       string   `json:"publisher-place,omitempty" yaml:"publisher-place,omitempty"`
	Page           string   `json:"page,omitempty" yaml:"page,omitempty"`
	Volume         string   `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue          string   `json:"issue,omitempty" yaml:"issue,omitempty"`
	Genre          string   `json:"genre,omitempty" yaml:"genre,omitempty"` // thesis kind: PhD, Master
	DOI            string   `json:"doi,omitempty" yaml:"doi,omitempty"`
}

// FirstAuthorFamily returns the family name of the first author, or its
// literal form when no family name was parsed. Empty when there are no authors.
func (r Record) FirstAuthorFamily() string {
	if len(r.Authors) == 0 {
		return ""
	}
	if r.Authors[0].Family != "" {
		return r.Authors[0].Family
	}
	return r.Authors[0].Literal
}
