// Package builder assembles accumulated fields into a normalized citation record.
package builder

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/junwei/citegrab/internal/author"
	"github.com/junwei/citegrab/internal/citation"
)

// containerKeys are the raw field names that feed container-title, in
// preference order.
var containerKeys = []string{"container_title", "journal_name", "book_name"}

// Build maps an accumulated field set and document type into a normalized
// citation record with a deterministic identifier.
func Build(fields citation.FieldSet, docType citation.Type) citation.Record {
	rec := citation.Record{
		Type:      docType.CSLType(),
		Title:     fields.Get("title"),
		Publisher: fields.Get("publisher"),
		Location:  fields.Get("location"),
		Volume:    fields.Get("volume"),
		Issue:     fields.Get("issue"),
		Genre:     fields.Get("genre"),
		DOI:       normalizeDOI(fields.Get("doi")),
	}

	for _, key := range containerKeys {
		if v := fields.Get(key); v != "" {
			rec.ContainerTitle = v
			break
		}
	}

	if v := fields.Get("page_numbers"); v != "" {
		rec.Page = normalizePageSpan(v)
	}

	rec.Authors = toCitationAuthors(author.Normalize(fields.Get("author")))
	rec.Editors = toCitationAuthors(author.Normalize(fields.Get("editor")))

	if d := parseDate(fields.Get("date"), fields.Get("year")); !d.IsZero() {
		rec.Issued = &d
	}

	rec.ID = generateID(rec)
	return rec
}

// toCitationAuthors converts parsed name records to the record's author shape.
func toCitationAuthors(records []author.Record) []citation.Author {
	var authors []citation.Author
	for _, r := range records {
		authors = append(authors, citation.Author{
			Family:  r.Family,
			Given:   r.Given,
			Literal: r.Literal,
		})
	}
	return authors
}

// Date layouts tried in order for full date strings.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-1-2",
	"2006/1/2",
	"January 2, 2006",
	"2 January 2006",
	"2006年1月2日",
}

var yearPattern = regexp.MustCompile(`\b(1[0-9]{3}|20[0-9]{2})\b`)

// parseDate builds a structured date from a full date string, falling back
// to a year-only date, and finally to nothing at all.
func parseDate(dateStr, yearStr string) citation.Date {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr != "" {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, dateStr); err == nil {
				return citation.Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
			}
		}
		// A year buried in an unparseable date string still counts.
		if m := yearPattern.FindString(dateStr); m != "" {
			y, _ := strconv.Atoi(m)
			return citation.Date{Year: y}
		}
	}

	yearStr = strings.TrimSpace(yearStr)
	if m := yearPattern.FindString(yearStr); m != "" {
		y, _ := strconv.Atoi(m)
		return citation.Date{Year: y}
	}
	return citation.Date{}
}

// normalizePageSpan normalizes separators in a page span: "12—34" and
// "12–34" become "12-34".
func normalizePageSpan(span string) string {
	span = strings.ReplaceAll(span, "—", "-")
	span = strings.ReplaceAll(span, "–", "-")
	return strings.TrimSpace(span)
}

// normalizeDOI strips URL prefixes and lowercases a DOI.
func normalizeDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	doi = strings.TrimPrefix(doi, "doi.org/")
	doi = strings.TrimPrefix(doi, "DOI:")
	return strings.ToLower(doi)
}

var slugStrip = regexp.MustCompile(`[^a-z0-9\p{Han}\p{Hiragana}\p{Katakana}\p{Hangul}]+`)

// generateID builds a deterministic slug from the first author's family
// name, the year, and the first title word, joining whichever components
// are available. When none are, a random id is the only option left; that
// path is not reproducible.
func generateID(rec citation.Record) string {
	var parts []string

	if family := rec.FirstAuthorFamily(); family != "" {
		if s := slugify(family); s != "" {
			parts = append(parts, s)
		}
	}
	if rec.Issued != nil && rec.Issued.Year > 0 {
		parts = append(parts, strconv.Itoa(rec.Issued.Year))
	}
	if words := strings.Fields(rec.Title); len(words) > 0 {
		if s := slugify(words[0]); s != "" {
			parts = append(parts, s)
		}
	}

	if len(parts) == 0 {
		return uuid.NewString()[:8]
	}
	return strings.Join(parts, "-")
}

// slugify lowercases a component and strips everything that is not a
// letter usable in an identifier.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return slugStrip.ReplaceAllString(s, "")
}
