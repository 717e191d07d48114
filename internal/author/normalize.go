// Package author parses raw author strings into structured name records.
package author

import (
	"strings"
	"unicode"
)

// Record is one parsed author name. Literal preserves the raw segment the
// record was parsed from; Family and Given are best-effort structured parts
// and may be empty when the segment could not be split confidently.
type Record struct {
	Family  string
	Given   string
	Literal string
}

// Normalize splits a raw author string into ordered name records.
//
// Primary separators are newline, semicolon, full-width comma, and comma.
// This means an isolated "Last, First" string parses as two segments; the
// comma is always a separator, never an inversion marker. Segments that
// contain CJK characters are further split on whitespace, since CJK author
// lists are commonly space-delimited.
func Normalize(raw string) []Record {
	var records []Record
	for _, segment := range splitSegments(raw) {
		if containsCJK(segment) {
			for _, name := range strings.Fields(segment) {
				records = append(records, parseCJKName(name))
			}
			continue
		}
		records = append(records, parseLatinName(segment))
	}
	return records
}

// splitSegments cuts raw on the primary separators and drops blanks.
func splitSegments(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		switch r {
		case '\n', ';', '，', ',', '；':
			return true
		}
		return false
	})

	var segments []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// parseCJKName splits a CJK name into family and given parts. The family
// name is the first character, or the first two when the name has exactly
// four characters (the common two-character-surname case). Structured
// parts are transliterated; when transliteration fails the record keeps
// only the literal form.
func parseCJKName(name string) Record {
	runes := []rune(name)
	rec := Record{Literal: name}

	if len(runes) < 2 {
		return rec
	}

	familyLen := 1
	if len(runes) == 4 {
		familyLen = 2
	}
	family := string(runes[:familyLen])
	given := string(runes[familyLen:])

	familyLatin, okF := Transliterate(family)
	givenLatin, okG := Transliterate(given)
	if !okF || !okG {
		return rec
	}

	rec.Family = familyLatin
	rec.Given = givenLatin
	return rec
}

// parseLatinName splits a Latin-script name on whitespace: the last token
// is the family name and the rest is the given name. Single-token names
// are kept literal-only rather than guessed at.
func parseLatinName(name string) Record {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return Record{Literal: name}
	}

	return Record{
		Family:  parts[len(parts)-1],
		Given:   strings.Join(parts[:len(parts)-1], " "),
		Literal: name,
	}
}

// containsCJK reports whether s contains any CJK rune.
func containsCJK(s string) bool {
	for _, r := range s {
		if isCJK(r) {
			return true
		}
	}
	return false
}

func isCJK(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r)
}
