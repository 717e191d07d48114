// Package ocr makes scanned pages searchable via an external OCR engine.
package ocr

import "strings"

// Direction is the text-direction mode for OCR language selection.
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
	Auto       Direction = "auto"
)

// Valid reports whether d is a supported direction mode.
func (d Direction) Valid() bool {
	switch d {
	case Horizontal, Vertical, Auto:
		return true
	}
	return false
}

const (
	// baseLanguages is the default horizontal set: English plus Simplified
	// Chinese covers the bulk of the corpus this tool is pointed at.
	baseLanguages = "eng+chi_sim"

	// verticalLanguages targets vertically typeset Traditional Chinese and
	// Japanese.
	verticalLanguages = "chi_tra_vert+jpn_vert"

	// autoHorizontalLanguages is the horizontal set used in auto mode,
	// where vertical scripts are also plausible.
	autoHorizontalLanguages = "chi_tra+jpn"
)

// tesseractCodes maps common language-detection codes to Tesseract codes.
var tesseractCodes = map[string]string{
	"zh-cn": "chi_sim",
	"zh":    "chi_sim",
	"zh-tw": "chi_tra",
	"ja":    "jpn",
	"ko":    "kor",
	"de":    "deu",
	"fr":    "fra",
	"es":    "spa",
	"ru":    "rus",
	"ar":    "ara",
	"hi":    "hin",
	"it":    "ita",
	"pt":    "por",
}

// MapLanguage converts a detection-style language code to a Tesseract
// code. Codes already in Tesseract form pass through unchanged.
func MapLanguage(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if mapped, ok := tesseractCodes[code]; ok {
		return mapped
	}
	return code
}

// Languages builds the Tesseract language string for a direction mode and
// an optional language hint. The hint is appended to the base set unless
// it is already part of it.
func Languages(direction Direction, hint string) string {
	switch direction {
	case Vertical:
		return verticalLanguages
	case Auto:
		return baseLanguages + "+" + autoHorizontalLanguages
	}

	hint = MapLanguage(hint)
	if hint == "" || strings.Contains(baseLanguages, hint) {
		return baseLanguages
	}
	return baseLanguages + "+" + hint
}
