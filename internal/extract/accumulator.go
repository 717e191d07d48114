// Package extract drives the iterative field-accumulation loop.
package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/junwei/citegrab/internal/citation"
	"github.com/junwei/citegrab/internal/docinfo"
)

// ErrExtractionEmpty is returned when every resolved page has been
// processed and not a single field was obtained.
var ErrExtractionEmpty = errors.New("no fields extracted from any page")

// DefaultUnknownSentinel is the value collaborators return for fields they
// could not determine.
const DefaultUnknownSentinel = "N/A"

// Extractor is the external field-extraction capability: given all text
// accumulated so far and the classified document type, it returns a
// partial field map. It must be stateless between calls.
type Extractor interface {
	Extract(ctx context.Context, accumulated string, docType citation.Type) (map[string]string, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(ctx context.Context, accumulated string, docType citation.Type) (map[string]string, error)

func (f ExtractorFunc) Extract(ctx context.Context, accumulated string, docType citation.Type) (map[string]string, error) {
	return f(ctx, accumulated, docType)
}

// Accumulator grows an accumulated-text window page by page, invoking the
// extractor after each page and merging results first-wins.
type Accumulator struct {
	extractor Extractor
	sentinel  string
}

// Option configures an Accumulator.
type Option func(*Accumulator)

// WithUnknownSentinel overrides the sentinel treated as an absent value.
func WithUnknownSentinel(s string) Option {
	return func(a *Accumulator) {
		a.sentinel = s
	}
}

// NewAccumulator creates an accumulator around an extractor.
func NewAccumulator(extractor Extractor, opts ...Option) *Accumulator {
	a := &Accumulator{
		extractor: extractor,
		sentinel:  DefaultUnknownSentinel,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Result is the outcome of an accumulation run.
type Result struct {
	Fields citation.FieldSet
	// Complete is true when the essential fields for the document type
	// were satisfied before the page set was exhausted.
	Complete bool
	// PagesProcessed counts pages whose text was appended to the window.
	PagesProcessed int
	// Calls counts invocations of the extractor.
	Calls int
}

// Run processes the resolved page set in order. For each page it appends
// that page's text to the accumulated buffer and hands the entire buffer
// to the extractor; returned fields merge first-wins. Once the essential
// fields for docType are satisfied no further pages are processed, which
// bounds the number of expensive extraction calls.
//
// Per-page failures (unreadable text, extractor errors) degrade with a
// warning. Only a completely empty outcome is an error: ErrExtractionEmpty
// alongside the zero-field result. A non-empty but incomplete field set is
// a partial success, returned with Complete == false and a nil error.
func (a *Accumulator) Run(ctx context.Context, doc docinfo.Document, pages []int, docType citation.Type) (Result, error) {
	result := Result{Fields: citation.NewFieldSet()}
	spec := citation.EssentialFields(docType)

	var window strings.Builder
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		text, err := doc.PageText(page)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: reading page %d: %v\n", page, err)
			continue
		}
		window.WriteString(fmt.Sprintf("--page %d--\n\n", page))
		window.WriteString(text)
		window.WriteString("\n\n")
		result.PagesProcessed++

		result.Calls++
		fields, err := a.extractor.Extract(ctx, window.String(), docType)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: extraction failed on page %d: %v\n", page, err)
			continue
		}

		a.merge(result.Fields, fields)

		if spec.Satisfied(result.Fields) {
			result.Complete = true
			break
		}
	}

	if len(result.Fields) == 0 {
		return result, ErrExtractionEmpty
	}
	return result, nil
}

// merge writes extracted fields into the set, first-wins. Values equal to
// the unknown sentinel or blank are treated as absent.
func (a *Accumulator) merge(into citation.FieldSet, fields map[string]string) {
	for key, value := range fields {
		value = strings.TrimSpace(value)
		if value == "" || strings.EqualFold(value, a.sentinel) {
			continue
		}
		into.SetIfAbsent(key, value)
	}
}
