// Package pipeline runs the full extraction flow for a single document:
// page selection, optional OCR, classification, extraction, and record
// assembly.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/junwei/citegrab/internal/builder"
	"github.com/junwei/citegrab/internal/citation"
	"github.com/junwei/citegrab/internal/classify"
	"github.com/junwei/citegrab/internal/docinfo"
	"github.com/junwei/citegrab/internal/extract"
	"github.com/junwei/citegrab/internal/ocr"
	"github.com/junwei/citegrab/internal/pagenum"
	"github.com/junwei/citegrab/internal/pagerange"
	"github.com/junwei/citegrab/internal/subset"
)

// ErrNotPDF is returned when the input file does not look like a PDF.
var ErrNotPDF = errors.New("input is not a PDF file")

// Options configure a single extraction run.
type Options struct {
	// PageRange selects the pages fed to extraction, e.g. "1-5,-3".
	PageRange string
	// TypeOverride skips classification when set to a valid type.
	TypeOverride citation.Type
	// Language is a hint for OCR language selection ("zh-cn", "ja", ...).
	Language string
	// Direction selects OCR text direction handling.
	Direction ocr.Direction
	// SkipOCR disables the OCR fallback for image-only documents.
	SkipOCR bool
	// UnknownSentinel overrides the marker the extractor uses for
	// absent fields.
	UnknownSentinel string
}

// Pipeline wires the extraction stages together around an Extractor.
type Pipeline struct {
	extractor extract.Extractor
	engine    *ocr.Engine
	opts      Options
}

// New returns a Pipeline using the given extractor for field extraction.
// A nil engine disables OCR.
func New(extractor extract.Extractor, engine *ocr.Engine, opts Options) *Pipeline {
	if opts.Direction == "" {
		opts.Direction = ocr.Auto
	}
	return &Pipeline{extractor: extractor, engine: engine, opts: opts}
}

// RunResult is the outcome of a pipeline run.
type RunResult struct {
	Record         citation.Record
	Type           citation.Type
	Rule           string
	PageSpan       pagenum.Span
	Complete       bool
	PagesProcessed int
	OCRApplied     bool
}

// Run extracts a citation record from the PDF named by input, which may
// be a local path or an HTTP(S) URL.
func (p *Pipeline) Run(ctx context.Context, input string) (RunResult, error) {
	path := input
	if isRemote(input) {
		downloaded, cleanup, err := fetchRemote(ctx, input)
		if err != nil {
			return RunResult{}, err
		}
		defer cleanup()
		path = downloaded
	}

	if _, err := os.Stat(path); err != nil {
		return RunResult{}, fmt.Errorf("opening input: %w", err)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return RunResult{}, fmt.Errorf("%w: %s", ErrNotPDF, path)
	}

	doc, err := docinfo.OpenPDF(path)
	if err != nil {
		return RunResult{}, fmt.Errorf("reading %s: %w", path, err)
	}
	defer doc.Close()

	pages, err := pagerange.Resolve(p.opts.PageRange, doc.TotalPages())
	if err != nil {
		return RunResult{}, err
	}
	if pages == nil {
		pages = allPages(doc.TotalPages())
	}

	var (
		target     docinfo.Document = doc
		ocrApplied bool
	)
	if !p.opts.SkipOCR && p.engine != nil && ocr.NeedsOCR(doc) {
		mapped, cleanup, err := p.recognize(ctx, path, pages, doc.TotalPages())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: OCR failed, continuing with embedded text: %v\n", err)
		} else {
			defer cleanup()
			target = mapped
			ocrApplied = true
		}
	}

	res, err := p.analyze(ctx, target, pages)
	res.OCRApplied = ocrApplied
	return res, err
}

// analyze runs classification, page-number inference, extraction, and
// record assembly on an already-opened document.
func (p *Pipeline) analyze(ctx context.Context, doc docinfo.Document, pages []int) (RunResult, error) {
	cls := classify.Classify(doc, p.opts.TypeOverride)
	span := pagenum.Infer(doc)

	var accOpts []extract.Option
	if p.opts.UnknownSentinel != "" {
		accOpts = append(accOpts, extract.WithUnknownSentinel(p.opts.UnknownSentinel))
	}
	acc := extract.NewAccumulator(p.extractor, accOpts...)
	extRes, err := acc.Run(ctx, doc, pages, cls.Type)
	if err != nil {
		return RunResult{Type: cls.Type, Rule: cls.Rule, PageSpan: span}, err
	}

	fillPageSpan(extRes.Fields, cls.Type, span)
	rec := builder.Build(extRes.Fields, cls.Type)

	return RunResult{
		Record:         rec,
		Type:           cls.Type,
		Rule:           cls.Rule,
		PageSpan:       span,
		Complete:       extRes.Complete,
		PagesProcessed: extRes.PagesProcessed,
	}, nil
}

// recognize builds a subset PDF of the selected pages, OCRs it, and wraps
// the result so callers keep addressing pages by their original numbers.
func (p *Pipeline) recognize(ctx context.Context, path string, pages []int, totalPages int) (docinfo.Document, func(), error) {
	subsetPath, subsetCleanup, err := subset.Extract(path, pages)
	if err != nil {
		return nil, nil, err
	}

	languages := ocr.Languages(p.opts.Direction, p.opts.Language)
	ocrPath, ocrCleanup, err := p.engine.Run(ctx, subsetPath, languages)
	if err != nil {
		subsetCleanup()
		return nil, nil, err
	}

	ocrDoc, err := docinfo.OpenPDF(ocrPath)
	if err != nil {
		ocrCleanup()
		subsetCleanup()
		return nil, nil, err
	}

	cleanup := func() {
		ocrDoc.Close()
		ocrCleanup()
		subsetCleanup()
	}
	return newMappedDocument(ocrDoc, pages, totalPages), cleanup, nil
}

// fillPageSpan backfills page_numbers from the inferred printed span when
// extraction did not produce one. Only article-like types carry page spans.
func fillPageSpan(fields citation.FieldSet, docType citation.Type, span pagenum.Span) {
	if docType != citation.Journal && docType != citation.BookChapter {
		return
	}
	if span.First <= 0 || span.Last <= 0 || span.Last < span.First {
		return
	}
	fields.SetIfAbsent("page_numbers", fmt.Sprintf("%d-%d", span.First, span.Last))
}

func allPages(total int) []int {
	pages := make([]int, total)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}
