package ocr

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/junwei/citegrab/internal/docinfo"
)

const (
	// minSearchableRunes is the text volume a page needs before it counts
	// as already searchable.
	minSearchableRunes = 100

	// ocrTimeout bounds a single OCR run over a subset document.
	ocrTimeout = 5 * time.Minute

	// searchabilityProbePages is how many pages are sampled when deciding
	// whether a document needs OCR at all.
	searchabilityProbePages = 5
)

// Engine shells out to ocrmypdf to produce searchable PDFs.
type Engine struct {
	binary string
}

// NewEngine creates an OCR engine. An empty binary name uses "ocrmypdf"
// from PATH.
func NewEngine(binary string) *Engine {
	if binary == "" {
		binary = "ocrmypdf"
	}
	return &Engine{binary: binary}
}

// NeedsOCR samples the first few pages and reports whether any of them
// lacks substantial text. Failing to read a page counts as needing OCR.
func NeedsOCR(doc docinfo.Document) bool {
	limit := doc.TotalPages()
	if limit > searchabilityProbePages {
		limit = searchabilityProbePages
	}

	for page := 1; page <= limit; page++ {
		text, err := doc.PageText(page)
		if err != nil {
			return true
		}
		if len([]rune(strings.TrimSpace(text))) < minSearchableRunes {
			return true
		}
	}
	return false
}

// Run OCRs inputPath into a new searchable PDF and returns its path along
// with a cleanup func that removes it. The cleanup func must be called on
// every exit path of the caller. languages is a Tesseract language string
// as produced by Languages.
func (e *Engine) Run(ctx context.Context, inputPath, languages string) (string, func(), error) {
	tmpDir, err := os.MkdirTemp("", "citegrab-ocr-*")
	if err != nil {
		return "", nil, fmt.Errorf("creating OCR temp dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(tmpDir) }

	outPath := filepath.Join(tmpDir, "searchable.pdf")

	ctx, cancel := context.WithTimeout(ctx, ocrTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.binary, "--force-ocr", "-l", languages, inputPath, outPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		cleanup()
		if ctx.Err() == context.DeadlineExceeded {
			return "", nil, fmt.Errorf("OCR timed out after %s", ocrTimeout)
		}
		return "", nil, fmt.Errorf("running %s: %w: %s", e.binary, err, strings.TrimSpace(string(output)))
	}

	return outPath, cleanup, nil
}
