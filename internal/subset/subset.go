// Package subset assembles temporary page-subset PDFs for downstream
// processing.
package subset

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PageCount returns the number of pages in a PDF file.
func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("counting pages of %s: %w", path, err)
	}
	return n, nil
}

// Extract writes a temporary PDF containing only the given 1-based pages,
// in order, and returns its path with a cleanup func. The cleanup func
// must be called on every exit path of the caller; a leaked subset file is
// a correctness bug, not a cosmetic one.
func Extract(inputPath string, pages []int) (string, func(), error) {
	if len(pages) == 0 {
		return "", nil, fmt.Errorf("no pages selected from %s", inputPath)
	}

	tmpDir, err := os.MkdirTemp("", "citegrab-subset-*")
	if err != nil {
		return "", nil, fmt.Errorf("creating subset temp dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(tmpDir) }

	selected := make([]string, len(pages))
	for i, p := range pages {
		selected[i] = strconv.Itoa(p)
	}

	outPath := filepath.Join(tmpDir, "subset.pdf")
	if err := api.TrimFile(inputPath, outPath, selected, nil); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("extracting pages from %s: %w", inputPath, err)
	}

	return outPath, cleanup, nil
}
