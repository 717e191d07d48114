// Package pagerange parses page-range specs like "1-5,-3" into page sets.
package pagerange

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// ErrEmptyResolution is returned when a non-empty spec resolves to no pages.
var ErrEmptyResolution = errors.New("page range resolves to no pages")

// Resolve expands a range spec into a sorted, deduplicated list of 1-based
// page indices within [1, totalPages].
//
// Supported tokens, comma-separated:
//   - "N"    a single page
//   - "A-B"  an inclusive range (clipped to totalPages)
//   - "-K"   the last K pages
//
// Blank tokens are ignored. Invalid tokens and out-of-bounds pages are
// dropped with a warning rather than failing the whole spec. A spec that is
// non-empty but yields no pages returns ErrEmptyResolution; an empty or
// all-blank spec returns (nil, nil) and the caller chooses a default.
func Resolve(spec string, totalPages int) ([]int, error) {
	pages := make(map[int]bool)
	sawToken := false

	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		sawToken = true

		for _, p := range resolveToken(token, totalPages) {
			pages[p] = true
		}
	}

	if !sawToken {
		return nil, nil
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: %q with %d pages", ErrEmptyResolution, spec, totalPages)
	}

	result := make([]int, 0, len(pages))
	for p := range pages {
		result = append(result, p)
	}
	sort.Ints(result)
	return result, nil
}

// resolveToken expands one token into concrete page indices.
func resolveToken(token string, totalPages int) []int {
	// "-K": the last K pages
	if strings.HasPrefix(token, "-") {
		k, err := strconv.Atoi(token[1:])
		if err != nil || k <= 0 {
			warnToken(token)
			return nil
		}
		start := totalPages - k + 1
		if start < 1 {
			start = 1
		}
		return spanPages(start, totalPages)
	}

	// "A-B": inclusive range
	if idx := strings.Index(token, "-"); idx > 0 {
		a, errA := strconv.Atoi(strings.TrimSpace(token[:idx]))
		b, errB := strconv.Atoi(strings.TrimSpace(token[idx+1:]))
		if errA != nil || errB != nil || a > b || a < 1 {
			warnToken(token)
			return nil
		}
		if b > totalPages {
			b = totalPages
		}
		return spanPages(a, b)
	}

	// "N": single page
	n, err := strconv.Atoi(token)
	if err != nil {
		warnToken(token)
		return nil
	}
	if n < 1 || n > totalPages {
		return nil
	}
	return []int{n}
}

// spanPages returns [from, to] inclusive, or nil for an empty span.
func spanPages(from, to int) []int {
	if from > to {
		return nil
	}
	pages := make([]int, 0, to-from+1)
	for p := from; p <= to; p++ {
		pages = append(pages, p)
	}
	return pages
}

func warnToken(token string) {
	fmt.Fprintf(os.Stderr, "Warning: skipping invalid page range token %q\n", token)
}
