// Package pagenum infers printed page numbers from document footers.
package pagenum

import (
	"regexp"
	"strconv"

	"github.com/junwei/citegrab/internal/docinfo"
)

const (
	// scanPages is how many pages are examined at each end of the document.
	scanPages = 3

	// maxPlausible is the largest footer number accepted as a page number.
	maxPlausible = 9999
)

var numberPattern = regexp.MustCompile(`\b(\d+)\b`)

// Span holds the inferred first and last printed page numbers.
// Zero means the value could not be inferred; that is not an error.
type Span struct {
	First int
	Last  int
}

// Infer examines footers near both ends of the document and returns the
// printed page span. Used for journals and book chapters, whose printed
// numbering usually differs from the physical page indices.
func Infer(doc docinfo.Document) Span {
	return Span{
		First: inferFirst(doc),
		Last:  inferLast(doc),
	}
}

// inferFirst scans the first few pages in order. The first page whose
// footer yields a plausible number n gives first = n - offset, where
// offset is that page's 0-based distance from the document start.
func inferFirst(doc docinfo.Document) int {
	limit := scanPages
	if doc.TotalPages() < limit {
		limit = doc.TotalPages()
	}

	for i := 0; i < limit; i++ {
		footer, err := doc.FooterText(i + 1)
		if err != nil {
			continue
		}
		if nums := plausibleNumbers(footer); len(nums) > 0 {
			return nums[0] - i
		}
	}
	return 0
}

// inferLast scans the last few pages walking backward. The first footer
// with plausible numbers wins; within that footer the maximum is taken,
// since a footer strip with several numerals usually contains the page's
// own number alongside smaller incidental digits.
func inferLast(doc docinfo.Document) int {
	total := doc.TotalPages()
	limit := scanPages
	if total < limit {
		limit = total
	}

	for i := 0; i < limit; i++ {
		footer, err := doc.FooterText(total - i)
		if err != nil {
			continue
		}
		nums := plausibleNumbers(footer)
		if len(nums) == 0 {
			continue
		}
		max := nums[0]
		for _, n := range nums[1:] {
			if n > max {
				max = n
			}
		}
		return max
	}
	return 0
}

// plausibleNumbers extracts numeric tokens within [1, maxPlausible].
func plausibleNumbers(text string) []int {
	var nums []int
	for _, m := range numberPattern.FindAllString(text, -1) {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if n >= 1 && n <= maxPlausible {
			nums = append(nums, n)
		}
	}
	return nums
}
