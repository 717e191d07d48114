// Package docinfo provides per-page text access for paginated documents.
package docinfo

// Document exposes the page metrics the extraction pipeline works from:
// a page count, full page text, and the text of the footer region.
// Page indices are 1-based throughout.
type Document interface {
	TotalPages() int
	PageText(page int) (string, error)
	FooterText(page int) (string, error)
}
