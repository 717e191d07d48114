package docinfo

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// footerFraction is the share of page height treated as the footer
	// region, measured from the bottom edge.
	footerFraction = 0.18

	// defaultPageHeight is used when a page carries no usable MediaBox
	// (US Letter height in points).
	defaultPageHeight = 792.0
)

// PDFDocument reads page text from a PDF file.
type PDFDocument struct {
	file   *os.File
	reader *pdf.Reader
	path   string
}

// OpenPDF opens a PDF for page-level text access.
// The caller must Close the returned document.
func OpenPDF(path string) (*PDFDocument, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	return &PDFDocument{file: f, reader: r, path: path}, nil
}

// Close releases the underlying file.
func (d *PDFDocument) Close() error {
	return d.file.Close()
}

// Path returns the file path the document was opened from.
func (d *PDFDocument) Path() string {
	return d.path
}

// TotalPages returns the number of pages.
func (d *PDFDocument) TotalPages() int {
	return d.reader.NumPage()
}

// PageText returns the full plain text of a page. Pages the PDF library
// cannot decode yield empty text rather than an error, so that one broken
// page does not abort a whole extraction.
func (d *PDFDocument) PageText(page int) (string, error) {
	if page < 1 || page > d.reader.NumPage() {
		return "", fmt.Errorf("page %d out of range [1, %d]", page, d.reader.NumPage())
	}

	p := d.reader.Page(page)
	if p.V.IsNull() {
		return "", nil
	}

	text, err := p.GetPlainText(nil)
	if err != nil {
		return "", nil
	}
	return text, nil
}

// FooterText returns the text in the bottom region of a page, assembled
// from positioned text fragments. PDF coordinates grow upward, so the
// footer is the band with the smallest Y values.
func (d *PDFDocument) FooterText(page int) (string, error) {
	if page < 1 || page > d.reader.NumPage() {
		return "", fmt.Errorf("page %d out of range [1, %d]", page, d.reader.NumPage())
	}

	p := d.reader.Page(page)
	if p.V.IsNull() {
		return "", nil
	}

	height := pageHeight(p)
	cutoff := height * footerFraction

	content := p.Content()
	var frags []pdf.Text
	for _, t := range content.Text {
		if t.Y <= cutoff {
			frags = append(frags, t)
		}
	}
	if len(frags) == 0 {
		return "", nil
	}

	// Reading order: top line first, left to right within a line.
	sort.Slice(frags, func(i, j int) bool {
		if frags[i].Y != frags[j].Y {
			return frags[i].Y > frags[j].Y
		}
		return frags[i].X < frags[j].X
	})

	var b strings.Builder
	lastY := frags[0].Y
	for _, t := range frags {
		if t.Y != lastY {
			b.WriteString("\n")
			lastY = t.Y
		}
		b.WriteString(t.S)
	}
	return b.String(), nil
}

// pageHeight reads the page height from the MediaBox, falling back to a
// standard page height when the box is missing or malformed.
func pageHeight(p pdf.Page) float64 {
	box := p.V.Key("MediaBox")
	if box.IsNull() || box.Len() < 4 {
		return defaultPageHeight
	}
	y0 := box.Index(1).Float64()
	y1 := box.Index(3).Float64()
	if y1 <= y0 {
		return defaultPageHeight
	}
	return y1 - y0
}
