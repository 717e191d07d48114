package pipeline

import (
	"fmt"

	"github.com/junwei/citegrab/internal/docinfo"
)

// mappedDocument presents a subset PDF under the page numbering of the
// document it was cut from. Classification and page-number inference ask
// for original page numbers; the subset stores those pages sequentially.
type mappedDocument struct {
	inner    docinfo.Document
	total    int
	toSubset map[int]int
}

func newMappedDocument(inner docinfo.Document, originalPages []int, totalPages int) *mappedDocument {
	m := &mappedDocument{
		inner:    inner,
		total:    totalPages,
		toSubset: make(map[int]int, len(originalPages)),
	}
	for i, page := range originalPages {
		m.toSubset[page] = i + 1
	}
	return m
}

func (m *mappedDocument) TotalPages() int {
	return m.total
}

func (m *mappedDocument) PageText(page int) (string, error) {
	sub, ok := m.toSubset[page]
	if !ok {
		return "", fmt.Errorf("page %d not in extracted subset", page)
	}
	return m.inner.PageText(sub)
}

func (m *mappedDocument) FooterText(page int) (string, error) {
	sub, ok := m.toSubset[page]
	if !ok {
		return "", fmt.Errorf("page %d not in extracted subset", page)
	}
	return m.inner.FooterText(sub)
}
