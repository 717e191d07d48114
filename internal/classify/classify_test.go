package classify

import (
	"testing"

	"github.com/junwei/citegrab/internal/citation"
)

// fakeDoc serves canned page and footer text for tests.
type fakeDoc struct {
	pages   int
	text    map[int]string
	footers map[int]string
}

func (d *fakeDoc) TotalPages() int { return d.pages }

func (d *fakeDoc) PageText(page int) (string, error) {
	return d.text[page], nil
}

func (d *fakeDoc) FooterText(page int) (string, error) {
	return d.footers[page], nil
}

func TestClassify_LongDocuments(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType citation.Type
		wantRule string
	}{
		{"plain book", "A History of Something. Chapter One.", citation.Book, RuleBookDefault},
		{"doctoral dissertation", "Submitted as a doctoral dissertation in 2004.", citation.Thesis, RuleThesisKeyword},
		{"chinese thesis term", "本文是一篇博士论文", citation.Thesis, RuleThesisKeyword},
		{"keyword inside word does not count", "masterpiece of the genre", citation.Book, RuleBookDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &fakeDoc{pages: 80, text: map[int]string{1: tt.text}}
			got := Classify(doc, "")
			if got.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", got.Type, tt.wantType)
			}
			if got.Rule != tt.wantRule {
				t.Errorf("Rule = %v, want %v", got.Rule, tt.wantRule)
			}
		})
	}
}

func TestClassify_ShortDocuments(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType citation.Type
		wantRule string
	}{
		{
			"chapter knockout wins over journal keyword",
			"Edited by A. Editor. Published in the Journal of Tests.",
			citation.BookChapter, RuleChapterKnockout,
		},
		{
			"journal knockout",
			"ISSN 1234-5678, continuing series",
			citation.Journal, RuleJournalKnockout,
		},
		{
			"volume and issue",
			"Volume 12, Issue 3, Spring",
			citation.Journal, RuleVolumeIssue,
		},
		{
			"nothing matches defaults to journal",
			"An essay about something.",
			citation.Journal, RuleJournalDefault,
		},
		{
			"cjk publisher knockout",
			"东京大学出版社 2003",
			citation.BookChapter, RuleChapterKnockout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &fakeDoc{pages: 20, text: map[int]string{1: tt.text}}
			got := Classify(doc, "")
			if got.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", got.Type, tt.wantType)
			}
			if got.Rule != tt.wantRule {
				t.Errorf("Rule = %v, want %v", got.Rule, tt.wantRule)
			}
		})
	}
}

func TestClassify_HighFirstPrintedPage(t *testing.T) {
	doc := &fakeDoc{
		pages:   12,
		text:    map[int]string{1: "An essay about something."},
		footers: map[int]string{1: "245"},
	}

	got := Classify(doc, "")
	if got.Type != citation.Journal {
		t.Errorf("Type = %v, want journal", got.Type)
	}
	if got.Rule != RuleHighFirstPage {
		t.Errorf("Rule = %v, want %v", got.Rule, RuleHighFirstPage)
	}
}

func TestClassify_Override(t *testing.T) {
	doc := &fakeDoc{pages: 20, text: map[int]string{1: "edited by someone"}}

	got := Classify(doc, citation.Thesis)
	if got.Type != citation.Thesis {
		t.Errorf("Type = %v, want thesis", got.Type)
	}
	if got.Rule != RuleOverride {
		t.Errorf("Rule = %v, want %v", got.Rule, RuleOverride)
	}
}
