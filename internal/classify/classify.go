// Package classify decides which document type a paginated document is.
package classify

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/junwei/citegrab/internal/citation"
	"github.com/junwei/citegrab/internal/docinfo"
	"github.com/junwei/citegrab/internal/pagenum"
)

// longDocThreshold separates books and theses from journal articles and
// book chapters. Shorter historical revisions of this heuristic used 50.
const longDocThreshold = 70

// firstPageJournalThreshold: a printed first page this high means the
// document sits inside a continuously paginated volume, a journal signal.
const firstPageJournalThreshold = 100

// scanTextPages bounds how many pages of text feed the keyword rules.
const scanTextPages = 5

// Result is the classifier outcome: the document type and the identifier
// of the rule that produced it.
type Result struct {
	Type citation.Type `json:"type"`
	Rule string        `json:"rule"`
}

// Rule identifiers, recorded for diagnostics.
const (
	RuleOverride        = "override"
	RuleThesisKeyword   = "thesis-keyword"
	RuleBookDefault     = "book-default"
	RuleChapterKnockout = "chapter-knockout"
	RuleJournalKnockout = "journal-knockout"
	RuleVolumeIssue     = "volume-issue"
	RuleHighFirstPage   = "high-first-page"
	RuleJournalDefault  = "journal-default"
)

// thesisPattern matches thesis vocabulary as whole words, English plus
// CJK equivalents. CJK terms get no \b guard since they are not
// word-delimited in running text.
var thesisPattern = regexp.MustCompile(
	`(?i)\b(thesis|dissertation|phd|master)\b|论文|博士|硕士`)

// chapterKnockouts and journalKnockouts are substring lexicons evaluated
// against lowercased text. Editorial metadata is a stronger chapter signal
// than journal vocabulary, which can appear incidentally in running text,
// so the chapter list is checked first.
var chapterKnockouts = []string{
	"edited by", "editor", "isbn", "press", "herausgeber", "éditeur", "主编", "出版社",
}

var journalKnockouts = []string{
	"issn", "journal", "proceedings", "zeitschrift", "revue", "学报", "期刊",
}

var (
	volumePattern = regexp.MustCompile(`(?i)\b(volume|vol\.)`)
	issuePattern  = regexp.MustCompile(`(?i)\b(issue|no\.)`)
)

// shortDocRule is one knockout rule for the journal/bookchapter decision.
// Rules are evaluated in order; the first predicate to fire wins.
type shortDocRule struct {
	id      string
	match   func(text string, span pagenum.Span) bool
	verdict citation.Type
}

var shortDocRules = []shortDocRule{
	{
		id:      RuleChapterKnockout,
		match:   func(text string, _ pagenum.Span) bool { return containsAny(text, chapterKnockouts) },
		verdict: citation.BookChapter,
	},
	{
		id:      RuleJournalKnockout,
		match:   func(text string, _ pagenum.Span) bool { return containsAny(text, journalKnockouts) },
		verdict: citation.Journal,
	},
	{
		id: RuleVolumeIssue,
		match: func(text string, _ pagenum.Span) bool {
			return volumePattern.MatchString(text) && issuePattern.MatchString(text)
		},
		verdict: citation.Journal,
	},
	{
		id: RuleHighFirstPage,
		match: func(_ string, span pagenum.Span) bool {
			return span.First > firstPageJournalThreshold
		},
		verdict: citation.Journal,
	},
}

// Classify determines the document type. An explicit non-empty override
// short-circuits everything. Classification never fails: any ambiguity
// resolves to a documented default, and the firing rule is recorded.
func Classify(doc docinfo.Document, override citation.Type) Result {
	if override != "" {
		return Result{Type: override, Rule: RuleOverride}
	}

	if doc.TotalPages() >= longDocThreshold {
		return classifyLong(doc)
	}
	return classifyShort(doc)
}

// classifyLong separates theses from books by scanning for thesis
// vocabulary in the available page text.
func classifyLong(doc docinfo.Document) Result {
	text := gatherText(doc)
	if thesisPattern.MatchString(text) {
		return Result{Type: citation.Thesis, Rule: RuleThesisKeyword}
	}
	return Result{Type: citation.Book, Rule: RuleBookDefault}
}

// classifyShort runs the ordered knockout rules for short documents.
func classifyShort(doc docinfo.Document) Result {
	text := strings.ToLower(gatherText(doc))

	// The page-number span is only needed by the numeric rule, but it is
	// cheap relative to the text scan and keeps the rule table uniform.
	span := pagenum.Infer(doc)

	for _, rule := range shortDocRules {
		if rule.match(text, span) {
			return Result{Type: rule.verdict, Rule: rule.id}
		}
	}
	return Result{Type: citation.Journal, Rule: RuleJournalDefault}
}

// gatherText concatenates the text of the first few pages. A page that
// fails to yield text degrades the scan rather than aborting it.
func gatherText(doc docinfo.Document) string {
	limit := doc.TotalPages()
	if limit > scanTextPages {
		limit = scanTextPages
	}

	var b strings.Builder
	for page := 1; page <= limit; page++ {
		text, err := doc.PageText(page)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: reading page %d for classification: %v\n", page, err)
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
