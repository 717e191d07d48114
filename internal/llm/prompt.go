package llm

import (
	"fmt"
	"strings"

	"github.com/junwei/citegrab/internal/citation"
)

// fieldHint describes one field the model is asked to produce.
type fieldHint struct {
	name string
	desc string
}

// Field descriptions carry bilingual hints since source documents are
// frequently Chinese.
var commonFields = []fieldHint{
	{"author", "author name(s), separated by semicolons; keep Chinese names in original order 作者姓名"},
	{"title", "document title 标题"},
	{"year", "publication year 出版年份"},
	{"date", "full publication date if printed, e.g. 2003-05-12"},
	{"publisher", "publisher name 出版社"},
	{"location", "publication place 出版地"},
	{"doi", "DOI if printed"},
}

var fieldsByType = map[citation.Type][]fieldHint{
	citation.Book: {
		{"volume", "volume number for multi-volume works 卷号"},
	},
	citation.Thesis: {
		{"genre", "thesis kind: PhD or Master 博士或硕士"},
	},
	citation.Journal: {
		{"container_title", "journal name 期刊名称"},
		{"volume", "volume number 卷号"},
		{"issue", "issue number 期号"},
		{"page_numbers", "page span, e.g. 101-119 页码"},
	},
	citation.BookChapter: {
		{"container_title", "title of the containing book 书籍名称"},
		{"editor", "editor name(s) of the containing book 主编"},
		{"page_numbers", "page span of the chapter 页码"},
	},
}

// intros set the framing per document type; books and theses are read off
// the copyright page, articles off the first page and running heads.
var intros = map[citation.Type]string{
	citation.Book:        "Analyze the bibliographic information of this book, likely on its copyright page.",
	citation.Thesis:      "Analyze the bibliographic information of this thesis, likely on its title page.",
	citation.Journal:     "Analyze the bibliographic information of this journal article.",
	citation.BookChapter: "Analyze the bibliographic information of this chapter from an edited volume.",
}

// buildPrompt assembles the extraction prompt for a document type.
func buildPrompt(accumulated string, docType citation.Type) string {
	hints := append(append([]fieldHint{}, commonFields...), fieldsByType[docType]...)

	var fieldLines strings.Builder
	for _, h := range hints {
		fieldLines.WriteString(fmt.Sprintf("  %s: %s\n", h.name, h.desc))
	}

	intro := intros[docType]
	if intro == "" {
		intro = "Analyze the bibliographic information of this document."
	}

	return fmt.Sprintf(`%s The text may be Chinese or English (文本可能是中文或英文), and may contain OCR noise.

Extract these fields:
%s
Output format: a JSON object mapping field names to string values.
Use "N/A" for any field not present in the text. Do not guess.
Return ONLY the JSON object, no other text.

Document text:
%s`, intro, fieldLines.String(), accumulated)
}
