package export

import (
	"fmt"
	"strings"

	"github.com/junwei/citegrab/internal/citation"
)

// ToBibTeX converts a citation record to BibTeX format.
func ToBibTeX(rec citation.Record) string {
	entryType := bibtexEntryType(rec)
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@%s{%s,\n", entryType, rec.ID))

	if len(rec.Authors) > 0 {
		b.WriteString(fmt.Sprintf("  author = {%s},\n", formatNames(rec.Authors)))
	}
	if len(rec.Editors) > 0 {
		b.WriteString(fmt.Sprintf("  editor = {%s},\n", formatNames(rec.Editors)))
	}

	b.WriteString(fmt.Sprintf("  title = {%s},\n", escapeLatex(rec.Title)))

	if rec.ContainerTitle != "" {
		fieldName := "journal"
		if entryType == "incollection" {
			fieldName = "booktitle"
		}
		b.WriteString(fmt.Sprintf("  %s = {%s},\n", fieldName, escapeLatex(rec.ContainerTitle)))
	}

	if rec.Publisher != "" {
		fieldName := "publisher"
		if entryType == "phdthesis" || entryType == "mastersthesis" {
			fieldName = "school"
		}
		b.WriteString(fmt.Sprintf("  %s = {%s},\n", fieldName, escapeLatex(rec.Publisher)))
	}

	if rec.Location != "" {
		b.WriteString(fmt.Sprintf("  address = {%s},\n", escapeLatex(rec.Location)))
	}

	if rec.Issued != nil && rec.Issued.Year > 0 {
		b.WriteString(fmt.Sprintf("  year = {%d},\n", rec.Issued.Year))
		if rec.Issued.Month > 0 {
			b.WriteString(fmt.Sprintf("  month = {%d},\n", rec.Issued.Month))
		}
	}

	if rec.Volume != "" {
		b.WriteString(fmt.Sprintf("  volume = {%s},\n", escapeLatex(rec.Volume)))
	}
	if rec.Issue != "" {
		b.WriteString(fmt.Sprintf("  number = {%s},\n", escapeLatex(rec.Issue)))
	}
	if rec.Page != "" {
		b.WriteString(fmt.Sprintf("  pages = {%s},\n", escapeLatex(rec.Page)))
	}
	if rec.DOI != "" {
		b.WriteString(fmt.Sprintf("  doi = {%s},\n", rec.DOI))
	}

	b.WriteString("}\n")
	return b.String()
}

// bibtexEntryType maps the record's CSL type to a BibTeX entry type.
// Theses split on genre into phdthesis and mastersthesis.
func bibtexEntryType(rec citation.Record) string {
	switch rec.Type {
	case "book":
		return "book"
	case "thesis":
		if strings.Contains(strings.ToLower(rec.Genre), "master") {
			return "mastersthesis"
		}
		return "phdthesis"
	case "chapter":
		return "incollection"
	case "article-journal":
		return "article"
	}
	return "misc"
}

// formatNames formats names in BibTeX style: "Last, First and Last, First".
// Names without structured parts fall back to their literal form.
func formatNames(authors []citation.Author) string {
	var formatted []string
	for _, a := range authors {
		switch {
		case a.Family != "" && a.Given != "":
			formatted = append(formatted, fmt.Sprintf("%s, %s", a.Family, a.Given))
		case a.Family != "":
			formatted = append(formatted, a.Family)
		default:
			formatted = append(formatted, escapeLatex(a.Literal))
		}
	}
	return strings.Join(formatted, " and ")
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	// Order matters: & must be first (before other escapes that might produce &)
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"{", `\{`,
		"}", `\}`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
