package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/junwei/citegrab/internal/citation"
	"github.com/junwei/citegrab/internal/config"
	"github.com/junwei/citegrab/internal/storage"
)

const (
	// ListTitleMaxLen truncates titles in list command output.
	ListTitleMaxLen = 50

	// TextWrapWidth is the wrap width for detail views.
	TextWrapWidth = 60
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// mustLoadConfig loads the global config or exits.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// mustOpenCatalog opens the extraction catalog or exits.
func mustOpenCatalog() *storage.Catalog {
	cat, err := storage.Open(config.CatalogPath())
	if err != nil {
		exitWithError(ExitError, "opening catalog: %v", err)
	}
	return cat
}

// printRecordDetail prints a citation record in human-readable form.
func printRecordDetail(rec citation.Record) {
	fmt.Println(rec.ID)
	fmt.Println(strings.Repeat("═", 70))
	fmt.Println()

	fmt.Printf("Type:      %s\n", rec.Type)
	fmt.Printf("Title:     %s\n", wrapText(rec.Title, TextWrapWidth, "           "))

	if len(rec.Authors) > 0 {
		fmt.Printf("Authors:   %s\n", wrapText(formatAuthors(rec.Authors), TextWrapWidth, "           "))
	}
	if len(rec.Editors) > 0 {
		fmt.Printf("Editors:   %s\n", formatAuthors(rec.Editors))
	}
	if rec.ContainerTitle != "" {
		fmt.Printf("In:        %s\n", rec.ContainerTitle)
	}
	if rec.Issued != nil {
		fmt.Printf("Date:      %s\n", formatDate(*rec.Issued))
	}
	if rec.Publisher != "" {
		fmt.Printf("Publisher: %s\n", rec.Publisher)
	}
	if rec.Location != "" {
		fmt.Printf("Place:     %s\n", rec.Location)
	}
	if rec.Volume != "" || rec.Issue != "" {
		fmt.Printf("Vol/Iss:   %s/%s\n", rec.Volume, rec.Issue)
	}
	if rec.Page != "" {
		fmt.Printf("Pages:     %s\n", rec.Page)
	}
	if rec.Genre != "" {
		fmt.Printf("Genre:     %s\n", rec.Genre)
	}
	if rec.DOI != "" {
		fmt.Printf("DOI:       %s\n", rec.DOI)
	}
}

func formatAuthors(authors []citation.Author) string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		switch {
		case a.Given != "" && a.Family != "":
			names = append(names, a.Given+" "+a.Family)
		case a.Family != "":
			names = append(names, a.Family)
		default:
			names = append(names, a.Literal)
		}
	}
	return strings.Join(names, ", ")
}

func formatDate(d citation.Date) string {
	out := fmt.Sprintf("%d", d.Year)
	if d.Month > 0 {
		out = fmt.Sprintf("%d-%02d", d.Year, d.Month)
		if d.Day > 0 {
			out = fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day)
		}
	}
	return out
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// wrapText wraps text to the specified width with indentation on subsequent lines.
func wrapText(text string, width int, indent string) string {
	if len(text) <= width {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		if currentLine == "" {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n"+indent)
}
