package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/junwei/citegrab/internal/citation"
)

func sampleRecord() citation.Record {
	return citation.Record{
		ID:             "smith-2003-title",
		Type:           "article-journal",
		Title:          "A Title & Subtitle",
		Authors:        []citation.Author{{Family: "Smith", Given: "John", Literal: "John Smith"}},
		ContainerTitle: "Journal of Examples",
		Issued:         &citation.Date{Year: 2003, Month: 5},
		Page:           "101-119",
		Volume:         "7",
		Issue:          "2",
	}
}

func TestEncode_JSON(t *testing.T) {
	data, err := Encode(sampleRecord(), JSON)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["container-title"] != "Journal of Examples" {
		t.Errorf("container-title = %v", decoded["container-title"])
	}
	if decoded["type"] != "article-journal" {
		t.Errorf("type = %v", decoded["type"])
	}
}

func TestEncode_YAML(t *testing.T) {
	data, err := Encode(sampleRecord(), YAML)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded["id"] != "smith-2003-title" {
		t.Errorf("id = %v", decoded["id"])
	}
}

func TestToBibTeX_Article(t *testing.T) {
	bib := ToBibTeX(sampleRecord())

	for _, want := range []string{
		"@article{smith-2003-title,",
		"author = {Smith, John}",
		"title = {A Title \\& Subtitle}",
		"journal = {Journal of Examples}",
		"year = {2003}",
		"volume = {7}",
		"number = {2}",
		"pages = {101-119}",
	} {
		if !strings.Contains(bib, want) {
			t.Errorf("BibTeX missing %q:\n%s", want, bib)
		}
	}
}

func TestToBibTeX_ThesisGenre(t *testing.T) {
	rec := citation.Record{
		ID:        "wang-1998-study",
		Type:      "thesis",
		Title:     "A Study",
		Genre:     "Master thesis",
		Publisher: "Some University",
		Issued:    &citation.Date{Year: 1998},
	}

	bib := ToBibTeX(rec)
	if !strings.Contains(bib, "@mastersthesis{") {
		t.Errorf("entry type not mastersthesis:\n%s", bib)
	}
	if !strings.Contains(bib, "school = {Some University}") {
		t.Errorf("publisher not mapped to school:\n%s", bib)
	}

	rec.Genre = "PhD"
	if bib := ToBibTeX(rec); !strings.Contains(bib, "@phdthesis{") {
		t.Errorf("entry type not phdthesis:\n%s", bib)
	}
}

func TestToBibTeX_ChapterUsesBooktitle(t *testing.T) {
	rec := citation.Record{
		ID:             "doe-2010-chapter",
		Type:           "chapter",
		Title:          "A Chapter",
		ContainerTitle: "The Collected Volume",
		Editors:        []citation.Author{{Family: "Editor", Given: "Ed"}},
	}

	bib := ToBibTeX(rec)
	if !strings.Contains(bib, "@incollection{") {
		t.Errorf("entry type not incollection:\n%s", bib)
	}
	if !strings.Contains(bib, "booktitle = {The Collected Volume}") {
		t.Errorf("container not mapped to booktitle:\n%s", bib)
	}
	if !strings.Contains(bib, "editor = {Editor, Ed}") {
		t.Errorf("editor missing:\n%s", bib)
	}
}

func TestToBibTeX_LiteralOnlyAuthor(t *testing.T) {
	rec := citation.Record{
		ID:      "x",
		Type:    "book",
		Title:   "T",
		Authors: []citation.Author{{Literal: "王龘"}},
	}

	bib := ToBibTeX(rec)
	if !strings.Contains(bib, "author = {王龘}") {
		t.Errorf("literal author missing:\n%s", bib)
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	path, err := Write(sampleRecord(), dir, JSON)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if filepath.Base(path) != "smith-2003-title.json" {
		t.Errorf("path = %v, want file named by record id", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("written file missing: %v", err)
	}

	// Writing again overwrites silently.
	if _, err := Write(sampleRecord(), dir, JSON); err != nil {
		t.Errorf("second Write() error = %v, want silent overwrite", err)
	}
}

func TestWrite_NoID(t *testing.T) {
	if _, err := Write(citation.Record{Title: "No ID"}, t.TempDir(), JSON); err == nil {
		t.Error("Write() error = nil for record without id, want error")
	}
}
