package builder

import (
	"testing"

	"github.com/junwei/citegrab/internal/citation"
)

func TestBuild_FieldRenaming(t *testing.T) {
	fields := citation.FieldSet{
		"title":        "Deep Learning for Botany",
		"journal_name": "Journal of Computational Botany",
		"page_numbers": "101–119",
		"volume":       "7",
	}

	rec := Build(fields, citation.Journal)

	if rec.Type != "article-journal" {
		t.Errorf("Type = %q, want article-journal", rec.Type)
	}
	if rec.ContainerTitle != "Journal of Computational Botany" {
		t.Errorf("ContainerTitle = %q", rec.ContainerTitle)
	}
	if rec.Page != "101-119" {
		t.Errorf("Page = %q, want normalized dash", rec.Page)
	}
}

func TestBuild_DateParsing(t *testing.T) {
	tests := []struct {
		name      string
		fields    citation.FieldSet
		wantYear  int
		wantMonth int
		wantDay   int
	}{
		{
			"full iso date",
			citation.FieldSet{"date": "2003-05-12"},
			2003, 5, 12,
		},
		{
			"unparseable date falls back to embedded year",
			citation.FieldSet{"date": "sometime in 1987, spring"},
			1987, 0, 0,
		},
		{
			"year field only",
			citation.FieldSet{"year": "1999"},
			1999, 0, 0,
		},
		{
			"cjk date",
			citation.FieldSet{"date": "2003年5月12日"},
			2003, 5, 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Build(tt.fields, citation.Book)
			if rec.Issued == nil {
				t.Fatal("Issued = nil, want date")
			}
			if rec.Issued.Year != tt.wantYear || rec.Issued.Month != tt.wantMonth || rec.Issued.Day != tt.wantDay {
				t.Errorf("Issued = %+v, want %d-%d-%d", *rec.Issued, tt.wantYear, tt.wantMonth, tt.wantDay)
			}
		})
	}
}

func TestBuild_NoDateOmitted(t *testing.T) {
	rec := Build(citation.FieldSet{"title": "Undated"}, citation.Book)
	if rec.Issued != nil {
		t.Errorf("Issued = %+v, want nil when no date information", rec.Issued)
	}
}

func TestBuild_DeterministicID(t *testing.T) {
	fields := citation.FieldSet{
		"title":  "Quantum Gardens",
		"author": "Alice Womack",
		"year":   "2010",
	}

	a := Build(fields, citation.Book)
	b := Build(fields, citation.Book)

	if a.ID != b.ID {
		t.Errorf("ID not deterministic: %q vs %q", a.ID, b.ID)
	}
	if a.ID != "womack-2010-quantum" {
		t.Errorf("ID = %q, want womack-2010-quantum", a.ID)
	}
}

func TestBuild_IDFromAvailableComponents(t *testing.T) {
	// No author: the slug joins only what exists.
	rec := Build(citation.FieldSet{"title": "Solitary Work", "year": "1995"}, citation.Book)
	if rec.ID != "1995-solitary" {
		t.Errorf("ID = %q, want 1995-solitary", rec.ID)
	}
}

func TestBuild_RandomFallbackID(t *testing.T) {
	a := Build(citation.FieldSet{"publisher": "Ghost Press"}, citation.Book)
	b := Build(citation.FieldSet{"publisher": "Ghost Press"}, citation.Book)

	if a.ID == "" || b.ID == "" {
		t.Fatal("fallback ID is empty")
	}
	if a.ID == b.ID {
		t.Error("fallback IDs collided; expected random ids")
	}
}

func TestBuild_AuthorsAndEditors(t *testing.T) {
	fields := citation.FieldSet{
		"title":  "Chapters of Things",
		"author": "John Smith; Jane Doe",
		"editor": "Carol Editor",
	}

	rec := Build(fields, citation.BookChapter)

	if len(rec.Authors) != 2 {
		t.Fatalf("Authors = %d, want 2", len(rec.Authors))
	}
	if rec.Authors[0].Family != "Smith" {
		t.Errorf("first author family = %q, want Smith", rec.Authors[0].Family)
	}
	if len(rec.Editors) != 1 || rec.Editors[0].Family != "Editor" {
		t.Errorf("Editors = %+v, want one record with family Editor", rec.Editors)
	}
	if rec.Type != "chapter" {
		t.Errorf("Type = %q, want chapter", rec.Type)
	}
}

func TestBuild_DOINormalized(t *testing.T) {
	rec := Build(citation.FieldSet{
		"title": "Linked",
		"doi":   "https://doi.org/10.1234/ABC.5678",
	}, citation.Journal)

	if rec.DOI != "10.1234/abc.5678" {
		t.Errorf("DOI = %q, want 10.1234/abc.5678", rec.DOI)
	}
}
