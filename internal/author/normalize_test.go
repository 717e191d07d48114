package author

import "testing"

func TestNormalize_LatinNames(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Record
	}{
		{
			"two token name",
			"John Smith",
			[]Record{{Family: "Smith", Given: "John", Literal: "John Smith"}},
		},
		{
			"middle names join into given",
			"Johann Sebastian Bach",
			[]Record{{Family: "Bach", Given: "Johann Sebastian", Literal: "Johann Sebastian Bach"}},
		},
		{
			"single token stays literal",
			"Aristotle",
			[]Record{{Literal: "Aristotle"}},
		},
		{
			"semicolon separated list",
			"John Smith; Jane Doe",
			[]Record{
				{Family: "Smith", Given: "John", Literal: "John Smith"},
				{Family: "Doe", Given: "Jane", Literal: "Jane Doe"},
			},
		},
		{
			"comma is a separator not an inversion",
			"Smith, John",
			[]Record{
				{Literal: "Smith"},
				{Literal: "John"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("Normalize(%q) returned %d records, want %d", tt.raw, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("record %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalize_CJKNames(t *testing.T) {
	got := Normalize("王小明 李华")
	if len(got) != 2 {
		t.Fatalf("Normalize() returned %d records, want 2", len(got))
	}

	if got[0].Literal != "王小明" {
		t.Errorf("record 0 literal = %q, want 王小明", got[0].Literal)
	}
	if got[0].Family != "Wang" || got[0].Given != "Xiaoming" {
		t.Errorf("record 0 = %+v, want family Wang given Xiaoming", got[0])
	}

	if got[1].Literal != "李华" {
		t.Errorf("record 1 literal = %q, want 李华", got[1].Literal)
	}
	if got[1].Family != "Li" || got[1].Given != "Hua" {
		t.Errorf("record 1 = %+v, want family Li given Hua", got[1])
	}
}

func TestNormalize_CJKTwoCharacterSurname(t *testing.T) {
	// A four-character name takes the first two characters as the surname.
	got := Normalize("欧阳小明")
	if len(got) != 1 {
		t.Fatalf("Normalize() returned %d records, want 1", len(got))
	}
	if got[0].Family != "Ouyang" {
		t.Errorf("Family = %q, want Ouyang", got[0].Family)
	}
	if got[0].Given != "Xiaoming" {
		t.Errorf("Given = %q, want Xiaoming", got[0].Given)
	}
}

func TestNormalize_CJKTransliterationFailure(t *testing.T) {
	// 龘 is not in the transliteration table, so the record stays literal-only.
	got := Normalize("王龘")
	if len(got) != 1 {
		t.Fatalf("Normalize() returned %d records, want 1", len(got))
	}
	if got[0].Family != "" || got[0].Given != "" {
		t.Errorf("record = %+v, want literal-only", got[0])
	}
	if got[0].Literal != "王龘" {
		t.Errorf("Literal = %q, want 王龘", got[0].Literal)
	}
}

func TestNormalize_FullWidthComma(t *testing.T) {
	got := Normalize("王小明，李华")
	if len(got) != 2 {
		t.Fatalf("Normalize() returned %d records, want 2", len(got))
	}
	for i, want := range []string{"王小明", "李华"} {
		if got[i].Literal != want {
			t.Errorf("record %d literal = %q, want %q", i, got[i].Literal, want)
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize(""); got != nil {
		t.Errorf("Normalize(\"\") = %v, want nil", got)
	}
}
