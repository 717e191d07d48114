package ocr

import "testing"

func TestMapLanguage(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"zh-cn", "chi_sim"},
		{"zh-tw", "chi_tra"},
		{"ja", "jpn"},
		{"de", "deu"},
		{"chi_sim", "chi_sim"}, // already a Tesseract code
		{" FR ", "fra"},
	}

	for _, tt := range tests {
		if got := MapLanguage(tt.code); got != tt.want {
			t.Errorf("MapLanguage(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestLanguages(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
		hint      string
		want      string
	}{
		{"horizontal default", Horizontal, "", "eng+chi_sim"},
		{"horizontal with hint", Horizontal, "ja", "eng+chi_sim+jpn"},
		{"hint already in base", Horizontal, "zh-cn", "eng+chi_sim"},
		{"vertical", Vertical, "ja", "chi_tra_vert+jpn_vert"},
		{"auto", Auto, "", "eng+chi_sim+chi_tra+jpn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Languages(tt.direction, tt.hint); got != tt.want {
				t.Errorf("Languages(%v, %q) = %v, want %v", tt.direction, tt.hint, got, tt.want)
			}
		})
	}
}

func TestDirection_Valid(t *testing.T) {
	for _, d := range []Direction{Horizontal, Vertical, Auto} {
		if !d.Valid() {
			t.Errorf("Valid(%v) = false, want true", d)
		}
	}
	if Direction("diagonal").Valid() {
		t.Error("Valid(diagonal) = true, want false")
	}
}
