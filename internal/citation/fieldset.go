package citation

import "strings"

// FieldSet is a write-once map of extracted field names to values.
// The first value written for a key is the one that is kept; later writes
// for the same key are ignored. This favors values extracted from early
// pages (cover and title pages) over later re-derivations.
type FieldSet map[string]string

// NewFieldSet returns an empty FieldSet.
func NewFieldSet() FieldSet {
	return make(FieldSet)
}

// SetIfAbsent writes value under key unless the key already holds a value.
// Whitespace-only values are ignored. Returns true if the write happened.
func (f FieldSet) SetIfAbsent(key, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	if _, ok := f[key]; ok {
		return false
	}
	f[key] = value
	return true
}

// Get returns the value for key, or "" when absent.
func (f FieldSet) Get(key string) string {
	return f[key]
}

// Has reports whether key holds a value.
func (f FieldSet) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// EssentialSpec lists the fields a document type needs before extraction may
// stop early. Extra, when set, is an additional predicate over the whole set.
type EssentialSpec struct {
	Required []string
	Extra    func(FieldSet) bool
}

// Satisfied reports whether fields meets the spec.
func (s EssentialSpec) Satisfied(fields FieldSet) bool {
	for _, key := range s.Required {
		if !fields.Has(key) {
			return false
		}
	}
	if s.Extra != nil {
		return s.Extra(fields)
	}
	return true
}

// essentialSpecs maps each document type to its early-exit requirements.
// Journals additionally need a volume or an issue number.
var essentialSpecs = map[Type]EssentialSpec{
	Book: {
		Required: []string{"title", "author", "year", "publisher"},
	},
	Thesis: {
		Required: []string{"title", "author", "year", "publisher", "genre"},
	},
	Journal: {
		Required: []string{"title", "author", "container_title", "year", "page_numbers"},
		Extra: func(f FieldSet) bool {
			return f.Has("volume") || f.Has("issue")
		},
	},
	BookChapter: {
		Required: []string{"title", "author", "container_title", "editor", "publisher", "page_numbers"},
	},
}

// EssentialFields returns the early-exit spec for a document type.
// Unknown types get the book spec, the least demanding of the four.
func EssentialFields(t Type) EssentialSpec {
	if spec, ok := essentialSpecs[t]; ok {
		return spec
	}
	return essentialSpecs[Book]
}
