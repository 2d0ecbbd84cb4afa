package types

import "strings"

// ListField represents a list-valued cell. Elements may themselves be missing
// (nil), matching the column-level convention.
type ListField struct {
	Elems []Field
}

func NewListField(elems []Field) *ListField {
	return &ListField{Elems: elems}
}

func (f *ListField) Kind() Kind {
	return KindList
}

func (f *ListField) Len() int {
	return len(f.Elems)
}

func (f *ListField) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, e := range f.Elems {
		if i > 0 {
			b.WriteString(", ")
		}
		if e == nil {
			b.WriteString("NA")
			continue
		}
		b.WriteString(e.String())
	}
	b.WriteString("]")
	return b.String()
}

func (f *ListField) Equals(other Field) bool {
	otherField, ok := other.(*ListField)
	if !ok || len(f.Elems) != len(otherField.Elems) {
		return false
	}
	for i, e := range f.Elems {
		o := otherField.Elems[i]
		if e == nil || o == nil {
			if e != o {
				return false
			}
			continue
		}
		if !e.Equals(o) {
			return false
		}
	}
	return true
}

func (f *ListField) Float() (float64, bool) {
	return 0, false
}
