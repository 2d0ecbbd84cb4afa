package types

// BoolField represents a logical value
type BoolField struct {
	Value bool
}

func NewBoolField(value bool) *BoolField {
	return &BoolField{Value: value}
}

func (f *BoolField) Kind() Kind {
	return KindBool
}

func (f *BoolField) String() string {
	if f.Value {
		return "TRUE"
	}
	return "FALSE"
}

func (f *BoolField) Equals(other Field) bool {
	otherField, ok := other.(*BoolField)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

// Float renders TRUE as 1 and FALSE as 0, which makes the mean of a logical
// column its fraction of true values.
func (f *BoolField) Float() (float64, bool) {
	if f.Value {
		return 1, true
	}
	return 0, true
}
