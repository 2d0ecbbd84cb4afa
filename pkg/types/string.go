package types

// StringField represents a textual value. Both character and factor columns
// hold StringFields; the semantic difference lives in the column's ColumnType.
type StringField struct {
	Value string
}

func NewStringField(value string) *StringField {
	return &StringField{Value: value}
}

func (f *StringField) Kind() Kind {
	return KindString
}

func (f *StringField) String() string {
	return f.Value
}

func (f *StringField) Equals(other Field) bool {
	otherField, ok := other.(*StringField)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

func (f *StringField) Float() (float64, bool) {
	return 0, false
}
