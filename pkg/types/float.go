package types

import "strconv"

// Float64Field represents a 64-bit floating point value
type Float64Field struct {
	Value float64
}

func NewFloat64Field(value float64) *Float64Field {
	return &Float64Field{Value: value}
}

func (f *Float64Field) Kind() Kind {
	return KindFloat64
}

func (f *Float64Field) String() string {
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

func (f *Float64Field) Equals(other Field) bool {
	otherField, ok := other.(*Float64Field)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

func (f *Float64Field) Float() (float64, bool) {
	return f.Value, true
}
