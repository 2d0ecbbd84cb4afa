package types

import "time"

// TimeField represents an instant. Date and datetime columns both hold
// TimeFields; a date column carries midnight instants.
type TimeField struct {
	Value time.Time
}

func NewTimeField(value time.Time) *TimeField {
	return &TimeField{Value: value}
}

func (f *TimeField) Kind() Kind {
	return KindTime
}

func (f *TimeField) String() string {
	return f.Value.Format(time.RFC3339)
}

func (f *TimeField) Equals(other Field) bool {
	otherField, ok := other.(*TimeField)
	if !ok {
		return false
	}
	return f.Value.Equal(otherField.Value)
}

// Float returns the Unix time in seconds.
func (f *TimeField) Float() (float64, bool) {
	return float64(f.Value.UnixNano()) / float64(time.Second), true
}

// DurationField represents an elapsed time, the value kind of difftime columns.
type DurationField struct {
	Value time.Duration
}

func NewDurationField(value time.Duration) *DurationField {
	return &DurationField{Value: value}
}

func (f *DurationField) Kind() Kind {
	return KindDuration
}

func (f *DurationField) String() string {
	return f.Value.String()
}

func (f *DurationField) Equals(other Field) bool {
	otherField, ok := other.(*DurationField)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

// Float returns the duration in seconds.
func (f *DurationField) Float() (float64, bool) {
	return f.Value.Seconds(), true
}
