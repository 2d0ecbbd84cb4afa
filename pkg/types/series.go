package types

import "time"

// Series is a read-only view of one column's values for one group of rows.
// The engine builds a Series per (group, column) pair and hands it to each
// statistic function; the function borrows it for the duration of one call
// and must not mutate Values.
//
// A nil entry in Values is a missing value. Statistic functions are expected
// to handle missing entries themselves; the engine does not pre-filter.
type Series struct {
	Name   string
	Type   ColumnType
	Values []Field
}

// Len returns the number of rows in the series, missing entries included.
func (s *Series) Len() int {
	return len(s.Values)
}

// Missing returns the number of missing entries.
func (s *Series) Missing() int {
	n := 0
	for _, v := range s.Values {
		if v == nil {
			n++
		}
	}
	return n
}

// Complete returns the number of present entries.
func (s *Series) Complete() int {
	return len(s.Values) - s.Missing()
}

// CompleteRate returns the fraction of present entries. The second return is
// false for an empty series, where the rate is undefined.
func (s *Series) CompleteRate() (float64, bool) {
	if len(s.Values) == 0 {
		return 0, false
	}
	return float64(s.Complete()) / float64(len(s.Values)), true
}

// Floats returns the present entries that have a numeric rendering.
func (s *Series) Floats() []float64 {
	out := make([]float64, 0, len(s.Values))
	for _, v := range s.Values {
		if v == nil {
			continue
		}
		if f, ok := v.Float(); ok {
			out = append(out, f)
		}
	}
	return out
}

// Strings returns the string rendering of the present entries.
func (s *Series) Strings() []string {
	out := make([]string, 0, len(s.Values))
	for _, v := range s.Values {
		if v == nil {
			continue
		}
		out = append(out, v.String())
	}
	return out
}

// Bools returns the present logical entries.
func (s *Series) Bools() []bool {
	out := make([]bool, 0, len(s.Values))
	for _, v := range s.Values {
		if bf, ok := v.(*BoolField); ok {
			out = append(out, bf.Value)
		}
	}
	return out
}

// Times returns the present time entries.
func (s *Series) Times() []time.Time {
	out := make([]time.Time, 0, len(s.Values))
	for _, v := range s.Values {
		if tf, ok := v.(*TimeField); ok {
			out = append(out, tf.Value)
		}
	}
	return out
}

// Durations returns the present duration entries.
func (s *Series) Durations() []time.Duration {
	out := make([]time.Duration, 0, len(s.Values))
	for _, v := range s.Values {
		if df, ok := v.(*DurationField); ok {
			out = append(out, df.Value)
		}
	}
	return out
}

// Subset returns a new series holding the entries at the given row positions.
// The underlying Fields are shared, not copied.
func (s *Series) Subset(rows []int) *Series {
	values := make([]Field, len(rows))
	for i, r := range rows {
		values[i] = s.Values[r]
	}
	return &Series{Name: s.Name, Type: s.Type, Values: values}
}
