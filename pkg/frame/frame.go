// Package frame is an in-memory columnar data container implementing the
// summary engine's data source contract. It exists so the engine has
// something concrete to summarize — CSV files, test fixtures, hand-built
// tables — while the engine itself stays ignorant of storage.
package frame

import (
	"math"
	"time"

	"tableskim/pkg/errs"
	"tableskim/pkg/skim"
	"tableskim/pkg/types"
)

// Frame holds ordered, named, uniformly-long columns plus optional grouping
// metadata. The zero-column Frame has zero rows until the first column fixes
// the row count.
type Frame struct {
	cols    []*column
	byName  map[string]int
	rows    int
	hasRows bool
	groups  []string
}

// New creates an empty frame.
func New() *Frame {
	return &Frame{byName: make(map[string]int)}
}

// RowCount returns the number of rows shared by all columns.
func (f *Frame) RowCount() int {
	return f.rows
}

// Columns returns the ordered columns as the engine's Column views.
func (f *Frame) Columns() []skim.Column {
	out := make([]skim.Column, len(f.cols))
	for i, c := range f.cols {
		out[i] = c
	}
	return out
}

// GroupKeys returns the names of the columns currently grouping this frame.
func (f *Frame) GroupKeys() []string {
	out := make([]string, len(f.groups))
	copy(out, f.groups)
	return out
}

// GroupBy returns a view of the frame grouped by the named columns. Column
// data is shared, not copied. Unknown names fail.
func (f *Frame) GroupBy(cols ...string) (*Frame, error) {
	for _, name := range cols {
		if _, ok := f.byName[name]; !ok {
			return nil, errs.New(errs.CategoryUser, errs.CodeUnknownGroupCol,
				"grouping column not found in frame").
				WithDetail("column %q", name)
		}
	}
	g := *f
	g.groups = cols
	return &g, nil
}

// Ungroup returns a view of the frame with grouping metadata cleared.
func (f *Frame) Ungroup() *Frame {
	g := *f
	g.groups = nil
	return &g
}

// AddColumn appends a column with explicit values; a nil Field is a missing
// entry. The first column fixes the frame's row count and later columns must
// match it.
func (f *Frame) AddColumn(name string, t types.ColumnType, values []types.Field) error {
	if _, ok := f.byName[name]; ok {
		return errs.New(errs.CategoryUser, errs.CodeInvalidSource,
			"duplicate column name").WithDetail("column %q", name)
	}
	if f.hasRows && len(values) != f.rows {
		return errs.New(errs.CategoryUser, errs.CodeInvalidSource,
			"column length mismatch").
			WithDetail("column %q has %d rows, frame has %d", name, len(values), f.rows)
	}

	f.byName[name] = len(f.cols)
	f.cols = append(f.cols, &column{name: name, typ: t, values: values})
	f.rows = len(values)
	f.hasRows = true
	return nil
}

// AddFloats appends a numeric column; NaN entries are missing.
func (f *Frame) AddFloats(name string, values []float64) error {
	fields := make([]types.Field, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		fields[i] = types.NewFloat64Field(v)
	}
	return f.AddColumn(name, types.Numeric, fields)
}

// AddInts appends a numeric column of integers with no missing entries.
func (f *Frame) AddInts(name string, values []int64) error {
	fields := make([]types.Field, len(values))
	for i, v := range values {
		fields[i] = types.NewInt64Field(v)
	}
	return f.AddColumn(name, types.Numeric, fields)
}

// AddStrings appends a character column. The empty string is a value here;
// use AddColumn with nil entries for missing data.
func (f *Frame) AddStrings(name string, values []string) error {
	fields := make([]types.Field, len(values))
	for i, v := range values {
		fields[i] = types.NewStringField(v)
	}
	return f.AddColumn(name, types.Character, fields)
}

// AddFactor appends a factor column (ordered when ordered is true); empty
// strings are missing entries.
func (f *Frame) AddFactor(name string, values []string, ordered bool) error {
	fields := make([]types.Field, len(values))
	for i, v := range values {
		if v == "" {
			continue
		}
		fields[i] = types.NewStringField(v)
	}
	t := types.Factor
	if ordered {
		t = types.Ordered
	}
	return f.AddColumn(name, t, fields)
}

// AddBools appends a logical column with no missing entries.
func (f *Frame) AddBools(name string, values []bool) error {
	fields := make([]types.Field, len(values))
	for i, v := range values {
		fields[i] = types.NewBoolField(v)
	}
	return f.AddColumn(name, types.Logical, fields)
}

// AddTimes appends a temporal column of the given type (date or datetime);
// zero times are missing entries.
func (f *Frame) AddTimes(name string, t types.ColumnType, values []time.Time) error {
	fields := make([]types.Field, len(values))
	for i, v := range values {
		if v.IsZero() {
			continue
		}
		fields[i] = types.NewTimeField(v)
	}
	return f.AddColumn(name, t, fields)
}

// AddDurations appends a difftime column with no missing entries.
func (f *Frame) AddDurations(name string, values []time.Duration) error {
	fields := make([]types.Field, len(values))
	for i, v := range values {
		fields[i] = types.NewDurationField(v)
	}
	return f.AddColumn(name, types.Difftime, fields)
}

// AddLists appends a list-valued column; nil element slices are missing
// entries.
func (f *Frame) AddLists(name string, values [][]types.Field) error {
	fields := make([]types.Field, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		fields[i] = types.NewListField(v)
	}
	return f.AddColumn(name, types.List, fields)
}
