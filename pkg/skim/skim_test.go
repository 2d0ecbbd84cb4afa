package skim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"tableskim/pkg/errs"
	"tableskim/pkg/types"
)

// memColumn and memSource are minimal in-memory implementations of the
// source contract for engine tests.
type memColumn struct {
	name   string
	typ    types.ColumnType
	values []types.Field
}

func (c *memColumn) Name() string              { return c.name }
func (c *memColumn) Type() types.ColumnType    { return c.typ }
func (c *memColumn) Value(row int) types.Field { return c.values[row] }

type memSource struct {
	cols []Column
	rows int
	keys []string
}

func (s *memSource) Columns() []Column   { return s.cols }
func (s *memSource) RowCount() int       { return s.rows }
func (s *memSource) GroupKeys() []string { return s.keys }

func floatColumn(name string, values ...float64) *memColumn {
	fields := make([]types.Field, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		fields[i] = types.NewFloat64Field(v)
	}
	return &memColumn{name: name, typ: types.Numeric, values: fields}
}

func stringColumn(name string, values ...string) *memColumn {
	fields := make([]types.Field, len(values))
	for i, v := range values {
		fields[i] = types.NewStringField(v)
	}
	return &memColumn{name: name, typ: types.Character, values: fields}
}

func sourceOf(cols ...*memColumn) *memSource {
	s := &memSource{}
	for _, c := range cols {
		s.cols = append(s.cols, c)
		s.rows = len(c.values)
	}
	return s
}

func countStat(s *types.Series) (types.Datum, error) {
	return types.IntDatum(int64(s.Len())), nil
}

func meanStat(s *types.Series) (types.Datum, error) {
	xs := s.Floats()
	if len(xs) == 0 {
		return types.NADatum(), nil
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return types.FloatDatum(sum / float64(len(xs))), nil
}

func testRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(NewSpec(types.Numeric).
		Add("count", countStat).
		Add("mean", meanStat))
	reg.Register(NewSpec(types.Character).
		Add("count", countStat))
	return reg
}

func TestSkimRowCount(t *testing.T) {
	src := sourceOf(
		floatColumn("x", 1, 2, 3),
		floatColumn("y", 4, 5, 6),
		stringColumn("s", "a", "b", "c"),
	)

	res, err := Skim(context.Background(), src, WithRegistry(testRegistry()))
	if err != nil {
		t.Fatalf("Skim failed: %v", err)
	}

	// 2 numeric columns x 2 stats + 1 character column x 1 stat.
	if res.Len() != 5 {
		t.Errorf("Expected 5 stat rows, got %d", res.Len())
	}
	if res.SourceRows() != 3 {
		t.Errorf("Expected 3 source rows, got %d", res.SourceRows())
	}
	if res.SourceColumns() != 3 {
		t.Errorf("Expected 3 source columns, got %d", res.SourceColumns())
	}
}

func TestSkimRowOrder(t *testing.T) {
	src := sourceOf(floatColumn("x", 1, 2), stringColumn("s", "a", "b"))

	res, err := Skim(context.Background(), src, WithRegistry(testRegistry()))
	if err != nil {
		t.Fatalf("Skim failed: %v", err)
	}

	want := []struct {
		variable  string
		statistic string
	}{
		{"x", "count"},
		{"x", "mean"},
		{"s", "count"},
	}
	rows := res.Rows()
	if len(rows) != len(want) {
		t.Fatalf("Expected %d rows, got %d", len(want), len(rows))
	}
	for i, w := range want {
		if rows[i].Variable != w.variable || rows[i].Statistic != w.statistic {
			t.Errorf("Row %d: expected (%s, %s), got (%s, %s)",
				i, w.variable, w.statistic, rows[i].Variable, rows[i].Statistic)
		}
	}
}

func TestSkimNilSource(t *testing.T) {
	_, err := Skim(context.Background(), nil)
	if err == nil {
		t.Fatal("Expected error for nil source")
	}
	if !errs.HasCode(err, errs.CodeInvalidSource) {
		t.Errorf("Expected INVALID_SOURCE, got %v", err)
	}
}

func TestSkimEmptySource(t *testing.T) {
	src := sourceOf(floatColumn("x"))

	res, err := Skim(context.Background(), src, WithRegistry(testRegistry()))
	if err != nil {
		t.Fatalf("Skim failed: %v", err)
	}

	if res.Len() != 2 {
		t.Fatalf("Expected 2 stat rows, got %d", res.Len())
	}
	rows := res.Rows()
	if count, _ := rows[0].Value.Int(); count != 0 {
		t.Errorf("Expected count 0 on empty source, got %d", count)
	}
	if !rows[1].Value.IsNA() {
		t.Errorf("Expected NA mean on empty source, got %v", rows[1].Value)
	}
}

func TestSkimGrouping(t *testing.T) {
	src := sourceOf(
		stringColumn("g", "A", "B", "A"),
		floatColumn("x", 1, 2, 5),
	)

	res, err := Skim(context.Background(), src,
		WithRegistry(testRegistry()), WithGroups("g"))
	if err != nil {
		t.Fatalf("Skim failed: %v", err)
	}

	// Grouping column is consumed, not summarized.
	if res.SourceColumns() != 1 {
		t.Errorf("Expected 1 summarized column, got %d", res.SourceColumns())
	}

	// 2 groups x 1 column x 2 stats.
	rows := res.Rows()
	if len(rows) != 4 {
		t.Fatalf("Expected 4 stat rows, got %d", len(rows))
	}

	// Groups appear in first-seen order: A before B.
	if got := rows[0].Group.String(); got != "g=A" {
		t.Errorf("Expected first group g=A, got %q", got)
	}
	if got := rows[2].Group.String(); got != "g=B" {
		t.Errorf("Expected second group g=B, got %q", got)
	}

	// A holds rows 0 and 2, B holds row 1.
	if mean, _ := rows[1].Value.Float(); mean != 3 {
		t.Errorf("Expected mean 3 for group A, got %v", mean)
	}
	if mean, _ := rows[3].Value.Float(); mean != 2 {
		t.Errorf("Expected mean 2 for group B, got %v", mean)
	}
}

func TestSkimGroupedSource(t *testing.T) {
	src := sourceOf(
		stringColumn("g", "A", "B"),
		floatColumn("x", 1, 2),
	)
	src.keys = []string{"g"}

	res, err := Skim(context.Background(), src, WithRegistry(testRegistry()))
	if err != nil {
		t.Fatalf("Skim failed: %v", err)
	}
	if got := res.GroupColumns(); len(got) != 1 || got[0] != "g" {
		t.Errorf("Expected source grouping to apply, got %v", got)
	}

	// WithGroups() with no names forces an ungrouped summary.
	res, err = Skim(context.Background(), src,
		WithRegistry(testRegistry()), WithGroups())
	if err != nil {
		t.Fatalf("Skim failed: %v", err)
	}
	if got := res.GroupColumns(); len(got) != 0 {
		t.Errorf("Expected WithGroups() to force ungrouped, got %v", got)
	}
	if res.SourceColumns() != 2 {
		t.Errorf("Expected 2 summarized columns when ungrouped, got %d", res.SourceColumns())
	}
}

func TestSkimUnknownGroupColumn(t *testing.T) {
	src := sourceOf(floatColumn("x", 1, 2))

	_, err := Skim(context.Background(), src,
		WithRegistry(testRegistry()), WithGroups("missing"))
	if err == nil {
		t.Fatal("Expected error for unknown grouping column")
	}
	if !errs.HasCode(err, errs.CodeUnknownGroupCol) {
		t.Errorf("Expected UNKNOWN_GROUP_COLUMN, got %v", err)
	}
}

func TestSkimMissingGroupValues(t *testing.T) {
	g := &memColumn{name: "g", typ: types.Character, values: []types.Field{
		types.NewStringField("A"), nil, nil,
	}}
	src := sourceOf(g, floatColumn("x", 1, 2, 3))

	res, err := Skim(context.Background(), src,
		WithRegistry(testRegistry()), WithGroups("g"))
	if err != nil {
		t.Fatalf("Skim failed: %v", err)
	}

	// Missing grouping values form their own group.
	rows := res.Rows()
	if len(rows) != 4 {
		t.Fatalf("Expected 2 groups x 2 stats, got %d rows", len(rows))
	}
	if got := rows[2].Group.String(); got != "g=NA" {
		t.Errorf("Expected missing-value group rendered as g=NA, got %q", got)
	}
	if mean, _ := rows[3].Value.Float(); mean != 2.5 {
		t.Errorf("Expected mean 2.5 for the missing-value group, got %v", mean)
	}
}

func TestSkimStatisticFailureIsolation(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewSpec(types.Numeric).
		Add("count", countStat).
		Add("bad", func(s *types.Series) (types.Datum, error) {
			return types.Datum{}, errors.New("division by zero")
		}).
		Add("worse", func(s *types.Series) (types.Datum, error) {
			panic("index out of range")
		}).
		Add("mean", meanStat))

	src := sourceOf(floatColumn("x", 1, 2, 3))

	res, err := Skim(context.Background(), src, WithRegistry(reg))
	if err != nil {
		t.Fatalf("Expected statistic failures not to abort the call, got %v", err)
	}

	rows := res.Rows()
	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}

	if rows[0].Value.IsError() {
		t.Errorf("count should not have failed: %v", rows[0].Value.Message())
	}
	if !rows[1].Value.IsError() {
		t.Error("Expected error datum for failing statistic")
	} else if rows[1].Value.Message() != "division by zero" {
		t.Errorf("Expected original error message, got %q", rows[1].Value.Message())
	}
	if !rows[2].Value.IsError() {
		t.Error("Expected error datum for panicking statistic")
	}
	if mean, _ := rows[3].Value.Float(); mean != 2 {
		t.Errorf("Expected later statistics to keep running, got mean %v", mean)
	}
}

func TestSkimShapeValidation(t *testing.T) {
	tests := []struct {
		name        string
		spec        *SkimmerSpec
		expectError bool
	}{
		{
			name: "scalar returning vector",
			spec: NewSpec(types.Numeric).Add("s", func(s *types.Series) (types.Datum, error) {
				return types.VectorDatum([]float64{1, 2}), nil
			}),
			expectError: true,
		},
		{
			name: "vector returning scalar",
			spec: NewSpec(types.Numeric).AddVector("v", 3, func(s *types.Series) (types.Datum, error) {
				return types.FloatDatum(1), nil
			}),
			expectError: true,
		},
		{
			name: "vector wrong width",
			spec: NewSpec(types.Numeric).AddVector("v", 3, func(s *types.Series) (types.Datum, error) {
				return types.VectorDatum([]float64{1, 2}), nil
			}),
			expectError: true,
		},
		{
			name: "vector right width",
			spec: NewSpec(types.Numeric).AddVector("v", 2, func(s *types.Series) (types.Datum, error) {
				return types.VectorDatum([]float64{1, 2}), nil
			}),
			expectError: false,
		},
		{
			name: "NA satisfies any shape",
			spec: NewSpec(types.Numeric).AddVector("v", 3, func(s *types.Series) (types.Datum, error) {
				return types.NADatum(), nil
			}),
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			reg.Register(tt.spec)
			src := sourceOf(floatColumn("x", 1, 2))

			res, err := Skim(context.Background(), src, WithRegistry(reg))
			if err != nil {
				t.Fatalf("Skim failed: %v", err)
			}
			got := res.Rows()[0].Value.IsError()
			if got != tt.expectError {
				t.Errorf("Expected error=%v, got %v (%v)",
					tt.expectError, got, res.Rows()[0].Value)
			}
		})
	}
}

func TestSkimOverride(t *testing.T) {
	reg := testRegistry()
	override := NewSpec(types.Numeric).Add("count", countStat)

	src := sourceOf(floatColumn("x", 1, 2, 3))

	res, err := Skim(context.Background(), src,
		WithRegistry(reg), WithOverride(types.Numeric, override))
	if err != nil {
		t.Fatalf("Skim failed: %v", err)
	}

	// The override replaces the registered spec wholesale for this call.
	if res.Len() != 1 {
		t.Errorf("Expected 1 row from the override spec, got %d", res.Len())
	}
	if res.Rows()[0].Statistic != "count" {
		t.Errorf("Expected count, got %s", res.Rows()[0].Statistic)
	}

	// The registry itself is untouched.
	if got := reg.Lookup(types.Numeric).Len(); got != 2 {
		t.Errorf("Expected registry spec unchanged with 2 stats, got %d", got)
	}
}

func TestSkimParallelMatchesSequential(t *testing.T) {
	cols := []*memColumn{stringColumn("g", "A", "B", "A", "B", "C", "A")}
	for i := 0; i < 6; i++ {
		cols = append(cols, floatColumn(fmt.Sprintf("x%d", i),
			float64(i), float64(i)+1, float64(i)+2, 4, 5, 6))
	}
	src := sourceOf(cols...)

	seq, err := Skim(context.Background(), src,
		WithRegistry(testRegistry()), WithGroups("g"))
	if err != nil {
		t.Fatalf("Sequential skim failed: %v", err)
	}

	par, err := Skim(context.Background(), src,
		WithRegistry(testRegistry()), WithGroups("g"), WithWorkers(4))
	if err != nil {
		t.Fatalf("Parallel skim failed: %v", err)
	}

	seqRows, parRows := seq.Rows(), par.Rows()
	if len(seqRows) != len(parRows) {
		t.Fatalf("Row count mismatch: %d vs %d", len(seqRows), len(parRows))
	}
	for i := range seqRows {
		if seqRows[i].Variable != parRows[i].Variable ||
			seqRows[i].Statistic != parRows[i].Statistic ||
			!seqRows[i].Value.Equal(parRows[i].Value) {
			t.Errorf("Row %d differs: %+v vs %+v", i, seqRows[i], parRows[i])
		}
	}
}

func TestSkimCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := sourceOf(floatColumn("x", 1, 2, 3))

	if _, err := Skim(ctx, src, WithRegistry(testRegistry())); err == nil {
		t.Error("Expected cancelled context to abort the sequential path")
	}
	if _, err := Skim(ctx, src, WithRegistry(testRegistry()), WithWorkers(2)); err == nil {
		t.Error("Expected cancelled context to abort the parallel path")
	}
}

func TestSkimZeroRowGroupedSource(t *testing.T) {
	src := sourceOf(stringColumn("g"), floatColumn("x"))

	res, err := Skim(context.Background(), src,
		WithRegistry(testRegistry()), WithGroups("g"))
	if err != nil {
		t.Fatalf("Skim failed: %v", err)
	}
	if res.Len() != 2 {
		t.Errorf("Expected one empty group with 2 stats, got %d rows", res.Len())
	}
	if count, _ := res.Rows()[0].Value.Int(); count != 0 {
		t.Errorf("Expected count 0, got %d", count)
	}
}

func TestSkimTypeMetadata(t *testing.T) {
	src := sourceOf(
		floatColumn("x", 1),
		stringColumn("s", "a"),
		floatColumn("y", 2),
	)

	res, err := Skim(context.Background(), src, WithRegistry(testRegistry()))
	if err != nil {
		t.Fatalf("Skim failed: %v", err)
	}

	seen := res.Types()
	if len(seen) != 2 || seen[0] != types.Numeric || seen[1] != types.Character {
		t.Errorf("Expected types in first-seen order [numeric character], got %v", seen)
	}
	if res.TypeFrequency(types.Numeric) != 2 {
		t.Errorf("Expected 2 numeric columns, got %d", res.TypeFrequency(types.Numeric))
	}
	if res.TypeFrequency(types.Logical) != 0 {
		t.Errorf("Expected 0 logical columns, got %d", res.TypeFrequency(types.Logical))
	}
}
