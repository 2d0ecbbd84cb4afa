package skim

import "tableskim/pkg/types"

// StatFunc computes one statistic over one column's values. It must be pure,
// must not mutate the series, and must handle missing entries itself. It may
// return an error; the engine records the failure for that one cell and keeps
// going.
type StatFunc func(s *types.Series) (types.Datum, error)

// Shape declares what a named statistic produces. The shape is fixed at
// registration time; the engine validates results against it rather than
// inferring anything from the returned value.
type Shape int

const (
	// ShapeScalar statistics produce a single scalar (or NA).
	ShapeScalar Shape = iota
	// ShapeVector statistics produce a numeric vector of a fixed width
	// (or NA), e.g. multi-bin histogram counts.
	ShapeVector
)

// Statistic is one named entry of a SkimmerSpec.
type Statistic struct {
	Name  string
	Shape Shape
	Width int // vector width; 0 for scalars
	Fn    StatFunc
}

// SkimmerSpec is an ordered set of named statistic functions for one
// ColumnType. Insertion order is preserved and defines the output column
// order for that type. Statistic names are unique within a spec: re-adding a
// name replaces its function in place, keeping its position.
type SkimmerSpec struct {
	typ   types.ColumnType
	stats []Statistic
	index map[string]int
}

// NewSpec creates an empty spec for the given column type.
func NewSpec(t types.ColumnType) *SkimmerSpec {
	return &SkimmerSpec{
		typ:   t,
		index: make(map[string]int),
	}
}

// Type returns the column type this spec is associated with.
func (sp *SkimmerSpec) Type() types.ColumnType {
	return sp.typ
}

// Add registers a scalar statistic and returns the spec for chaining.
func (sp *SkimmerSpec) Add(name string, fn StatFunc) *SkimmerSpec {
	return sp.put(Statistic{Name: name, Shape: ShapeScalar, Fn: fn})
}

// AddVector registers a fixed-width vector statistic and returns the spec for
// chaining.
func (sp *SkimmerSpec) AddVector(name string, width int, fn StatFunc) *SkimmerSpec {
	return sp.put(Statistic{Name: name, Shape: ShapeVector, Width: width, Fn: fn})
}

func (sp *SkimmerSpec) put(st Statistic) *SkimmerSpec {
	if i, ok := sp.index[st.Name]; ok {
		sp.stats[i] = st
		return sp
	}
	sp.index[st.Name] = len(sp.stats)
	sp.stats = append(sp.stats, st)
	return sp
}

// Len returns the number of statistics in the spec.
func (sp *SkimmerSpec) Len() int {
	return len(sp.stats)
}

// Names returns the statistic names in insertion order.
func (sp *SkimmerSpec) Names() []string {
	names := make([]string, len(sp.stats))
	for i, st := range sp.stats {
		names[i] = st.Name
	}
	return names
}

// Statistics returns the ordered statistics. The returned slice is a copy;
// the spec itself is not exposed to mutation through it.
func (sp *SkimmerSpec) Statistics() []Statistic {
	out := make([]Statistic, len(sp.stats))
	copy(out, sp.stats)
	return out
}

// Clone returns a deep copy of the spec, useful as a starting point for a
// call-local override that tweaks a default set.
func (sp *SkimmerSpec) Clone() *SkimmerSpec {
	out := NewSpec(sp.typ)
	for _, st := range sp.stats {
		out.put(st)
	}
	return out
}
