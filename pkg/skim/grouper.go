package skim

import (
	"strings"

	"tableskim/pkg/errs"
	"tableskim/pkg/types"
)

// GroupKey is the ordered tuple of grouping-column values identifying one
// group. The zero GroupKey (no columns) is the implicit single group of an
// ungrouped summary.
type GroupKey struct {
	Columns []string
	Values  []types.Field
}

// IsZero reports whether this is the implicit ungrouped key.
func (k GroupKey) IsZero() bool {
	return len(k.Columns) == 0
}

// String renders the key for display, e.g. "region=EU, tier=gold".
func (k GroupKey) String() string {
	if k.IsZero() {
		return ""
	}
	parts := make([]string, len(k.Columns))
	for i, c := range k.Columns {
		v := "NA"
		if k.Values[i] != nil {
			v = k.Values[i].String()
		}
		parts[i] = c + "=" + v
	}
	return strings.Join(parts, ", ")
}

// id returns the identity string of the key. Two rows belong to the same
// group iff their ids are equal. Missing grouping values form their own
// group, marked by a byte that cannot appear in a rendered value.
func (k GroupKey) id() string {
	if k.IsZero() {
		return ""
	}
	parts := make([]string, len(k.Values))
	for i, v := range k.Values {
		if v == nil {
			parts[i] = "\x01"
			continue
		}
		parts[i] = v.String()
	}
	return strings.Join(parts, "\x00")
}

// group pairs a key with the row positions belonging to it. A nil rows slice
// on the implicit ungrouped key means "all rows".
type group struct {
	key  GroupKey
	rows []int
}

// partitionGroups splits the source's rows by the values of the named
// grouping columns, in first-appearance order of distinct key tuples. With no
// keys it returns the single implicit group covering every row.
func partitionGroups(src Source, keys []string) ([]group, error) {
	if len(keys) == 0 {
		return []group{{key: GroupKey{}}}, nil
	}

	cols := src.Columns()
	byName := make(map[string]Column, len(cols))
	for _, c := range cols {
		byName[c.Name()] = c
	}

	groupCols := make([]Column, len(keys))
	for i, name := range keys {
		c, ok := byName[name]
		if !ok {
			return nil, errs.New(errs.CategoryUser, errs.CodeUnknownGroupCol,
				"grouping column not found in source").
				WithDetail("column %q", name)
		}
		groupCols[i] = c
	}

	index := make(map[string]int)
	var groups []group

	for row := 0; row < src.RowCount(); row++ {
		values := make([]types.Field, len(groupCols))
		for i, c := range groupCols {
			values[i] = c.Value(row)
		}
		key := GroupKey{Columns: keys, Values: values}
		id := key.id()

		gi, ok := index[id]
		if !ok {
			gi = len(groups)
			index[id] = gi
			groups = append(groups, group{key: key})
		}
		groups[gi].rows = append(groups[gi].rows, row)
	}

	// A grouped source with zero rows still yields a well-formed result:
	// one empty implicit group keyed by the grouping columns.
	if len(groups) == 0 {
		groups = append(groups, group{
			key:  GroupKey{Columns: keys, Values: make([]types.Field, len(keys))},
			rows: []int{},
		})
	}

	return groups, nil
}

// seriesFor materializes the values of col for the given group as a Series.
func seriesFor(col Column, rowCount int, g group) *types.Series {
	rows := g.rows
	if rows == nil && g.key.IsZero() {
		values := make([]types.Field, rowCount)
		for i := 0; i < rowCount; i++ {
			values[i] = col.Value(i)
		}
		return &types.Series{Name: col.Name(), Type: col.Type(), Values: values}
	}

	values := make([]types.Field, len(rows))
	for i, r := range rows {
		values[i] = col.Value(r)
	}
	return &types.Series{Name: col.Name(), Type: col.Type(), Values: values}
}
