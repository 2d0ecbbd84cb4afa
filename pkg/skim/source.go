package skim

import "tableskim/pkg/types"

// Column is one column of a data source. The engine borrows read-only access
// for the duration of a Skim call.
type Column interface {
	// Name returns the column (variable) name.
	Name() string

	// Type returns the semantic type tag driving statistic selection.
	Type() types.ColumnType

	// Value returns the cell at the given row, or nil when missing.
	Value(row int) types.Field
}

// Source is the data source contract consumed by Skim. The engine treats it
// as opaque: it never inspects how rows are stored, only enumerates columns
// and reads cells.
type Source interface {
	// Columns returns the ordered columns.
	Columns() []Column

	// RowCount returns the number of rows shared by all columns.
	RowCount() int
}

// Grouped is an optional extension of Source for sources that carry their own
// grouping metadata. WithGroups overrides it for one call.
type Grouped interface {
	// GroupKeys returns the ordered names of the columns currently
	// grouping this source. Empty means ungrouped.
	GroupKeys() []string
}
