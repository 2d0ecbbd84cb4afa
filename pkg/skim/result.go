package skim

import (
	"tableskim/pkg/errs"
	"tableskim/pkg/types"
)

// StatRow is the atomic output fact: one statistic value for one variable in
// one group. (Group, Variable, Statistic) is unique within a result, since a
// variable has exactly one ColumnType at summary time.
type StatRow struct {
	Group     GroupKey
	Variable  string
	Type      types.ColumnType
	Statistic string
	Value     types.Datum
}

// Result is the assembled output of one Skim call: an ordered long-form
// sequence of StatRows plus metadata about the source. It is immutable once
// returned; Partition and Yank derive read-only views.
type Result struct {
	rows []StatRow

	sourceRows    int
	sourceColumns int
	groupColumns  []string
	typesSeen     []types.ColumnType
	typeFreq      map[types.ColumnType]int
}

// Rows returns the long-form rows in assembly order: groups in first-seen
// order, columns in source order, statistics in spec order.
func (r *Result) Rows() []StatRow {
	out := make([]StatRow, len(r.rows))
	copy(out, r.rows)
	return out
}

// Len returns the total number of StatRows.
func (r *Result) Len() int {
	return len(r.rows)
}

// SourceRows returns the row count of the summarized source.
func (r *Result) SourceRows() int {
	return r.sourceRows
}

// SourceColumns returns the number of summarized columns. Grouping columns
// are not summarized and are not counted.
func (r *Result) SourceColumns() int {
	return r.sourceColumns
}

// GroupColumns returns the grouping column names used, empty if ungrouped.
func (r *Result) GroupColumns() []string {
	out := make([]string, len(r.groupColumns))
	copy(out, r.groupColumns)
	return out
}

// Types returns the distinct column types encountered, in first-seen order
// across the source's columns.
func (r *Result) Types() []types.ColumnType {
	out := make([]types.ColumnType, len(r.typesSeen))
	copy(out, r.typesSeen)
	return out
}

// TypeFrequency returns how many summarized columns had the given type.
func (r *Result) TypeFrequency(t types.ColumnType) int {
	return r.typeFreq[t]
}

// Failures returns one structured error per failed cell, in row order.
// Callers that want to inspect recorded statistic failures programmatically
// get them here instead of scanning cells for the error kind.
func (r *Result) Failures() []error {
	var out []error
	for _, row := range r.rows {
		if !row.Value.IsError() {
			continue
		}
		e := errs.New(errs.CategoryData, errs.CodeStatisticFailure,
			"statistic failed to compute").
			WithDetail("%s on %s: %s", row.Statistic, row.Variable, row.Value.Message())
		e.Operation = "Skim"
		e.Component = "StatisticsComputer"
		out = append(out, e)
	}
	return out
}

// TypeTable is the wide, per-type view of a result: one row per
// (group, variable), one column per statistic name. It is derived from the
// long form and never recomputed from the source.
type TypeTable struct {
	// Type is the column type all entries share.
	Type types.ColumnType

	// Statistics is the ordered union of statistic names seen for this
	// type, in first-seen (spec insertion) order.
	Statistics []string

	// Entries holds one row per (group, variable), in result order.
	Entries []TypeEntry
}

// TypeEntry is one wide row of a TypeTable. Absent cells are simply not in
// the map — sparse, never zero-filled.
type TypeEntry struct {
	Group    GroupKey
	Variable string
	cells    map[string]types.Datum
}

// Cell returns the value for the named statistic and whether it is present.
func (e *TypeEntry) Cell(statistic string) (types.Datum, bool) {
	d, ok := e.cells[statistic]
	return d, ok
}

// Partition splits the result into one wide sub-table per column type. It is
// a pure reshaping of the long form: every StatRow lands in exactly one
// sub-table and none are dropped or duplicated.
func (r *Result) Partition() map[types.ColumnType]*TypeTable {
	out := make(map[types.ColumnType]*TypeTable, len(r.typesSeen))
	for _, t := range r.typesSeen {
		out[t] = r.buildTypeTable(t)
	}
	return out
}

// Yank extracts the wide sub-table for one column type. It fails with a
// YANK_NOT_FOUND error when no summarized column had that type, rather than
// silently returning an empty table.
func (r *Result) Yank(t types.ColumnType) (*TypeTable, error) {
	if r.typeFreq[t] == 0 {
		return nil, errs.New(errs.CategoryUser, errs.CodeYankNotFound,
			"column type not present in result").
			WithDetail("type %q", string(t))
	}
	return r.buildTypeTable(t), nil
}

func (r *Result) buildTypeTable(t types.ColumnType) *TypeTable {
	table := &TypeTable{Type: t}

	statSeen := make(map[string]bool)
	entryIndex := make(map[string]int)

	for _, row := range r.rows {
		if row.Type != t {
			continue
		}
		if !statSeen[row.Statistic] {
			statSeen[row.Statistic] = true
			table.Statistics = append(table.Statistics, row.Statistic)
		}

		id := row.Group.id() + "\x00" + row.Variable
		ei, ok := entryIndex[id]
		if !ok {
			ei = len(table.Entries)
			entryIndex[id] = ei
			table.Entries = append(table.Entries, TypeEntry{
				Group:    row.Group,
				Variable: row.Variable,
				cells:    make(map[string]types.Datum),
			})
		}
		table.Entries[ei].cells[row.Statistic] = row.Value
	}

	return table
}
