package frame

import "tableskim/pkg/types"

// column is one named, typed column of a Frame. It implements skim.Column.
type column struct {
	name   string
	typ    types.ColumnType
	values []types.Field
}

func (c *column) Name() string {
	return c.name
}

func (c *column) Type() types.ColumnType {
	return c.typ
}

func (c *column) Value(row int) types.Field {
	return c.values[row]
}
