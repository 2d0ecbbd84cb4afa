package types

// Kind identifies the physical representation of a value stored in a column.
// It is independent of the semantic ColumnType: a "factor" column and a
// "character" column both hold KindString values.
type Kind int

const (
	KindInt64 Kind = iota
	KindFloat64
	KindString
	KindBool
	KindTime
	KindDuration
	KindList
)

// String returns a string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindInt64:
		return "INT64"
	case KindFloat64:
		return "FLOAT64"
	case KindString:
		return "STRING"
	case KindBool:
		return "BOOL"
	case KindTime:
		return "TIME"
	case KindDuration:
		return "DURATION"
	case KindList:
		return "LIST"
	default:
		return "UNKNOWN"
	}
}

// ColumnType is the semantic type tag of a column. It drives which statistic
// set the summary engine selects for the column. The set is open: any string
// is a valid tag, and third parties may register their own tags alongside the
// built-in ones below.
type ColumnType string

const (
	Numeric   ColumnType = "numeric"
	Character ColumnType = "character"
	Factor    ColumnType = "factor"
	Ordered   ColumnType = "ordered"
	Logical   ColumnType = "logical"
	Date      ColumnType = "date"
	Datetime  ColumnType = "datetime"
	Difftime  ColumnType = "difftime"
	List      ColumnType = "list"
)
