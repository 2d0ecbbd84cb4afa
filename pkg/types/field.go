package types

// Field is a single cell value in a column. A missing value is represented
// as a nil Field in its Series, never as a sentinel Field.
type Field interface {
	// Kind reports the physical representation of the value.
	Kind() Kind

	// String renders the value for display and for group-key identity.
	String() string

	// Equals reports whether other holds the same value of the same kind.
	Equals(other Field) bool

	// Float returns the numeric rendering of the value and whether one
	// exists. Statistic functions use it to lift uniform columns into
	// float samples without switching on concrete types.
	Float() (float64, bool)
}
