package types

import (
	"strconv"
	"strings"
)

// DatumKind discriminates the value held by a Datum.
type DatumKind int

const (
	// DatumNA marks a statistic that is undefined for its input, such as
	// the mean of an empty column. It is a regular result, not a failure.
	DatumNA DatumKind = iota
	DatumFloat
	DatumInt
	DatumString
	DatumVector
	// DatumError marks a statistic that failed to compute. The message is
	// preserved so partial failures stay visible in the output.
	DatumError
)

// Datum is one output cell of the summary: a scalar, a fixed-size numeric
// vector, the NA marker, or a failure marker. Datums are immutable once built.
type Datum struct {
	kind DatumKind
	f    float64
	i    int64
	s    string
	vec  []float64
}

func NADatum() Datum {
	return Datum{kind: DatumNA}
}

func FloatDatum(v float64) Datum {
	return Datum{kind: DatumFloat, f: v}
}

func IntDatum(v int64) Datum {
	return Datum{kind: DatumInt, i: v}
}

func StringDatum(v string) Datum {
	return Datum{kind: DatumString, s: v}
}

func VectorDatum(v []float64) Datum {
	vec := make([]float64, len(v))
	copy(vec, v)
	return Datum{kind: DatumVector, vec: vec}
}

func ErrorDatum(msg string) Datum {
	return Datum{kind: DatumError, s: msg}
}

func (d Datum) Kind() DatumKind {
	return d.kind
}

func (d Datum) IsNA() bool {
	return d.kind == DatumNA
}

func (d Datum) IsError() bool {
	return d.kind == DatumError
}

// Message returns the failure message of an error datum, or "" otherwise.
func (d Datum) Message() string {
	if d.kind != DatumError {
		return ""
	}
	return d.s
}

// Float returns the scalar numeric value. The second return is false unless
// the datum is a float or int scalar.
func (d Datum) Float() (float64, bool) {
	switch d.kind {
	case DatumFloat:
		return d.f, true
	case DatumInt:
		return float64(d.i), true
	default:
		return 0, false
	}
}

// Int returns the integer value. The second return is false unless the datum
// is an int scalar.
func (d Datum) Int() (int64, bool) {
	if d.kind != DatumInt {
		return 0, false
	}
	return d.i, true
}

// Vector returns a copy of the vector value, or nil for non-vector datums.
func (d Datum) Vector() []float64 {
	if d.kind != DatumVector {
		return nil
	}
	out := make([]float64, len(d.vec))
	copy(out, d.vec)
	return out
}

// Equal reports whether two datums hold the same kind and value. Error datums
// compare by message.
func (d Datum) Equal(other Datum) bool {
	if d.kind != other.kind {
		return false
	}
	switch d.kind {
	case DatumNA:
		return true
	case DatumFloat:
		return d.f == other.f
	case DatumInt:
		return d.i == other.i
	case DatumString, DatumError:
		return d.s == other.s
	case DatumVector:
		if len(d.vec) != len(other.vec) {
			return false
		}
		for i := range d.vec {
			if d.vec[i] != other.vec[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the datum for display. Errors render as a sentinel that is
// clearly distinct from any computed value.
func (d Datum) String() string {
	switch d.kind {
	case DatumNA:
		return "NA"
	case DatumFloat:
		return strconv.FormatFloat(d.f, 'g', 4, 64)
	case DatumInt:
		return strconv.FormatInt(d.i, 10)
	case DatumString:
		return d.s
	case DatumVector:
		parts := make([]string, len(d.vec))
		for i, v := range d.vec {
			parts[i] = strconv.FormatFloat(v, 'g', 4, 64)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case DatumError:
		return "!ERR"
	default:
		return "NA"
	}
}
