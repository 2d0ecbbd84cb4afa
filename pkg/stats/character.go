package stats

import (
	"strings"

	"tableskim/pkg/types"
)

// MinLength is the length in runes of the shortest present string, NA when
// there are none.
func MinLength(s *types.Series) (types.Datum, error) {
	strs := s.Strings()
	if len(strs) == 0 {
		return types.NADatum(), nil
	}
	min := len([]rune(strs[0]))
	for _, v := range strs[1:] {
		if n := len([]rune(v)); n < min {
			min = n
		}
	}
	return types.IntDatum(int64(min)), nil
}

// MaxLength is the length in runes of the longest present string, NA when
// there are none.
func MaxLength(s *types.Series) (types.Datum, error) {
	strs := s.Strings()
	if len(strs) == 0 {
		return types.NADatum(), nil
	}
	max := 0
	for _, v := range strs {
		if n := len([]rune(v)); n > max {
			max = n
		}
	}
	return types.IntDatum(int64(max)), nil
}

// Empty counts present values that are the empty string. An empty string is
// a value, not a missing entry.
func Empty(s *types.Series) (types.Datum, error) {
	n := 0
	for _, v := range s.Strings() {
		if v == "" {
			n++
		}
	}
	return types.IntDatum(int64(n)), nil
}

// Whitespace counts present non-empty values made of whitespace only.
func Whitespace(s *types.Series) (types.Datum, error) {
	n := 0
	for _, v := range s.Strings() {
		if v != "" && strings.TrimSpace(v) == "" {
			n++
		}
	}
	return types.IntDatum(int64(n)), nil
}
