package stats

import "tableskim/pkg/types"

func listLengths(s *types.Series) []int {
	var out []int
	for _, v := range s.Values {
		if lf, ok := v.(*types.ListField); ok {
			out = append(out, lf.Len())
		}
	}
	return out
}

// MinListLen is the shortest present list's length, NA when there are none.
func MinListLen(s *types.Series) (types.Datum, error) {
	lens := listLengths(s)
	if len(lens) == 0 {
		return types.NADatum(), nil
	}
	min := lens[0]
	for _, n := range lens[1:] {
		if n < min {
			min = n
		}
	}
	return types.IntDatum(int64(min)), nil
}

// MaxListLen is the longest present list's length, NA when there are none.
func MaxListLen(s *types.Series) (types.Datum, error) {
	lens := listLengths(s)
	if len(lens) == 0 {
		return types.NADatum(), nil
	}
	max := lens[0]
	for _, n := range lens[1:] {
		if n > max {
			max = n
		}
	}
	return types.IntDatum(int64(max)), nil
}
