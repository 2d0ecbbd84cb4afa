package stats

import (
	"tableskim/pkg/render"
	"tableskim/pkg/types"
)

// MeanBool is the fraction of present logical values that are true, NA when
// there are none.
func MeanBool(s *types.Series) (types.Datum, error) {
	bools := s.Bools()
	if len(bools) == 0 {
		return types.NADatum(), nil
	}
	n := 0
	for _, b := range bools {
		if b {
			n++
		}
	}
	return types.FloatDatum(float64(n) / float64(len(bools))), nil
}

// CountBool renders the true/false tally in the compact TRU/FAL form, NA
// when no values are present.
func CountBool(s *types.Series) (types.Datum, error) {
	var labels []string
	var counts []int
	index := map[bool]int{}

	for _, b := range s.Bools() {
		i, ok := index[b]
		if !ok {
			i = len(labels)
			index[b] = i
			label := "FAL"
			if b {
				label = "TRU"
			}
			labels = append(labels, label)
			counts = append(counts, 0)
		}
		counts[i]++
	}

	if len(labels) == 0 {
		return types.NADatum(), nil
	}
	return types.StringDatum(render.TopCounts(labels, counts, 2)), nil
}
