package stats

import "tableskim/pkg/types"

// NMissing counts the missing entries of any column.
func NMissing(s *types.Series) (types.Datum, error) {
	return types.IntDatum(int64(s.Missing())), nil
}

// CompleteRate is the fraction of present entries, NA for an empty column.
func CompleteRate(s *types.Series) (types.Datum, error) {
	rate, ok := s.CompleteRate()
	if !ok {
		return types.NADatum(), nil
	}
	return types.FloatDatum(rate), nil
}

// NUnique counts the distinct present values of any column, compared by
// their string rendering.
func NUnique(s *types.Series) (types.Datum, error) {
	seen := make(map[string]struct{})
	for _, v := range s.Values {
		if v == nil {
			continue
		}
		seen[v.String()] = struct{}{}
	}
	return types.IntDatum(int64(len(seen))), nil
}

// firstSeenCounts tallies the present values of a series in first-appearance
// order, the ordering top-counts uses to break frequency ties.
func firstSeenCounts(s *types.Series) (labels []string, counts []int) {
	index := make(map[string]int)
	for _, v := range s.Values {
		if v == nil {
			continue
		}
		label := v.String()
		i, ok := index[label]
		if !ok {
			i = len(labels)
			index[label] = i
			labels = append(labels, label)
			counts = append(counts, 0)
		}
		counts[i]++
	}
	return labels, counts
}
