package stats

import (
	"tableskim/pkg/render"
	"tableskim/pkg/types"
)

// TopCountsK is how many levels the top_counts statistic shows.
const TopCountsK = 4

// IsOrdered reports whether the factor column's levels carry an ordering,
// which in this engine is encoded by the column type tag itself.
func IsOrdered(s *types.Series) (types.Datum, error) {
	if s.Type == types.Ordered {
		return types.StringDatum("TRUE"), nil
	}
	return types.StringDatum("FALSE"), nil
}

// TopCounts renders the most frequent levels with their counts, descending,
// ties broken by first appearance. NA when no values are present.
func TopCounts(s *types.Series) (types.Datum, error) {
	labels, counts := firstSeenCounts(s)
	if len(labels) == 0 {
		return types.NADatum(), nil
	}
	return types.StringDatum(render.TopCounts(labels, counts, TopCountsK)), nil
}
