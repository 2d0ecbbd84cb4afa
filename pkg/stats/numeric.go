package stats

import (
	moremath "github.com/aclements/go-moremath/stats"

	"tableskim/pkg/render"
	"tableskim/pkg/types"
)

// HistBins is the number of buckets behind the inline histogram statistic.
const HistBins = 8

// Mean is the arithmetic mean of the present numeric values, NA when there
// are none.
func Mean(s *types.Series) (types.Datum, error) {
	xs := s.Floats()
	if len(xs) == 0 {
		return types.NADatum(), nil
	}
	samp := moremath.Sample{Xs: xs}
	return types.FloatDatum(samp.Mean()), nil
}

// SD is the sample standard deviation, NA with fewer than two present values.
func SD(s *types.Series) (types.Datum, error) {
	xs := s.Floats()
	if len(xs) < 2 {
		return types.NADatum(), nil
	}
	samp := moremath.Sample{Xs: xs}
	return types.FloatDatum(samp.StdDev()), nil
}

// Quantile builds a statistic returning the p-quantile (p in [0, 1]) of the
// present numeric values, NA when there are none.
func Quantile(p float64) func(*types.Series) (types.Datum, error) {
	return func(s *types.Series) (types.Datum, error) {
		xs := s.Floats()
		if len(xs) == 0 {
			return types.NADatum(), nil
		}
		samp := moremath.Sample{Xs: xs}
		samp.Sort()
		return types.FloatDatum(samp.Quantile(p)), nil
	}
}

// Hist renders the distribution of the present numeric values as a
// fixed-width sparkline over HistBins equi-width buckets.
func Hist(s *types.Series) (types.Datum, error) {
	xs := s.Floats()
	if len(xs) == 0 {
		return types.NADatum(), nil
	}
	h := NewHistogram(xs, HistBins)
	return types.StringDatum(render.Spark(h.Counts())), nil
}
