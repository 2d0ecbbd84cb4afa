package stats

import (
	"sort"
	"time"

	"tableskim/pkg/types"
)

// timeLayout picks the display layout for a temporal column: dates stay
// compact, datetimes keep their time of day.
func timeLayout(t types.ColumnType) string {
	if t == types.Date {
		return "2006-01-02"
	}
	return time.RFC3339
}

func sortedTimes(s *types.Series) []time.Time {
	ts := s.Times()
	sort.Slice(ts, func(i, j int) bool { return ts[i].Before(ts[j]) })
	return ts
}

// MinTime is the earliest present instant, NA when there are none.
func MinTime(s *types.Series) (types.Datum, error) {
	ts := sortedTimes(s)
	if len(ts) == 0 {
		return types.NADatum(), nil
	}
	return types.StringDatum(ts[0].Format(timeLayout(s.Type))), nil
}

// MaxTime is the latest present instant, NA when there are none.
func MaxTime(s *types.Series) (types.Datum, error) {
	ts := sortedTimes(s)
	if len(ts) == 0 {
		return types.NADatum(), nil
	}
	return types.StringDatum(ts[len(ts)-1].Format(timeLayout(s.Type))), nil
}

// MedianTime is the middle present instant (lower middle for even counts),
// NA when there are none.
func MedianTime(s *types.Series) (types.Datum, error) {
	ts := sortedTimes(s)
	if len(ts) == 0 {
		return types.NADatum(), nil
	}
	return types.StringDatum(ts[(len(ts)-1)/2].Format(timeLayout(s.Type))), nil
}

func sortedDurations(s *types.Series) []time.Duration {
	ds := s.Durations()
	sort.Slice(ds, func(i, j int) bool { return ds[i] < ds[j] })
	return ds
}

// MinDuration is the smallest present duration, NA when there are none.
func MinDuration(s *types.Series) (types.Datum, error) {
	ds := sortedDurations(s)
	if len(ds) == 0 {
		return types.NADatum(), nil
	}
	return types.StringDatum(ds[0].String()), nil
}

// MaxDuration is the largest present duration, NA when there are none.
func MaxDuration(s *types.Series) (types.Datum, error) {
	ds := sortedDurations(s)
	if len(ds) == 0 {
		return types.NADatum(), nil
	}
	return types.StringDatum(ds[len(ds)-1].String()), nil
}

// MedianDuration is the middle present duration (lower middle for even
// counts), NA when there are none.
func MedianDuration(s *types.Series) (types.Datum, error) {
	ds := sortedDurations(s)
	if len(ds) == 0 {
		return types.NADatum(), nil
	}
	return types.StringDatum(ds[(len(ds)-1)/2].String()), nil
}
