package skim

import (
	"fmt"

	"tableskim/pkg/logging"
	"tableskim/pkg/types"
)

// computeColumn runs every statistic of the resolved spec against one series
// and returns one datum per statistic, in spec order.
//
// Failures are isolated per statistic: an error return, a panic, or a result
// that violates the statistic's declared shape each produce an error datum
// for that one cell, and computation continues with the next statistic.
func computeColumn(sp *SkimmerSpec, s *types.Series) []types.Datum {
	stats := sp.Statistics()
	out := make([]types.Datum, len(stats))
	for i, st := range stats {
		out[i] = applyStatistic(st, s)
		if out[i].IsError() {
			logging.Warn("statistic failed",
				"variable", s.Name,
				"type", string(s.Type),
				"statistic", st.Name,
				"error", out[i].Message())
		}
	}
	return out
}

func applyStatistic(st Statistic, s *types.Series) (d types.Datum) {
	defer func() {
		if r := recover(); r != nil {
			d = types.ErrorDatum(fmt.Sprintf("panic: %v", r))
		}
	}()

	res, err := st.Fn(s)
	if err != nil {
		return types.ErrorDatum(err.Error())
	}
	return checkShape(st, res)
}

// checkShape validates a result against the shape declared at registration.
// Shape is never inferred from the value: a scalar statistic returning a
// vector (or the reverse) is a malformed result, recorded as a failure.
// NA is a valid result for either shape.
func checkShape(st Statistic, d types.Datum) types.Datum {
	if d.IsNA() || d.IsError() {
		return d
	}
	switch st.Shape {
	case ShapeScalar:
		if d.Kind() == types.DatumVector {
			return types.ErrorDatum(fmt.Sprintf(
				"statistic %q declared scalar but returned a vector", st.Name))
		}
	case ShapeVector:
		if d.Kind() != types.DatumVector {
			return types.ErrorDatum(fmt.Sprintf(
				"statistic %q declared vector but returned a scalar", st.Name))
		}
		if got := len(d.Vector()); got != st.Width {
			return types.ErrorDatum(fmt.Sprintf(
				"statistic %q declared width %d but returned %d values",
				st.Name, st.Width, got))
		}
	}
	return d
}
