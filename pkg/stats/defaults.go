// Package stats provides the default statistic sets of the summary engine,
// one per built-in column type, and registers them into skim.Default on
// import. Every statistic is a plain function satisfying the
// values -> scalar-or-vector contract, so callers can mix these freely with
// their own closures when building custom specs.
package stats

import (
	"tableskim/pkg/skim"
	"tableskim/pkg/types"
)

func init() {
	RegisterDefaults(skim.Default)
}

// RegisterDefaults installs the default spec for every built-in column type
// into reg, including the catch-all. Useful for seeding a custom registry
// before overriding individual types.
func RegisterDefaults(reg *skim.Registry) {
	reg.Register(NumericSpec())
	reg.Register(CharacterSpec())
	reg.Register(FactorSpec())
	reg.Register(OrderedSpec())
	reg.Register(LogicalSpec())
	reg.Register(DateSpec())
	reg.Register(DatetimeSpec())
	reg.Register(DifftimeSpec())
	reg.Register(ListSpec())
	reg.Register(FallbackSpec())
}

// NumericSpec is the default statistic set for numeric columns.
func NumericSpec() *skim.SkimmerSpec {
	return skim.NewSpec(types.Numeric).
		Add("n_missing", NMissing).
		Add("complete_rate", CompleteRate).
		Add("mean", Mean).
		Add("sd", SD).
		Add("p0", Quantile(0)).
		Add("p25", Quantile(0.25)).
		Add("p50", Quantile(0.5)).
		Add("p75", Quantile(0.75)).
		Add("p100", Quantile(1)).
		Add("hist", Hist)
}

// CharacterSpec is the default statistic set for character columns.
func CharacterSpec() *skim.SkimmerSpec {
	return characterStats(skim.NewSpec(types.Character))
}

// FallbackSpec is the catch-all: columns of unregistered types are
// summarized through the string rendering of their values, so every column
// produces some summary.
func FallbackSpec() *skim.SkimmerSpec {
	return characterStats(skim.NewSpec(skim.TypeFallback))
}

func characterStats(sp *skim.SkimmerSpec) *skim.SkimmerSpec {
	return sp.
		Add("n_missing", NMissing).
		Add("complete_rate", CompleteRate).
		Add("min", MinLength).
		Add("max", MaxLength).
		Add("empty", Empty).
		Add("n_unique", NUnique).
		Add("whitespace", Whitespace)
}

// FactorSpec is the default statistic set for unordered factor columns.
func FactorSpec() *skim.SkimmerSpec {
	return factorStats(skim.NewSpec(types.Factor))
}

// OrderedSpec is the default statistic set for ordered factor columns.
func OrderedSpec() *skim.SkimmerSpec {
	return factorStats(skim.NewSpec(types.Ordered))
}

func factorStats(sp *skim.SkimmerSpec) *skim.SkimmerSpec {
	return sp.
		Add("n_missing", NMissing).
		Add("complete_rate", CompleteRate).
		Add("ordered", IsOrdered).
		Add("n_unique", NUnique).
		Add("top_counts", TopCounts)
}

// LogicalSpec is the default statistic set for logical columns.
func LogicalSpec() *skim.SkimmerSpec {
	return skim.NewSpec(types.Logical).
		Add("n_missing", NMissing).
		Add("complete_rate", CompleteRate).
		Add("mean", MeanBool).
		Add("count", CountBool)
}

// DateSpec is the default statistic set for date columns.
func DateSpec() *skim.SkimmerSpec {
	return temporalStats(skim.NewSpec(types.Date))
}

// DatetimeSpec is the default statistic set for datetime columns.
func DatetimeSpec() *skim.SkimmerSpec {
	return temporalStats(skim.NewSpec(types.Datetime))
}

func temporalStats(sp *skim.SkimmerSpec) *skim.SkimmerSpec {
	return sp.
		Add("n_missing", NMissing).
		Add("complete_rate", CompleteRate).
		Add("min", MinTime).
		Add("max", MaxTime).
		Add("median", MedianTime).
		Add("n_unique", NUnique)
}

// DifftimeSpec is the default statistic set for duration columns.
func DifftimeSpec() *skim.SkimmerSpec {
	return skim.NewSpec(types.Difftime).
		Add("n_missing", NMissing).
		Add("complete_rate", CompleteRate).
		Add("min", MinDuration).
		Add("max", MaxDuration).
		Add("median", MedianDuration).
		Add("n_unique", NUnique)
}

// ListSpec is the default statistic set for list-valued columns.
func ListSpec() *skim.SkimmerSpec {
	return skim.NewSpec(types.List).
		Add("n_missing", NMissing).
		Add("complete_rate", CompleteRate).
		Add("n_unique", NUnique).
		Add("min_length", MinListLen).
		Add("max_length", MaxListLen)
}
