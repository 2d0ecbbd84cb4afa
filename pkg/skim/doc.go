// Package skim is the type-dispatch summary engine: it walks the columns of a
// tabular data source, selects a statistic set per column based on the
// column's semantic type, computes the statistics per group of rows, and
// assembles everything into one long-form result table.
//
// The engine itself ships with no statistic sets. The default sets live in
// tableskim/pkg/stats, which registers them into Default on import:
//
//	import _ "tableskim/pkg/stats"
//
//	res, err := skim.Skim(ctx, src)
//
// Custom types are added by registering a SkimmerSpec, either permanently
// (Registry.Register) or for a single call (WithOverride).
package skim
