package skim

import (
	"context"
	"sync"

	"tableskim/pkg/errs"
	"tableskim/pkg/logging"
	"tableskim/pkg/types"
)

// Option configures one Skim call.
type Option func(*config)

type config struct {
	reg       *Registry
	overrides map[types.ColumnType]*SkimmerSpec
	groups    []string
	groupsSet bool
	workers   int
}

// WithRegistry uses the given registry instead of Default for this call.
func WithRegistry(r *Registry) Option {
	return func(c *config) { c.reg = r }
}

// WithOverride installs a call-local spec for one column type. The override
// is a total replacement for that type's registered spec and never mutates
// the global registry; it exists for exactly one summarization call.
func WithOverride(t types.ColumnType, sp *SkimmerSpec) Option {
	return func(c *config) {
		if c.overrides == nil {
			c.overrides = make(map[types.ColumnType]*SkimmerSpec)
		}
		c.overrides[t] = sp
	}
}

// WithGroups groups the summary by the named columns, overriding any grouping
// metadata the source itself carries. WithGroups() with no names forces an
// ungrouped summary.
func WithGroups(cols ...string) Option {
	return func(c *config) {
		c.groups = cols
		c.groupsSet = true
	}
}

// WithWorkers computes (group, column) tasks on n goroutines. Tasks share no
// mutable state, so output is identical to the sequential default; only the
// wall-clock changes. n < 2 keeps the sequential path.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// task identifies one (group, column) computation.
type task struct {
	gi, ci int
}

// Skim summarizes every column of src: per group and column it resolves the
// statistic spec for the column's type, computes the statistics, and collects
// one StatRow per (statistic, value) pair into a Result.
//
// Only structural failures return an error: a nil source, an unknown grouping
// column, or cancellation. Individual statistic failures are recorded in the
// result and never abort the call.
func Skim(ctx context.Context, src Source, opts ...Option) (*Result, error) {
	cfg := config{reg: Default}
	for _, opt := range opts {
		opt(&cfg)
	}

	if src == nil {
		return nil, errs.New(errs.CategorySystem, errs.CodeInvalidSource,
			"data source is nil")
	}

	groupCols := cfg.groups
	if !cfg.groupsSet {
		if g, ok := src.(Grouped); ok {
			groupCols = g.GroupKeys()
		}
	}

	groups, err := partitionGroups(src, groupCols)
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeInvalidSource, "Skim", "Grouper")
	}

	// Grouping columns are consumed by the grouper, not summarized.
	grouping := make(map[string]bool, len(groupCols))
	for _, g := range groupCols {
		grouping[g] = true
	}
	var columns []Column
	for _, c := range src.Columns() {
		if !grouping[c.Name()] {
			columns = append(columns, c)
		}
	}

	specs := make([]*SkimmerSpec, len(columns))
	for i, c := range columns {
		specs[i] = resolveSpec(cfg.reg, cfg.overrides, c.Type())
	}

	// One slot per (group, column) task keeps assembly order deterministic
	// regardless of which goroutine computed what.
	slots := make([][]types.Datum, len(groups)*len(columns))

	run := func(t task) {
		s := seriesFor(columns[t.ci], src.RowCount(), groups[t.gi])
		slots[t.gi*len(columns)+t.ci] = computeColumn(specs[t.ci], s)
	}

	if cfg.workers > 1 {
		if err := runParallel(ctx, cfg.workers, len(groups), len(columns), run); err != nil {
			return nil, err
		}
	} else {
		for gi := range groups {
			for ci := range columns {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				run(task{gi, ci})
			}
		}
	}

	res := &Result{
		sourceRows:    src.RowCount(),
		sourceColumns: len(columns),
		groupColumns:  groupCols,
		typeFreq:      make(map[types.ColumnType]int),
	}
	for _, c := range columns {
		t := c.Type()
		if res.typeFreq[t] == 0 {
			res.typesSeen = append(res.typesSeen, t)
		}
		res.typeFreq[t]++
	}

	for gi, g := range groups {
		for ci, c := range columns {
			datums := slots[gi*len(columns)+ci]
			stats := specs[ci].Statistics()
			for si, st := range stats {
				res.rows = append(res.rows, StatRow{
					Group:     g.key,
					Variable:  c.Name(),
					Type:      c.Type(),
					Statistic: st.Name,
					Value:     datums[si],
				})
			}
		}
	}

	logging.Debug("skim complete",
		"rows", res.sourceRows,
		"columns", res.sourceColumns,
		"groups", len(groups),
		"stat_rows", len(res.rows))

	return res, nil
}

// runParallel fans (group, column) tasks out to n workers. Each task writes
// only its own result slot, so no synchronization beyond the WaitGroup is
// needed. Cancellation is honored between tasks, not mid-statistic.
func runParallel(ctx context.Context, n, numGroups, numCols int, run func(task)) error {
	tasks := make(chan task)
	var wg sync.WaitGroup

	for w := 0; w < n; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				if ctx.Err() != nil {
					continue
				}
				run(t)
			}
		}()
	}

	for gi := 0; gi < numGroups; gi++ {
		for ci := 0; ci < numCols; ci++ {
			tasks <- task{gi, ci}
		}
	}
	close(tasks)
	wg.Wait()

	return ctx.Err()
}
