package skim

import "tableskim/pkg/types"

// resolveSpec produces the concrete statistic list to run for a column type.
// A call-local override for the exact type wins and is used exclusively — no
// merge with registry defaults, matching the registry's replace-on-register
// semantics. Otherwise the registry decides, falling back to its catch-all.
func resolveSpec(reg *Registry, overrides map[types.ColumnType]*SkimmerSpec, t types.ColumnType) *SkimmerSpec {
	if sp, ok := overrides[t]; ok {
		return sp
	}
	return reg.Lookup(t)
}
