package skim

import (
	"sync"

	"tableskim/pkg/types"
)

// TypeFallback is the reserved tag of the catch-all spec. Lookup returns the
// spec registered under it for any type that has no spec of its own, so every
// column produces some summary regardless of how exotic its type is.
const TypeFallback types.ColumnType = "fallback"

// Registry maps column types to their default statistic specs. Registration
// replaces: registering a type again installs the new spec wholesale, never
// merging with the old one. That is the supported customization mechanism —
// callers compose with an existing spec explicitly (Clone + Add) when they
// want to extend rather than replace.
//
// The intended lifecycle is single-writer-then-many-readers: register at
// setup time, then summarize. Registration is guarded so late registration is
// not a data race, but concurrent writers must be serialized by the caller.
type Registry struct {
	mu    sync.RWMutex
	specs map[types.ColumnType]*SkimmerSpec
	order []types.ColumnType
}

// Default is the process-wide registry used by Skim unless WithRegistry says
// otherwise. tableskim/pkg/stats populates it on import.
var Default = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		specs: make(map[types.ColumnType]*SkimmerSpec),
	}
}

// Register installs spec as the statistic set for its column type, replacing
// any previous spec for that type. Last writer wins.
func (r *Registry) Register(spec *SkimmerSpec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := spec.Type()
	if _, ok := r.specs[t]; !ok {
		r.order = append(r.order, t)
	}
	r.specs[t] = spec
}

// Lookup returns the spec for the given type. A miss falls back to the
// catch-all spec; if no catch-all is registered either, an empty spec is
// returned so the column simply contributes no rows. Lookup never fails.
func (r *Registry) Lookup(t types.ColumnType) *SkimmerSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if sp, ok := r.specs[t]; ok {
		return sp
	}
	if sp, ok := r.specs[TypeFallback]; ok {
		return sp
	}
	return NewSpec(t)
}

// Types returns the registered column types in registration order.
func (r *Registry) Types() []types.ColumnType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]types.ColumnType, len(r.order))
	copy(out, r.order)
	return out
}
