package skim

import (
	"testing"

	"tableskim/pkg/types"
)

func TestRegistryRegisterReplaces(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewSpec(types.Numeric).
		Add("count", countStat).
		Add("mean", meanStat))
	reg.Register(NewSpec(types.Numeric).
		Add("count", countStat))

	sp := reg.Lookup(types.Numeric)
	if sp.Len() != 1 {
		t.Errorf("Expected replacement spec with 1 stat, got %d", sp.Len())
	}

	// Replacement keeps the type's registration position.
	order := reg.Types()
	if len(order) != 1 || order[0] != types.Numeric {
		t.Errorf("Expected registration order [numeric], got %v", order)
	}
}

func TestRegistryFallback(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewSpec(TypeFallback).Add("count", countStat))

	sp := reg.Lookup(types.ColumnType("geo_point"))
	if sp.Type() != TypeFallback {
		t.Errorf("Expected fallback spec for unregistered type, got %v", sp.Type())
	}
	if sp.Len() != 1 {
		t.Errorf("Expected 1 stat from fallback, got %d", sp.Len())
	}
}

func TestRegistryLookupNeverFails(t *testing.T) {
	reg := NewRegistry()

	sp := reg.Lookup(types.Numeric)
	if sp == nil {
		t.Fatal("Expected a spec even from an empty registry")
	}
	if sp.Len() != 0 {
		t.Errorf("Expected empty spec, got %d stats", sp.Len())
	}
}

func TestSpecInsertionOrder(t *testing.T) {
	sp := NewSpec(types.Numeric).
		Add("b", countStat).
		Add("a", countStat).
		Add("c", countStat)

	names := sp.Names()
	want := []string{"b", "a", "c"}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("Position %d: expected %s, got %s", i, n, names[i])
		}
	}
}

func TestSpecReaddKeepsPosition(t *testing.T) {
	sp := NewSpec(types.Numeric).
		Add("a", countStat).
		Add("b", countStat).
		Add("a", meanStat)

	if sp.Len() != 2 {
		t.Fatalf("Expected re-add to replace, got %d stats", sp.Len())
	}
	names := sp.Names()
	if names[0] != "a" || names[1] != "b" {
		t.Errorf("Expected re-added stat to keep its position, got %v", names)
	}
}

func TestSpecClone(t *testing.T) {
	orig := NewSpec(types.Numeric).Add("a", countStat)
	clone := orig.Clone().Add("b", countStat)

	if orig.Len() != 1 {
		t.Errorf("Expected original untouched by clone mutation, got %d stats", orig.Len())
	}
	if clone.Len() != 2 {
		t.Errorf("Expected clone with 2 stats, got %d", clone.Len())
	}
	if clone.Type() != orig.Type() {
		t.Errorf("Expected clone to keep the type, got %v", clone.Type())
	}
}
