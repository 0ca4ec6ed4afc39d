package rules

import (
	"testing"

	"github.com/eleventy7/jruff/internal/lint"
)

func TestCatalogNamesAreConsistent(t *testing.T) {
	seen := make(map[string]bool)
	for _, reg := range Catalog() {
		if seen[reg.Name] {
			t.Errorf("duplicate registration %q", reg.Name)
		}
		seen[reg.Name] = true

		rule := reg.New(nil)
		if rule.Name() != reg.Name {
			t.Errorf("rule %q reports Name() %q", reg.Name, rule.Name())
		}
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("FinalLocalVariable"); !ok {
		t.Error("FinalLocalVariable not found")
	}
	if _, ok := Lookup("NoSuchRule"); ok {
		t.Error("unknown name resolved")
	}
}

func TestBuildFiltersAndPreservesOrder(t *testing.T) {
	keep := map[string]bool{"TypeName": true, "MethodName": true, "LeftCurly": true}
	built := Build(func(name string) (lint.Properties, bool) {
		return nil, keep[name]
	})
	if len(built) != len(keep) {
		t.Fatalf("built %d rules, want %d", len(built), len(keep))
	}
	want := []string{"TypeName", "MethodName", "LeftCurly"}
	for i, rule := range built {
		if rule.Name() != want[i] {
			t.Errorf("built[%d] = %q, want %q", i, rule.Name(), want[i])
		}
	}
}

func TestBuildPassesProperties(t *testing.T) {
	built := Build(func(name string) (lint.Properties, bool) {
		if name != "MethodName" {
			return nil, false
		}
		return lint.Properties{"format": "^x"}, true
	})
	if len(built) != 1 {
		t.Fatalf("built %d rules, want 1", len(built))
	}
}
