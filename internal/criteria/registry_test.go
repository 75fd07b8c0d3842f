package criteria

import (
	"errors"
	"reflect"
	"testing"
)

func TestRegistryListIsStable(t *testing.T) {
	registry := NewRegistryForTest(t)

	var first, second []string
	for _, c := range registry.List() {
		first = append(first, c.Name())
	}
	for _, c := range registry.List() {
		second = append(second, c.Name())
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected stable order, got %v then %v", first, second)
	}
	if first[0] != "Single Page Limit" {
		t.Fatalf("expected Single Page Limit first, got %q", first[0])
	}
}

func TestRegistryListReturnsCopy(t *testing.T) {
	registry := NewRegistryForTest(t)

	list := registry.List()
	list[0] = nil

	if registry.List()[0] == nil {
		t.Fatalf("mutating the returned slice must not affect the registry")
	}
}

func TestFilterByNamesPreservesRegistryOrder(t *testing.T) {
	registry := NewRegistryForTest(t)

	// Names supplied in reverse of registry order.
	selected, err := registry.FilterByNames([]string{"Spelling", "Single Page Limit"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	for _, c := range selected {
		names = append(names, c.Name())
	}
	want := []string{"Single Page Limit", "Spelling"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected registry order %v, got %v", want, names)
	}
}

func TestFilterByNamesUnknownName(t *testing.T) {
	registry := NewRegistryForTest(t)

	_, err := registry.FilterByNames([]string{"Single Page Limit", "Nonexistent Rule"})
	if err == nil {
		t.Fatalf("expected error for unknown name")
	}

	var unknown *UnknownCriterionError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCriterionError, got %T: %v", err, err)
	}
	if !reflect.DeepEqual(unknown.Names, []string{"Nonexistent Rule"}) {
		t.Fatalf("expected offending name listed, got %v", unknown.Names)
	}
}

func TestFilterByNamesEmptySelection(t *testing.T) {
	registry := NewRegistryForTest(t)

	selected, err := registry.FilterByNames(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selected) != 0 {
		t.Fatalf("expected empty selection, got %d criteria", len(selected))
	}
}

func TestFilterByCategory(t *testing.T) {
	registry := NewRegistryForTest(t)

	selected, err := registry.FilterByCategory("format")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range selected {
		if c.Category() != CategoryFormat {
			t.Fatalf("expected only format criteria, got %q", c.Category())
		}
	}
	if len(selected) != 3 {
		t.Fatalf("expected 3 format criteria, got %d", len(selected))
	}

	if _, err := registry.FilterByCategory("visual"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestRegistryWeightsAndMetadata(t *testing.T) {
	registry := NewRegistryForTest(t)

	seen := map[string]bool{}
	for _, c := range registry.List() {
		if c.Name() == "" || c.Category() == "" || c.Description() == "" {
			t.Fatalf("criterion %q has empty metadata", c.Name())
		}
		if c.Weight() <= 0 {
			t.Fatalf("criterion %q has non-positive weight %v", c.Name(), c.Weight())
		}
		if seen[c.Name()] {
			t.Fatalf("duplicate criterion name %q", c.Name())
		}
		seen[c.Name()] = true
	}
}
