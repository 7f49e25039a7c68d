package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"github.com/vanderheijden86/adpf/pkg/content"
	"github.com/vanderheijden86/adpf/pkg/section"
)

func TestGeneratorDeterministic(t *testing.T) {
	a := NewDefault().Entries()
	b := NewDefault().Entries()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different entries:\n%s", diff)
	}

	c := New(GeneratorConfig{Seed: 7}).Entries()
	if cmp.Equal(a, c) {
		t.Error("different seeds produced identical entries")
	}
}

func TestGeneratorRespectsDepth(t *testing.T) {
	reg := New(GeneratorConfig{Seed: 3, MaxBlocks: 6, MaxDepth: 0}).Registry()
	for _, e := range reg.Entries() {
		e.Walk(func(b content.Block, depth int) {
			if b.Kind() == content.KindSubsection {
				t.Errorf("%s: subsection generated with MaxDepth 0", e.ID)
			}
			if depth > 0 {
				t.Errorf("%s: nested block at depth %d", e.ID, depth)
			}
		})
	}
}

func TestRegistryGenIsTotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		reg := RegistryGen().Draw(t, "registry")
		for _, id := range section.All() {
			if e := reg.Lookup(id); e.ID != id {
				t.Fatalf("lookup %s returned %s", id, e.ID)
			}
		}
	})
}

func TestMinimalRegistry(t *testing.T) {
	reg := MinimalRegistry()
	if CountTables(reg) != 0 {
		t.Error("Expected no tables")
	}
	if got := CountBlocks(reg); got != section.Count {
		t.Errorf("Expected %d blocks, got %d", section.Count, got)
	}
}

func TestCountTablesDefault(t *testing.T) {
	if got := CountTables(content.Default()); got != 7 {
		t.Errorf("Expected 7 tables, got %d", got)
	}
}
