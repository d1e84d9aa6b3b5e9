package scope

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBaseFactoryHook(t *testing.T) {
	creator, factory := NewContextScope("A")
	Create(creator, "ARoot", "a-default")
	Create[int](creator, "AItem")

	out := factory()(nil)

	scopeA, ok := out[ScopeKey("A")]
	if !ok {
		t.Fatalf("output keys = %v, want %q", keysOf(out), ScopeKey("A"))
	}
	want := Contexts{"a-default", Unit{}}
	if diff := cmp.Diff(want, scopeA["A"]); diff != "" {
		t.Errorf("scope handles mismatch (-want +got):\n%s", diff)
	}
}

func TestHookPreservesSiblingsAndInput(t *testing.T) {
	creator, factory := NewContextScope("A")
	Create(creator, "ARoot", "a-default")

	input := Scope{"Other": Contexts{"sibling"}}
	out := factory()(input)

	scopeA := out[ScopeKey("A")]
	if diff := cmp.Diff(Contexts{"sibling"}, scopeA["Other"]); diff != "" {
		t.Errorf("sibling entry mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Contexts{"a-default"}, scopeA["A"]); diff != "" {
		t.Errorf("own entry mismatch (-want +got):\n%s", diff)
	}

	// The input scope must not be mutated.
	if diff := cmp.Diff(Scope{"Other": Contexts{"sibling"}}, input); diff != "" {
		t.Errorf("input scope was mutated (-want +got):\n%s", diff)
	}
}

func TestHookDerivationIsStable(t *testing.T) {
	creator, factory := NewContextScope("A")
	Create(creator, "ARoot", "a-default")
	Create[int](creator, "AItem")

	first := factory()(nil)
	second := factory()(nil)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("re-derived scope mapping differs (-first +second):\n%s", diff)
	}
}

func TestHookReflectsLaterRegistrations(t *testing.T) {
	creator, factory := NewContextScope("A")
	Create(creator, "ARoot", "a-default")

	hook := factory()
	if got := len(hook(nil)[ScopeKey("A")]["A"]); got != 1 {
		t.Fatalf("handles before = %d, want 1", got)
	}

	Create[int](creator, "ALate")
	if got := len(hook(nil)[ScopeKey("A")]["A"]); got != 2 {
		t.Errorf("handles after late registration = %d, want 2", got)
	}
}

func TestComposeSingleFactoryUnchanged(t *testing.T) {
	creator, factory := NewContextScope("A")
	Create(creator, "ARoot", "a-default")

	composed := ComposeScopes(factory)
	out := composed()(nil)

	// A single factory composes to itself: no base-scope reduction.
	if _, ok := out[ScopeKey("A")]; !ok {
		t.Errorf("output keys = %v, want %q", keysOf(out), ScopeKey("A"))
	}
	if _, ok := out[BaseScopeKey]; ok {
		t.Error("single factory should not produce a base scope entry")
	}
}

func TestComposeDistinctScopesKeepsBoth(t *testing.T) {
	creatorA, factoryA := NewContextScope("A")
	Create(creatorA, "ARoot", "a-default")

	creatorB, factoryB := NewContextScope("B")
	Create(creatorB, "BRoot", "b-default")
	Create[int](creatorB, "BItem")

	composed := ComposeScopes(factoryA, factoryB)
	out := composed()(nil)

	base, ok := out[BaseScopeKey]
	if !ok {
		t.Fatalf("output keys = %v, want %q", keysOf(out), BaseScopeKey)
	}

	want := Scope{
		"A": Contexts{"a-default"},
		"B": Contexts{"b-default", Unit{}},
	}
	if diff := cmp.Diff(want, base); diff != "" {
		t.Errorf("base scope mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeCollisionLastWriteWins(t *testing.T) {
	// Two libraries sharing scope name "A": the later factory's entry
	// silently replaces the earlier one. This documents a pitfall, not a
	// guarantee; library authors must pick distinct scope names.
	creator1, factory1 := NewContextScope("A")
	Create(creator1, "FirstRoot", "first")

	creator2, factory2 := NewContextScope("A")
	Create(creator2, "SecondRoot", "second-0")
	Create(creator2, "SecondItem", "second-1")

	composed := ComposeScopes(factory1, factory2)
	base := composed()(nil)[BaseScopeKey]

	if diff := cmp.Diff(Contexts{"second-0", "second-1"}, base["A"]); diff != "" {
		t.Errorf("colliding entry should be the second factory's (-want +got):\n%s", diff)
	}
}

func TestComposedHookCopiesInput(t *testing.T) {
	creatorA, factoryA := NewContextScope("A")
	Create(creatorA, "ARoot", "a-default")
	creatorB, factoryB := NewContextScope("B")
	Create(creatorB, "BRoot", "b-default")

	input := Scope{"Existing": Contexts{"kept"}}
	base := ComposeScopes(factoryA, factoryB)()(input)[BaseScopeKey]

	if diff := cmp.Diff(Contexts{"kept"}, base["Existing"]); diff != "" {
		t.Errorf("existing entry mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Scope{"Existing": Contexts{"kept"}}, input); diff != "" {
		t.Errorf("input scope was mutated (-want +got):\n%s", diff)
	}
}

func TestNewContextScopeComposesDeps(t *testing.T) {
	popperCreator, popperFactory := NewContextScope("Popper")
	Create(popperCreator, "Popper", "popper-default")

	tooltipCreator, tooltipFactory := NewContextScope("Tooltip", popperFactory)
	Create(tooltipCreator, "Tooltip", "tooltip-default")

	base, ok := tooltipFactory()(nil)[BaseScopeKey]
	if !ok {
		t.Fatal("factory with deps should produce a composed base scope")
	}

	want := Scope{
		"Tooltip": Contexts{"tooltip-default"},
		"Popper":  Contexts{"popper-default"},
	}
	if diff := cmp.Diff(want, base); diff != "" {
		t.Errorf("composed scope mismatch (-want +got):\n%s", diff)
	}
}

func keysOf(m Map) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
