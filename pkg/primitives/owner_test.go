package primitives

import "testing"

func TestOwnerSetGetValue(t *testing.T) {
	owner := NewOwner(nil)

	// Initially no value
	if owner.GetValue("key") != nil {
		t.Error("expected nil for non-existent key")
	}

	// Set and get
	owner.SetValue("key", "value")
	if owner.GetValue("key") != "value" {
		t.Errorf("expected 'value', got %v", owner.GetValue("key"))
	}

	// Different types
	owner.SetValue("intKey", 42)
	if owner.GetValue("intKey") != 42 {
		t.Errorf("expected 42, got %v", owner.GetValue("intKey"))
	}
}

func TestOwnerValueInheritance(t *testing.T) {
	parent := NewOwner(nil)
	child := NewOwner(parent)
	grandchild := NewOwner(child)

	parent.SetValue("inherited", "from parent")

	if child.GetValue("inherited") != "from parent" {
		t.Errorf("child should inherit from parent")
	}
	if grandchild.GetValue("inherited") != "from parent" {
		t.Errorf("grandchild should inherit from parent")
	}

	// Child can shadow
	child.SetValue("inherited", "from child")
	if child.GetValue("inherited") != "from child" {
		t.Errorf("child should see own value")
	}
	if grandchild.GetValue("inherited") != "from child" {
		t.Errorf("grandchild should see child's value")
	}
	if parent.GetValue("inherited") != "from parent" {
		t.Errorf("parent value should be unchanged")
	}
}

func TestOwnerSiblingIsolation(t *testing.T) {
	parent := NewOwner(nil)
	left := NewOwner(parent)
	right := NewOwner(parent)

	left.SetValue("key", "left only")

	if right.GetValue("key") != nil {
		t.Error("sibling should not see value set on another sibling")
	}
}

func TestOwnerDispose(t *testing.T) {
	parent := NewOwner(nil)
	child := NewOwner(parent)

	var order []string
	parent.OnCleanup(func() { order = append(order, "parent") })
	child.OnCleanup(func() { order = append(order, "child") })

	parent.SetValue("key", "value")
	parent.Dispose()

	if !parent.IsDisposed() {
		t.Error("parent should be disposed")
	}
	if !child.IsDisposed() {
		t.Error("child should be disposed with parent")
	}
	if len(order) != 2 || order[0] != "child" || order[1] != "parent" {
		t.Errorf("cleanup order = %v, want [child parent]", order)
	}
	if parent.GetValue("key") != nil {
		t.Error("disposed owner should not retain values")
	}

	// Double dispose is a no-op
	parent.Dispose()
}

func TestOnCleanupAfterDispose(t *testing.T) {
	owner := NewOwner(nil)
	owner.Dispose()

	ran := false
	owner.OnCleanup(func() { ran = true })
	if !ran {
		t.Error("cleanup registered after dispose should run immediately")
	}
}

func TestWithOwnerNesting(t *testing.T) {
	outer := NewOwner(nil)
	inner := NewOwner(outer)

	if CurrentOwner() != nil {
		t.Fatal("no owner expected before WithOwner")
	}

	WithOwner(outer, func() {
		if CurrentOwner() != outer {
			t.Error("expected outer owner")
		}
		WithOwner(inner, func() {
			if CurrentOwner() != inner {
				t.Error("expected inner owner")
			}
		})
		if CurrentOwner() != outer {
			t.Error("outer owner should be restored after nested WithOwner")
		}
	})

	if CurrentOwner() != nil {
		t.Error("owner should be cleared after WithOwner")
	}
}

func TestHookSlotStability(t *testing.T) {
	owner := NewOwner(nil)

	// First render: slots are empty, caller stores state.
	owner.StartRender()
	if owner.UseHookSlot() != nil {
		t.Fatal("first render should yield empty slot")
	}
	owner.SetHookSlot("slot0")
	if owner.UseHookSlot() != nil {
		t.Fatal("second slot should also be empty on first render")
	}
	owner.SetHookSlot("slot1")

	// Second render: slots come back in call order.
	owner.StartRender()
	if got := owner.UseHookSlot(); got != "slot0" {
		t.Errorf("slot 0 = %v, want slot0", got)
	}
	if got := owner.UseHookSlot(); got != "slot1" {
		t.Errorf("slot 1 = %v, want slot1", got)
	}
}
