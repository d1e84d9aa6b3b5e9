package primitives

import (
	"sync"
	"sync/atomic"
)

// Owner represents a component scope. Owners form a hierarchy mirroring the
// component tree: each component renders under an Owner that is a child of
// its parent component's Owner.
//
// An Owner carries the ambient context values for its subtree. A value set
// on an Owner is visible to the Owner itself and every descendant, and
// shadows the same key set on any ancestor. When an Owner is disposed its
// children are disposed with it, which is how a provided value's lifetime
// tracks the render lifetime of the subtree that provided it.
type Owner struct {
	id uint64

	// parent is the parent Owner in the hierarchy.
	// nil for the root Owner.
	parent *Owner

	// children are child Owners (sub-components).
	children   []*Owner
	childrenMu sync.Mutex

	// values stores context values for this scope.
	values   map[any]any
	valuesMu sync.RWMutex

	// cleanups are functions registered via OnCleanup.
	cleanups   []func()
	cleanupsMu sync.Mutex

	// disposed indicates whether this Owner has been disposed.
	disposed atomic.Bool

	// Hook slot storage for stable identity across renders.
	// Provider cells live here so re-rendering a provider reuses its
	// memoized value instead of allocating a fresh cell.
	hookSlots   []any
	hookSlotIdx int
}

// NewOwner creates a new Owner with the given parent.
// The new Owner is automatically registered as a child of the parent.
// If parent is nil, creates a root Owner.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}

	if parent != nil {
		parent.addChild(o)
	}

	return o
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent Owner, or nil if this is a root Owner.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed returns true if this Owner has been disposed.
func (o *Owner) IsDisposed() bool {
	return o.disposed.Load()
}

// addChild registers a child Owner.
func (o *Owner) addChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	o.children = append(o.children, child)
}

// removeChild removes a child Owner from this Owner's children.
func (o *Owner) removeChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()

	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// SetValue sets a context value on this Owner.
// The value is visible to this Owner and all descendants via GetValue.
func (o *Owner) SetValue(key, value any) {
	o.valuesMu.Lock()
	defer o.valuesMu.Unlock()

	if o.values == nil {
		o.values = make(map[any]any)
	}
	o.values[key] = value
}

// GetValue retrieves a value from this Owner or the nearest ancestor that
// has it. Returns nil if no Owner in the chain holds the key.
func (o *Owner) GetValue(key any) any {
	o.valuesMu.RLock()
	if o.values != nil {
		if val, ok := o.values[key]; ok {
			o.valuesMu.RUnlock()
			return val
		}
	}
	o.valuesMu.RUnlock()

	if o.parent != nil {
		return o.parent.GetValue(key)
	}

	return nil
}

// OnCleanup registers a cleanup function to run when this Owner is disposed.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed.Load() {
		// Already disposed, run cleanup immediately
		fn()
		return
	}

	o.cleanupsMu.Lock()
	defer o.cleanupsMu.Unlock()
	o.cleanups = append(o.cleanups, fn)
}

// Dispose disposes this Owner and all its children and cleanups.
// Children are disposed in reverse order (last created first).
// After disposal, the Owner cannot be used.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		// Already disposed
		return
	}

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.childrenMu.Lock()
	children := make([]*Owner, len(o.children))
	copy(children, o.children)
	o.children = nil
	o.childrenMu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	o.cleanupsMu.Lock()
	cleanups := o.cleanups
	o.cleanups = nil
	o.cleanupsMu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}

	o.valuesMu.Lock()
	o.values = nil
	o.valuesMu.Unlock()
}

// StartRender is called at the beginning of a component render.
// It resets the hook slot index so hooks regain their stored state in
// call order.
func (o *Owner) StartRender() {
	o.hookSlotIdx = 0
}

// UseHookSlot returns the stored value for the current hook slot, or nil
// on first render. On nil, the caller should create its state and call
// SetHookSlot.
//
// Usage pattern:
//
//	slot := owner.UseHookSlot()
//	if slot != nil {
//	    cell = slot.(*providerCell[T])
//	} else {
//	    cell = newProviderCell(value)
//	    owner.SetHookSlot(cell)
//	}
func (o *Owner) UseHookSlot() any {
	idx := o.hookSlotIdx
	o.hookSlotIdx++

	if idx < len(o.hookSlots) {
		return o.hookSlots[idx]
	}

	return nil
}

// SetHookSlot stores a value in the current hook slot.
// Must be called after UseHookSlot returns nil (first render).
func (o *Owner) SetHookSlot(value any) {
	o.hookSlots = append(o.hookSlots, value)
}
