package scope

import (
	"sync"

	"github.com/stephen9412/primitives/pkg/primitives"
	"github.com/stephen9412/primitives/pkg/vdom"
)

// Creator is the registry for one named scope. It hands out
// Provider/Consumer pairs tagged with the scope name and a monotonically
// increasing index (0, 1, ... in call order), and records each pair's
// default so the scope hook can expose the ordered handle list later.
//
// Registration happens at component definition time; the mutex covers the
// momentary exclusive access of that phase, not render-time state.
type Creator struct {
	scopeName string

	mu sync.Mutex
	// entries holds one slot per registered context: the default value,
	// or nil when none was supplied.
	entries []any
}

// ScopeName returns the name this registry was created with.
func (c *Creator) ScopeName() string {
	return c.scopeName
}

// Len returns the number of contexts registered so far.
func (c *Creator) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// handles returns the ordered context handles for the scope mapping:
// defaults where registered, Unit placeholders where not.
func (c *Creator) handles() Contexts {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(Contexts, len(c.entries))
	for i, e := range c.entries {
		if e == nil {
			out[i] = Unit{}
		} else {
			out[i] = e
		}
	}
	return out
}

// pairKey keys a scoped context pair in the ambient owner store. It
// carries the registry identity and slot index, so two pairs with the same
// value type never collide.
type pairKey struct {
	creator *Creator
	index   int
}

// Provider injects a scoped context value for a subtree.
// Obtain one from Create.
type Provider[T any] struct {
	scopeName string
	index     int
	key       pairKey
}

// ScopeName returns the owning scope's name.
func (p *Provider[T]) ScopeName() string { return p.scopeName }

// Index returns the pair's slot index within the scope.
func (p *Provider[T]) Index() int { return p.index }

// scopedProviderComponent injects the value during the tree walk, like the
// basic provider, so lazily built consumer children run after it.
type scopedProviderComponent[T any] struct {
	key      pairKey
	value    T
	children []any
}

// Render implements vdom.Component.
func (s *scopedProviderComponent[T]) Render() *vdom.VNode {
	if owner := primitives.CurrentOwner(); owner != nil {
		owner.SetValue(s.key, s.value)
	}
	return vdom.Fragment(s.children...)
}

// Render returns a component that injects the raw value into the ambient
// store for its subtree and renders the children beneath it unchanged.
// Unlike the basic Context.Provider there is no memoization layer; the
// scoped variant stores the value as-is.
func (p *Provider[T]) Render(value T, children ...any) *vdom.VNode {
	return vdom.Comp(&scopedProviderComponent[T]{
		key:      p.key,
		value:    value,
		children: children,
	})
}

// Consumer reads a scoped context value.
// Obtain one from Create.
type Consumer[T any] struct {
	scopeName string
	index     int
	key       pairKey

	rootName     string
	defaultValue T
	hasDefault   bool
}

// ScopeName returns the owning scope's name.
func (c *Consumer[T]) ScopeName() string { return c.scopeName }

// Index returns the pair's slot index within the scope.
func (c *Consumer[T]) Index() int { return c.index }

// Consume returns the nearest provided value, or the default registered at
// Create time. With neither available it panics with a
// *primitives.MissingProviderError naming consumerName and the pair's root
// component; an orphaned consumer is a wiring bug, not a runtime condition.
func (c *Consumer[T]) Consume(consumerName string) T {
	if owner := primitives.CurrentOwner(); owner != nil {
		if v := owner.GetValue(c.key); v != nil {
			if typed, ok := v.(T); ok {
				return typed
			}
		}
	}

	if c.hasDefault {
		return c.defaultValue
	}

	panic(&primitives.MissingProviderError{Consumer: consumerName, Root: c.rootName})
}

// Create registers the next context slot in the registry and returns a
// Provider/Consumer pair bound to it. rootName labels the expected
// provider in the orphaned-consumer error; at most one default value may
// be supplied.
//
// Indices are assigned in call order starting at 0 and never change, so a
// pair can be correlated with its slot in the scope mapping produced
// later.
//
// Create is a top-level function rather than a Creator method because Go
// methods cannot introduce type parameters.
func Create[T any](c *Creator, rootName string, defaultValue ...T) (*Provider[T], *Consumer[T]) {
	var def any
	var defValue T
	hasDefault := len(defaultValue) > 0
	if hasDefault {
		defValue = defaultValue[0]
		def = defValue
	}

	c.mu.Lock()
	index := len(c.entries)
	c.entries = append(c.entries, def)
	c.mu.Unlock()

	key := pairKey{creator: c, index: index}

	provider := &Provider[T]{
		scopeName: c.scopeName,
		index:     index,
		key:       key,
	}
	consumer := &Consumer[T]{
		scopeName:    c.scopeName,
		index:        index,
		key:          key,
		rootName:     rootName,
		defaultValue: defValue,
		hasDefault:   hasDefault,
	}
	return provider, consumer
}
