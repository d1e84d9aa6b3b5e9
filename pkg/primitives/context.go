package primitives

import (
	"github.com/stephen9412/primitives/pkg/vdom"
)

// Context is a typed Provider/Use pair for passing a value through the
// component tree. Create one with CreateContext, provide values with
// Provider, and consume them with Use.
//
// Example:
//
//	var ThemeContext = primitives.CreateContext("ThemeProvider", "light")
//
//	func App() *vdom.VNode {
//	    return ThemeContext.Provider("dark",
//	        Header(),
//	        Main(),
//	    )
//	}
//
//	func Header() *vdom.VNode {
//	    theme := ThemeContext.Use("useTheme")
//	    return vdom.Div(vdom.Class("header-" + theme))
//	}
type Context[T any] struct {
	// key uniquely identifies this context in the owner value map.
	// The ambient store would otherwise distinguish values by type alone,
	// so two unrelated factories with the same value type could collide.
	key any

	// rootName is the diagnostic label for the expected provider,
	// fixed at factory creation.
	rootName string

	defaultValue T
	hasDefault   bool
}

// contextKey wraps Context to create a unique key type per factory.
type contextKey[T any] struct {
	ctx *Context[T]
}

// CreateContext creates a new context factory. rootComponentName names the
// expected provider in the error raised by an orphaned consumer. At most
// one default value may be supplied; it is returned by Use when no
// provider is found.
//
// Example:
//
//	var ThemeContext = primitives.CreateContext("ThemeProvider", "light")
//	var UserContext = primitives.CreateContext[*User]("UserProvider")
func CreateContext[T any](rootComponentName string, defaultValue ...T) *Context[T] {
	ctx := &Context[T]{
		rootName: rootComponentName,
	}
	if len(defaultValue) > 0 {
		ctx.defaultValue = defaultValue[0]
		ctx.hasDefault = true
	}
	// The context pointer itself keys the ambient store, so the key
	// carries factory identity, not just the value type.
	ctx.key = contextKey[T]{ctx: ctx}
	return ctx
}

// providerCell is the per-subtree state of one Provider instance. The
// signal holds the raw value with equality-gated writes; the memo holds
// the copy handed to consumers, re-derived only when the signal actually
// changed.
type providerCell[T any] struct {
	sig  *Signal[T]
	memo *Memo[T]
}

// providerComponent is the lazy component returned by Provider. Storing
// the value happens in Render, during the tree walk, so consumers built
// as lazy children always run after the value is in place regardless of
// Go's eager argument evaluation.
type providerComponent[T any] struct {
	ctx      *Context[T]
	value    T
	children []any
}

// Render implements vdom.Component.
func (p *providerComponent[T]) Render() *vdom.VNode {
	owner := CurrentOwner()
	if owner == nil {
		// No ambient store to inject into; render children anyway.
		return vdom.Fragment(p.children...)
	}

	var cell *providerCell[T]
	if slot := owner.UseHookSlot(); slot != nil {
		typed, ok := slot.(*providerCell[T])
		if !ok {
			panic("primitives: hook slot type mismatch for Provider")
		}
		cell = typed
		cell.sig.Set(p.value)
	} else {
		cell = &providerCell[T]{sig: NewSignal(p.value)}
		cell.memo = NewMemo(cell.sig, cloneValue[T])
		owner.SetHookSlot(cell)
	}

	owner.SetValue(p.ctx.key, cell)

	return vdom.Fragment(p.children...)
}

// Provider returns a component that stores the value for its subtree and
// renders the children beneath it unchanged.
//
// The value is memoized by value equality: re-rendering the provider with
// an equal-but-distinct value reuses the previous memoized copy and does
// not signal a recomputation downstream.
func (c *Context[T]) Provider(value T, children ...any) *vdom.VNode {
	return vdom.Comp(&providerComponent[T]{
		ctx:      c,
		value:    value,
		children: children,
	})
}

// Use retrieves the context value from the nearest Provider ancestor.
// The caller receives a copy. If no Provider is found, the factory default
// is returned. If there is no default either, Use panics with a
// *MissingProviderError naming consumerName and the factory's root
// component; see the package documentation for the contract.
func (c *Context[T]) Use(consumerName string) T {
	if owner := CurrentOwner(); owner != nil {
		if v := owner.GetValue(c.key); v != nil {
			if cell, ok := v.(*providerCell[T]); ok {
				return cloneValue(cell.memo.Get())
			}
		}
	}

	if c.hasDefault {
		return cloneValue(c.defaultValue)
	}

	panic(&MissingProviderError{Consumer: consumerName, Root: c.rootName})
}

// Default returns the factory's default value and whether one was
// registered.
func (c *Context[T]) Default() (T, bool) {
	return c.defaultValue, c.hasDefault
}

// cloneValue copies a context value for hand-off to a consumer. Types
// owning reference state can implement Clone() T to control the copy;
// everything else relies on Go assignment copy.
func cloneValue[T any](v T) T {
	if cl, ok := any(v).(interface{ Clone() T }); ok {
		return cl.Clone()
	}
	return v
}
