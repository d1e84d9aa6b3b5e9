// Package primitives provides the component-scope core for the primitives
// library: the Owner hierarchy that carries ambient values through a
// component tree, equality-gated signals and memos, and typed context
// (Provider/Use pairs) for passing a value from an ancestor component to
// its descendants without prop threading.
//
// # Owners
//
// Each component render runs under an Owner. Owners form a hierarchy that
// mirrors the component tree; a value set on an owner is visible to that
// owner and all of its descendants:
//
//	root := primitives.NewOwner(nil)
//	primitives.WithOwner(root, func() {
//	    // render the tree
//	})
//
// # Context
//
// CreateContext builds a typed Provider/Use pair. The provider stores a
// memoized copy of its value in the ambient owner store; consumers read
// the nearest provided value or fall back to the factory default:
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
//
// Calling Use with no enclosing provider and no registered default is a
// programmer error and panics with a *MissingProviderError naming both the
// consumer call-site and the expected provider. This is deliberate: a
// missing provider is an integration bug, not a runtime condition.
//
// For grouping several contexts under one named scope (the pattern used by
// reusable component libraries), see the scope package.
package primitives
