// Package scope groups related contexts under one named scope, the pattern
// a reusable component library uses to bundle its context values behind a
// single accessor.
//
// A library calls NewContextScope once at definition time, then registers
// any number of independent context types against the returned Creator.
// Registration order is significant: each context is assigned the next
// integer index, stable for the registry's lifetime.
//
//	var (
//	    accordionScope, AccordionScopeFactory = scope.NewContextScope("Accordion")
//
//	    rootProvider, rootConsumer = scope.Create[AccordionState](
//	        accordionScope, "Accordion", AccordionState{})
//	    itemProvider, itemConsumer = scope.Create[string](
//	        accordionScope, "AccordionItem")
//	)
//
// The second return of NewContextScope is a HookFactory: invoking it yields
// a hook that maps an existing Scope to an augmented one containing this
// library's registered contexts. A composite component depending on several
// libraries composes their factories with ComposeScopes (NewContextScope
// does this automatically when dependency factories are passed).
//
// Scope name collisions between composed libraries are resolved
// last-write-wins and lose the earlier library's data silently. Library
// authors must choose distinct scope names.
package scope
