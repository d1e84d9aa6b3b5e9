// Package ui ships the reference components built on the context
// primitives: a theme context, a popper positioning scope, a tooltip whose
// scope composes the popper scope, and an accordion with two contexts
// registered under one scope.
//
// Components follow the functional options pattern:
//
//	ui.Tooltip(
//	    ui.TooltipContent("Save your changes"),
//	    ui.TooltipSide("bottom"),
//	    ui.TooltipChildren(vdom.Button(vdom.Text("Save"))),
//	)
//
// Parts that read context (triggers, content) are built lazily so they
// resolve their values during the tree walk, after the enclosing provider
// has stored them.
package ui
