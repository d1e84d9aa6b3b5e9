// Package vtest provides test helpers for rendering primitives.
//
// Render evaluates a component function under a fresh root owner and
// returns the resulting HTML, so tests can assert on output without
// wiring the owner machinery by hand:
//
//	html := vtest.Render(t, func() *vdom.VNode {
//	    return ThemeContext.Provider("dark", Header())
//	})
//	vtest.ExpectContains(t, html, "header-dark")
package vtest
