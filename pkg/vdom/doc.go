// Package vdom provides the virtual node tree that primitives render into.
//
// A VNode is a plain value describing an element, text, fragment, or nested
// component. Primitives build VNode trees during render; the render package
// turns them into HTML.
//
// Element constructors accept a mixed argument list:
//
//	vdom.Div(
//	    vdom.Class("card"),
//	    vdom.Span(vdom.Text("hello")),
//	    "plain text is wrapped in a text node",
//	)
//
// Fragment groups children without introducing a wrapper element, which is
// how context providers render their subtree unchanged.
package vdom
