// Package render turns vdom trees into HTML.
//
// The renderer walks a VNode tree and writes escaped HTML, either to a
// string or a writer. Pretty mode indents output for development:
//
//	r := render.NewRenderer(render.Config{Pretty: true})
//	html, err := r.RenderToString(node)
package render
