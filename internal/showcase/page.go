package showcase

import "github.com/stephen9412/primitives/pkg/vdom"

// page wraps a body in the showcase HTML shell.
func page(title string, body *vdom.VNode) *vdom.VNode {
	return vdom.El("html",
		vdom.Lang("en"),
		vdom.El("head",
			vdom.El("meta", vdom.Attr{Key: "charset", Value: "utf-8"}),
			vdom.El("title", vdom.Text(title)),
		),
		vdom.El("body",
			vdom.El("main",
				vdom.Class("showcase"),
				vdom.H2(vdom.Text(title)),
				body,
			),
		),
	)
}

// nav renders the showcase navigation links.
func nav() *vdom.VNode {
	links := []struct{ href, label string }{
		{"/tooltip", "Tooltip"},
		{"/accordion", "Accordion"},
		{"/theme", "Theme"},
	}

	return vdom.Ul(
		vdom.Class("showcase-nav"),
		vdom.Range(links, func(l struct{ href, label string }, _ int) *vdom.VNode {
			return vdom.Li(vdom.A(vdom.Href(l.href), vdom.Text(l.label)))
		}),
	)
}
