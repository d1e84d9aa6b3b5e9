package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, Component, string.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			if v.Key != "" {
				if v.Key == "key" {
					if s, ok := v.Value.(string); ok {
						node.Key = s
					}
				}
				node.Props[v.Key] = v.Value
			}

		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					if a.Key == "key" {
						if s, ok := a.Value.(string); ok {
							node.Key = s
						}
					}
					node.Props[a.Key] = a.Value
				}
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case Component:
			node.Children = append(node.Children, &VNode{
				Kind: KindComponent,
				Comp: v,
			})

		case string:
			// Shorthand for text node
			node.Children = append(node.Children, Text(v))
		}
	}

	return node
}

// El creates an element node with an arbitrary tag.
func El(tag string, args ...any) *VNode {
	return createElement(tag, args)
}

// Common elements used by the shipped primitives.

func Div(args ...any) *VNode     { return createElement("div", args) }
func Span(args ...any) *VNode    { return createElement("span", args) }
func Button(args ...any) *VNode  { return createElement("button", args) }
func Section(args ...any) *VNode { return createElement("section", args) }
func Ul(args ...any) *VNode      { return createElement("ul", args) }
func Li(args ...any) *VNode      { return createElement("li", args) }
func H2(args ...any) *VNode      { return createElement("h2", args) }
func H3(args ...any) *VNode      { return createElement("h3", args) }
func P(args ...any) *VNode       { return createElement("p", args) }
func A(args ...any) *VNode       { return createElement("a", args) }
