package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/stephen9412/primitives/pkg/primitives"
	"github.com/stephen9412/primitives/pkg/vdom"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer handles rendering of VNode trees to HTML.
type Renderer struct {
	config Config
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth); err != nil {
				return err
			}
		}
		return nil
	case vdom.KindComponent:
		return r.renderComponent(w, node, depth)
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderComponent renders a component under a fresh child Owner, so
// context values it provides are visible to its subtree and nothing else.
// The owner is disposed once the subtree is written, which is the SSR
// equivalent of the subtree unmounting.
func (r *Renderer) renderComponent(w io.Writer, node *vdom.VNode, depth int) error {
	if node.Comp == nil {
		return nil
	}

	owner := primitives.NewOwner(primitives.CurrentOwner())
	defer owner.Dispose()

	var err error
	owner.StartRender()
	primitives.WithOwner(owner, func() {
		err = r.renderNode(w, node.Comp.Render(), depth)
	})
	return err
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	if r.config.Pretty && depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "<"+node.Tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if vdom.IsVoidElement(node.Tag) {
		_, err := io.WriteString(w, ">")
		if err == nil && r.config.Pretty {
			_, err = io.WriteString(w, "\n")
		}
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if r.config.Pretty && len(node.Children) > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}

	if r.config.Pretty && len(node.Children) > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</"+node.Tag+">"); err != nil {
		return err
	}
	if r.config.Pretty {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// renderAttributes writes the element's attributes in sorted key order so
// output is deterministic.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(node.Props))
	for k := range node.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := node.Props[k]
		switch val := v.(type) {
		case bool:
			// Boolean attributes render bare when true, not at all when false.
			if val {
				if _, err := io.WriteString(w, " "+k); err != nil {
					return err
				}
			}
		case string:
			if _, err := io.WriteString(w, ` `+k+`="`+escapeAttr(val)+`"`); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, ` %s="%s"`, k, escapeAttr(fmt.Sprintf("%v", val))); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, r.config.Indent); err != nil {
			return err
		}
	}
	return nil
}
