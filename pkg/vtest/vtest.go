package vtest

import (
	"strings"
	"testing"

	"github.com/stephen9412/primitives/pkg/primitives"
	"github.com/stephen9412/primitives/pkg/render"
	"github.com/stephen9412/primitives/pkg/vdom"
)

// Render evaluates fn under a fresh root owner and renders the result to
// HTML. Fails the test on render errors.
func Render(t *testing.T, fn func() *vdom.VNode) string {
	t.Helper()

	owner := primitives.NewOwner(nil)
	t.Cleanup(owner.Dispose)

	return RenderUnder(t, owner, fn)
}

// RenderUnder evaluates fn and walks the resulting tree under the given
// owner. Use this when a test needs to re-render against the same owner.
func RenderUnder(t *testing.T, owner *primitives.Owner, fn func() *vdom.VNode) string {
	t.Helper()

	var html string
	var err error
	owner.StartRender()
	primitives.WithOwner(owner, func() {
		node := fn()
		html, err = render.NewRenderer(render.Config{}).RenderToString(node)
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return html
}

// RenderNode renders a bare node to HTML with no ambient owner.
func RenderNode(t *testing.T, node *vdom.VNode) string {
	t.Helper()

	html, err := render.NewRenderer(render.Config{}).RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return html
}

// ExpectContains asserts that html contains the substring.
func ExpectContains(t *testing.T, html, substr string) {
	t.Helper()
	if !strings.Contains(html, substr) {
		t.Errorf("expected output to contain %q\ngot: %s", substr, html)
	}
}

// ExpectNotContains asserts that html does not contain the substring.
func ExpectNotContains(t *testing.T, html, substr string) {
	t.Helper()
	if strings.Contains(html, substr) {
		t.Errorf("expected output to not contain %q\ngot: %s", substr, html)
	}
}

// ExpectPanics runs fn expecting a panic whose message contains every
// given substring, and returns the recovered value.
func ExpectPanics(t *testing.T, fn func(), substrs ...string) (recovered any) {
	t.Helper()

	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatal("expected panic, got none")
		}
		msg := panicMessage(recovered)
		for _, s := range substrs {
			if !strings.Contains(msg, s) {
				t.Errorf("panic message %q missing %q", msg, s)
			}
		}
	}()

	fn()
	return nil
}

func panicMessage(v any) string {
	switch m := v.(type) {
	case error:
		return m.Error()
	case string:
		return m
	default:
		return ""
	}
}
