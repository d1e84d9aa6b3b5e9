package ui

import (
	"github.com/stephen9412/primitives/pkg/scope"
	"github.com/stephen9412/primitives/pkg/vdom"
)

// PopperConfig positions floating content relative to its anchor.
type PopperConfig struct {
	Side   string // top, right, bottom, left
	Align  string // start, center, end
	Offset int    // gap from the anchor, in px
}

var (
	popperScope, popperScopeFactory = scope.NewContextScope("Popper")

	popperProvider, popperConsumer = scope.Create(popperScope, "Popper",
		PopperConfig{Side: "top", Align: "center", Offset: 4})
)

// PopperScopeFactory exposes the popper scope to primitives that compose
// it into their own (see the tooltip).
func PopperScopeFactory() scope.HookFactory {
	return popperScopeFactory
}

// PopperOption configures a Popper.
type PopperOption func(*popperSettings)

type popperSettings struct {
	config   PopperConfig
	children []any
}

// PopperSide sets the side the content floats on (top, right, bottom, left).
func PopperSide(side string) PopperOption {
	return func(s *popperSettings) {
		s.config.Side = side
	}
}

// PopperAlign sets the alignment along the chosen side (start, center, end).
func PopperAlign(align string) PopperOption {
	return func(s *popperSettings) {
		s.config.Align = align
	}
}

// PopperOffset sets the gap from the anchor in px.
func PopperOffset(px int) PopperOption {
	return func(s *popperSettings) {
		s.config.Offset = px
	}
}

// PopperChildren sets the anchor and floating children.
func PopperChildren(children ...any) PopperOption {
	return func(s *popperSettings) {
		s.children = children
	}
}

// Popper provides positioning config for floating descendants.
func Popper(opts ...PopperOption) *vdom.VNode {
	s := popperSettings{
		config: PopperConfig{Side: "top", Align: "center", Offset: 4},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return popperProvider.Render(s.config, s.children...)
}

// PopperContent renders floating content positioned by the nearest Popper.
func PopperContent(children ...any) *vdom.VNode {
	return vdom.Lazy(func() *vdom.VNode {
		cfg := popperConsumer.Consume("usePopperContext")

		args := []any{
			vdom.Class("popper-content"),
			vdom.Data("side", cfg.Side),
			vdom.Data("align", cfg.Align),
		}
		args = append(args, children...)
		return vdom.Div(args...)
	})
}
