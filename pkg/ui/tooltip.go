package ui

import (
	"fmt"

	"github.com/stephen9412/primitives/pkg/scope"
	"github.com/stephen9412/primitives/pkg/vdom"
)

// TooltipState is the tooltip's ambient state: its text and whether it is
// currently shown.
type TooltipState struct {
	Content string
	Open    bool
}

// The tooltip scope composes the popper scope: a composite component
// depending on the tooltip gets both libraries' contexts through one
// factory. No default is registered, so TooltipPopup outside a Tooltip
// fails loudly.
var (
	tooltipScope, tooltipScopeFactory = scope.NewContextScope("Tooltip", popperScopeFactory)

	tooltipProvider, tooltipConsumer = scope.Create[TooltipState](tooltipScope, "Tooltip")
)

// TooltipScopeFactory exposes the composed tooltip scope.
func TooltipScopeFactory() scope.HookFactory {
	return tooltipScopeFactory
}

// TooltipOption configures a Tooltip component.
type TooltipOption func(*tooltipConfig)

type tooltipConfig struct {
	content  string
	open     bool
	side     string
	align    string
	children []any
}

func defaultTooltipConfig() tooltipConfig {
	return tooltipConfig{
		open:  true,
		side:  "top",
		align: "center",
	}
}

// TooltipContent sets the tooltip text content.
func TooltipContent(content string) TooltipOption {
	return func(c *tooltipConfig) {
		c.content = content
	}
}

// TooltipOpen sets whether the tooltip is shown.
func TooltipOpen(open bool) TooltipOption {
	return func(c *tooltipConfig) {
		c.open = open
	}
}

// TooltipSide sets the tooltip side (top, right, bottom, left).
func TooltipSide(side string) TooltipOption {
	return func(c *tooltipConfig) {
		c.side = side
	}
}

// TooltipAlign sets the alignment (start, center, end).
func TooltipAlign(align string) TooltipOption {
	return func(c *tooltipConfig) {
		c.align = align
	}
}

// TooltipChildren sets the trigger children.
func TooltipChildren(children ...any) TooltipOption {
	return func(c *tooltipConfig) {
		c.children = children
	}
}

// Tooltip renders a trigger with a floating tooltip positioned by the
// popper scope.
func Tooltip(opts ...TooltipOption) *vdom.VNode {
	cfg := defaultTooltipConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	triggerArgs := []any{
		vdom.Class("tooltip-trigger"),
		vdom.Data("tooltip-trigger", "true"),
	}
	triggerArgs = append(triggerArgs, cfg.children...)
	trigger := vdom.Span(triggerArgs...)

	state := TooltipState{Content: cfg.content, Open: cfg.open}
	position := PopperConfig{Side: cfg.side, Align: cfg.align, Offset: 4}

	return vdom.Div(
		vdom.Class("tooltip"),
		tooltipProvider.Render(state,
			popperProvider.Render(position,
				trigger,
				TooltipPopup(),
			),
		),
	)
}

// TooltipPopup renders the floating content from the ambient tooltip and
// popper state. Must be used beneath a Tooltip.
func TooltipPopup() *vdom.VNode {
	return vdom.Lazy(func() *vdom.VNode {
		state := tooltipConsumer.Consume("useTooltipContext")
		position := popperConsumer.Consume("usePopperContext")

		args := []any{
			vdom.Class("tooltip-content"),
			vdom.Role("tooltip"),
			vdom.Data("side", position.Side),
			vdom.Data("align", position.Align),
			vdom.Data("state", openState(state.Open)),
			vdom.StyleAttr(styleOffset(position.Side, position.Offset)),
			vdom.Text(state.Content),
		}
		if !state.Open {
			args = append(args, vdom.Hidden())
		}
		return vdom.Span(args...)
	})
}

func openState(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}

// styleOffset is a tiny helper kept here so the popup's inline offset
// stays readable.
func styleOffset(side string, px int) string {
	return fmt.Sprintf("margin-%s:%dpx", opposite(side), px)
}

func opposite(side string) string {
	switch side {
	case "top":
		return "bottom"
	case "bottom":
		return "top"
	case "left":
		return "right"
	case "right":
		return "left"
	default:
		return "bottom"
	}
}
