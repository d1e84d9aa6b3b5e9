package ui

import (
	"github.com/stephen9412/primitives/pkg/scope"
	"github.com/stephen9412/primitives/pkg/vdom"
)

// AccordionState is the root accordion state: the expansion mode and the
// value of the currently open item.
type AccordionState struct {
	Type  string // "single" or "multiple"
	Value string // open item value ("single" mode)
}

// The accordion registers two independent contexts under one scope: the
// root state at index 0 and the per-item value at index 1. The item
// context has no default, so item parts outside an AccordionItem fail
// loudly.
var (
	accordionScope, accordionScopeFactory = scope.NewContextScope("Accordion")

	accordionProvider, accordionConsumer = scope.Create(accordionScope, "Accordion",
		AccordionState{Type: "single"})

	accordionItemProvider, accordionItemConsumer = scope.Create[string](accordionScope, "AccordionItem")
)

// AccordionScopeFactory exposes the accordion scope for composition.
func AccordionScopeFactory() scope.HookFactory {
	return accordionScopeFactory
}

// AccordionOption configures an Accordion component.
type AccordionOption func(*accordionConfig)

type accordionConfig struct {
	state    AccordionState
	children []any
}

// AccordionType sets the expansion mode ("single" or "multiple").
func AccordionType(mode string) AccordionOption {
	return func(c *accordionConfig) {
		c.state.Type = mode
	}
}

// AccordionValue sets the open item's value.
func AccordionValue(value string) AccordionOption {
	return func(c *accordionConfig) {
		c.state.Value = value
	}
}

// AccordionItems sets the item children.
func AccordionItems(items ...any) AccordionOption {
	return func(c *accordionConfig) {
		c.children = items
	}
}

// Accordion renders the root accordion and provides its state to items.
func Accordion(opts ...AccordionOption) *vdom.VNode {
	cfg := accordionConfig{
		state: AccordionState{Type: "single"},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return vdom.Div(
		vdom.Class("accordion"),
		vdom.Data("type", cfg.state.Type),
		accordionProvider.Render(cfg.state, cfg.children...),
	)
}

// AccordionItem provides the item's value to its trigger and content.
func AccordionItem(value string, children ...any) *vdom.VNode {
	return vdom.Section(
		vdom.Class("accordion-item"),
		vdom.Data("value", value),
		accordionItemProvider.Render(value, children...),
	)
}

// AccordionTrigger renders the item's toggle button, reflecting whether
// its item is the open one. Must be used beneath an AccordionItem.
func AccordionTrigger(label string) *vdom.VNode {
	return vdom.Lazy(func() *vdom.VNode {
		state := accordionConsumer.Consume("useAccordionContext")
		item := accordionItemConsumer.Consume("useAccordionItemContext")
		open := state.Value == item

		return vdom.Button(
			vdom.Class("accordion-trigger"),
			vdom.AriaExpanded(open),
			vdom.AriaControls("accordion-content-"+item),
			vdom.Data("state", openState(open)),
			vdom.Text(label),
		)
	})
}

// AccordionContent renders the item's panel, hidden unless the item is
// open. Must be used beneath an AccordionItem.
func AccordionContent(children ...any) *vdom.VNode {
	return vdom.Lazy(func() *vdom.VNode {
		state := accordionConsumer.Consume("useAccordionContext")
		item := accordionItemConsumer.Consume("useAccordionItemContext")
		open := state.Value == item

		args := []any{
			vdom.ID("accordion-content-" + item),
			vdom.Class("accordion-content"),
			vdom.Role("region"),
			vdom.Data("state", openState(open)),
		}
		if !open {
			args = append(args, vdom.Hidden())
		}
		args = append(args, children...)
		return vdom.Div(args...)
	})
}
