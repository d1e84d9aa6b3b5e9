package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// Href sets the href attribute.
func Href(href string) Attr { return attr("href", href) }

// Data creates a data-* attribute.
// Example: Data("state", "open") → data-state="open"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// Hidden sets the hidden attribute.
func Hidden() Attr { return attr("hidden", true) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attr { return attr("aria-expanded", expanded) }

// AriaControls sets the aria-controls attribute.
func AriaControls(id string) Attr { return attr("aria-controls", id) }

// AriaLabelledBy sets the aria-labelledby attribute.
func AriaLabelledBy(id string) Attr { return attr("aria-labelledby", id) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// CN joins class name fragments, skipping empty ones.
func CN(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
