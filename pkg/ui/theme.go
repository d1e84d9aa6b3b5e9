package ui

import (
	"github.com/stephen9412/primitives/pkg/primitives"
	"github.com/stephen9412/primitives/pkg/vdom"
)

// ThemeContext carries the active color theme through the tree.
// Defaults to "light" when no provider encloses the consumer.
var ThemeContext = primitives.CreateContext("ThemeProvider", "light")

// ThemeProvider makes a theme available to all descendants.
func ThemeProvider(theme string, children ...any) *vdom.VNode {
	return ThemeContext.Provider(theme, children...)
}

// UseTheme returns the nearest provided theme, or the default.
func UseTheme() string {
	return ThemeContext.Use("useTheme")
}
