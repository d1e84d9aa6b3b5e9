package primitives

import "fmt"

// MissingProviderError is the panic value raised when a context consumer
// runs with no enclosing provider and no registered default. This is a
// contract violation by the component author, not a runtime condition:
// it is surfaced as a panic rather than a returned error so it cannot be
// caught and ignored by accident.
//
// The message names both the offending consumer call-site and the provider
// that was expected to enclose it:
//
//	`useTooltipContext` must be used within `Tooltip`
type MissingProviderError struct {
	// Consumer is the call-site name supplied to Use/Consume.
	Consumer string

	// Root is the root component name fixed at factory creation.
	Root string
}

// Error implements the error interface.
func (e *MissingProviderError) Error() string {
	return fmt.Sprintf("`%s` must be used within `%s`", e.Consumer, e.Root)
}
