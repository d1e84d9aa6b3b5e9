package scope

// Contexts is the ordered list of context handles registered in one scope.
// Each handle is the context's default value, or Unit if the context was
// registered without one. The slice index is the handle used to correlate
// a context pair with its slot.
type Contexts []any

// Scope maps a scope name to the ordered context handles belonging to that
// scope. A nil Scope means "no scope yet"; hooks treat it as empty.
type Scope map[string]Contexts

// Clone returns a shallow copy of the scope. Cloning nil yields nil.
func (s Scope) Clone() Scope {
	if s == nil {
		return nil
	}
	next := make(Scope, len(s))
	for k, v := range s {
		next[k] = v
	}
	return next
}

// Map is a hook's output: scope entries keyed by ScopeKey(name).
type Map map[string]Scope

// Hook maps an existing (possibly nil) Scope to new scope entries.
type Hook func(Scope) Map

// HookFactory yields a fresh Hook per invocation. Libraries export one per
// scope; composites merge them with ComposeScopes.
type HookFactory func() Hook

// Unit is the placeholder handle recorded in a scope for a context that
// was registered without a default value.
type Unit struct{}

const scopeKeyPrefix = "__scope"

// ScopeKey returns the entry key a scope's hook publishes its result
// under.
func ScopeKey(name string) string {
	return scopeKeyPrefix + name
}

// BaseScopeKey is the fixed key a composed hook publishes the merged
// scope under.
const BaseScopeKey = scopeKeyPrefix + "baseScope"
