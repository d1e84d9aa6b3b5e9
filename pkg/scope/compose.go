package scope

// NewContextScope creates the registry for a named scope together with its
// HookFactory. When factories from dependency libraries are passed, the
// returned factory is the composition of this scope's base factory with
// all of them (base factory first); otherwise the base factory is returned
// unchanged.
func NewContextScope(scopeName string, deps ...HookFactory) (*Creator, HookFactory) {
	creator := &Creator{scopeName: scopeName}

	base := HookFactory(func() Hook {
		return func(s Scope) Map {
			next := s.Clone()
			if next == nil {
				next = make(Scope, 1)
			}
			// Live snapshot: handles reflect the registrations made up to
			// the moment the hook runs.
			next[creator.scopeName] = creator.handles()
			return Map{ScopeKey(creator.scopeName): next}
		}
	})

	if len(deps) == 0 {
		return creator, base
	}

	all := make([]HookFactory, 0, len(deps)+1)
	all = append(all, base)
	all = append(all, deps...)
	return creator, ComposeScopes(all...)
}

// ComposeScopes merges several scope hook factories into one, for a
// composite component that depends on multiple libraries' scopes.
//
// The composed hook calls every constituent hook with a copy of the same
// input scope and folds the outputs into one map. A colliding key (two
// libraries sharing a scope name) resolves last-write-wins: the earlier
// library's entry is silently replaced. The fold is then reduced to a
// single entry under BaseScopeKey whose scope is the union of the
// surviving outputs.
//
// The reduction upstream of this library took whichever folded entry map
// iteration yielded first, dropping every other scope's data
// nondeterministically when more than two scopes were composed. The union
// here is the deterministic replacement: distinct scope names lose
// nothing, and the last-write-wins collision behavior is unchanged.
func ComposeScopes(factories ...HookFactory) HookFactory {
	if len(factories) == 1 {
		return factories[0]
	}

	return func() Hook {
		hooks := make([]Hook, 0, len(factories))
		for _, factory := range factories {
			hooks = append(hooks, factory())
		}

		return func(s Scope) Map {
			folded := make(Map, len(hooks))
			for _, hook := range hooks {
				for key, sub := range hook(s.Clone()) {
					folded[key] = sub
				}
			}

			if len(folded) == 0 {
				return Map{}
			}

			base := make(Scope)
			for _, sub := range folded {
				for name, ctxs := range sub {
					base[name] = ctxs
				}
			}
			return Map{BaseScopeKey: base}
		}
	}
}
