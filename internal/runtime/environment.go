package runtime

// Environment is a persistent, immutable name→Value mapping built as
// a linked chain of single bindings. Binding never mutates an existing
// node: Bind returns a new *Environment whose parent is the
// receiver, so any environment value captured earlier (e.g. by a
// closure) keeps observing exactly what it saw at capture time.
//
// A scopeRoot node is a parentless-in-spirit marker with no binding
// of its own: it delimits "the current environment" for the
// first-assignment immutability check without blocking
// name resolution across the boundary — Block and lambda-call bodies
// start a fresh scope by enclosing over it.
type Environment struct {
	parent    *Environment
	name      string
	value     Value
	scopeRoot bool
}

// NewRootEnvironment returns the empty top-level environment. It is
// simply a nil *Environment: every method on Environment is defined
// to behave correctly on a nil receiver, so the empty environment
// needs no sentinel allocation.
func NewRootEnvironment() *Environment {
	return nil
}

// NewEnclosedEnvironment starts a fresh lexical scope whose lookups
// fall through to outer. Used for block bodies and lambda calls.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{parent: outer, scopeRoot: true}
}

// Find resolves name anywhere in the scope chain (local scope, then
// outward through every enclosing scope), the normal reading rule for
// variable references.
func (e *Environment) Find(name string) (Value, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if !cur.scopeRoot && cur.name == name {
			return cur.value, true
		}
	}
	return nil, false
}

// Bind returns a new environment with name bound to value, shadowing
// any prior binding of the same name. Callers are expected to have
// already checked whatever first-assign/overwrite rule applies; Bind
// itself is an unconditional persistent "cons".
func (e *Environment) Bind(name string, value Value) *Environment {
	return &Environment{parent: e, name: name, value: value}
}

// IsBoundInCurrentScope reports whether name has already been bound
// since the most recent scope boundary (or, at the program's root
// scope, since the beginning) — the check first-assignment
// rule uses to reject `name = expr` redefinitions.
func (e *Environment) IsBoundInCurrentScope(name string) bool {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.name == name && !cur.scopeRoot {
			return true
		}
		if cur.scopeRoot {
			return false
		}
	}
	return false
}

// Names returns every bound name reachable from e, innermost first,
// each listed once. Used for "did you mean" candidate pools and
// pipeline/strict-mode introspection.
func (e *Environment) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for cur := e; cur != nil; cur = cur.parent {
		if cur.scopeRoot || cur.name == "" {
			continue
		}
		if !seen[cur.name] {
			seen[cur.name] = true
			names = append(names, cur.name)
		}
	}
	return names
}
