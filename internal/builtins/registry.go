// Package builtins defines the registry interface the core evaluator
// dispatches through. It registers no functions of its own — concrete
// builtins are the job of a base/core collaborator package (see
// internal/base) that plugs in through Register.
package builtins

import (
	"sort"
	"sync"

	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

// Category groups registered functions for introspection (`explain`,
// REPL help) without affecting lookup or dispatch.
type Category string

const (
	CategoryIO         Category = "io"
	CategoryIntrospect Category = "introspect"
	CategoryNA         Category = "na"
	CategorySeq        Category = "seq"
	CategoryHigher     Category = "higher_order"
	CategoryErrors     Category = "errors"
	CategoryString     Category = "string"
	CategoryJSON       Category = "json"
)

// Info holds metadata about one registered builtin.
type Info struct {
	Name        string
	Arity       int
	Variadic    bool
	Category    Category
	Description string
	Fn          runtime.BuiltinFunc
}

// Registry is a name-keyed store of native functions. Lookups are
// case-sensitive, unlike the teacher's case-insensitive DWScript
// registry: tlang identifiers are themselves case-sensitive (spec's
// lexer treats `Foo` and `foo` as distinct names), so the registry
// follows suit rather than special-casing builtin names.
type Registry struct {
	mu         sync.RWMutex
	functions  map[string]*Info
	categories map[Category][]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		functions:  make(map[string]*Info),
		categories: make(map[Category][]string),
	}
}

// Register adds or replaces a builtin under name.
func (r *Registry) Register(name string, arity int, variadic bool, category Category, description string, fn runtime.BuiltinFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	info := &Info{
		Name:        name,
		Arity:       arity,
		Variadic:    variadic,
		Category:    category,
		Description: description,
		Fn:          fn,
	}

	if _, exists := r.functions[name]; !exists {
		r.categories[category] = append(r.categories[category], name)
	}
	r.functions[name] = info
}

// Lookup returns the runtime.Builtin value for name, wrapping the
// registered Info so the evaluator can call it uniformly alongside
// user Lambdas.
func (r *Registry) Lookup(name string) (*runtime.Builtin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, ok := r.functions[name]
	if !ok {
		return nil, false
	}
	return &runtime.Builtin{
		Name:     info.Name,
		Arity:    info.Arity,
		Variadic: info.Variadic,
		Fn:       info.Fn,
	}, true
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.functions[name]
	return ok
}

// Names returns every registered name, sorted, for environment
// seeding and "did you mean" candidate pools.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByCategory returns every Info registered under category, sorted by
// name.
func (r *Registry) ByCategory(category Category) []*Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := append([]string(nil), r.categories[category]...)
	sort.Strings(names)

	result := make([]*Info, 0, len(names))
	for _, name := range names {
		result = append(result, r.functions[name])
	}
	return result
}

// Categories returns every category with at least one registered
// function, sorted.
func (r *Registry) Categories() []Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cats := make([]Category, 0, len(r.categories))
	for c := range r.categories {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

// Count returns the number of registered builtins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.functions)
}
