package builtins

import (
	"testing"

	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

func dummyFn(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
	return runtime.NullValue
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	r.Register("length", 1, false, CategoryIntrospect, "element count", dummyFn)

	b, ok := r.Lookup("length")
	if !ok {
		t.Fatalf("expected length to be registered")
	}
	if b.Name != "length" || b.Arity != 1 || b.Variadic {
		t.Fatalf("unexpected builtin metadata: %+v", b)
	}
}

func TestRegistryLookupIsCaseSensitive(t *testing.T) {
	r := NewRegistry()
	r.Register("length", 1, false, CategoryIntrospect, "element count", dummyFn)

	if _, ok := r.Lookup("Length"); ok {
		t.Fatalf("expected case-sensitive lookup to miss on Length")
	}
}

func TestRegistryReplaceDoesNotDuplicateCategory(t *testing.T) {
	r := NewRegistry()
	r.Register("sum", 1, true, CategoryHigher, "sum a list", dummyFn)
	r.Register("sum", 1, true, CategoryHigher, "sum a list (updated)", dummyFn)

	entries := r.ByCategory(CategoryHigher)
	if len(entries) != 1 {
		t.Fatalf("expected exactly one sum entry after replace, got %d", len(entries))
	}
	if entries[0].Description != "sum a list (updated)" {
		t.Fatalf("expected replace to update description, got %q", entries[0].Description)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("tail", 1, false, CategoryIntrospect, "", dummyFn)
	r.Register("head", 1, false, CategoryIntrospect, "", dummyFn)

	names := r.Names()
	if len(names) != 2 || names[0] != "head" || names[1] != "tail" {
		t.Fatalf("expected sorted [head tail], got %v", names)
	}
}

func TestRegistryCategoriesAndCount(t *testing.T) {
	r := NewRegistry()
	r.Register("print", 1, true, CategoryIO, "", dummyFn)
	r.Register("str_upper", 1, false, CategoryString, "", dummyFn)

	if r.Count() != 2 {
		t.Fatalf("expected 2 registered builtins, got %d", r.Count())
	}
	cats := r.Categories()
	if len(cats) != 2 {
		t.Fatalf("expected 2 categories, got %v", cats)
	}
}

func TestRegistryHasMissingName(t *testing.T) {
	r := NewRegistry()
	if r.Has("nope") {
		t.Fatalf("expected Has to report false for an unregistered name")
	}
}
