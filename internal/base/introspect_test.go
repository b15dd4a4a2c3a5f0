package base

import (
	"testing"

	"github.com/b-rodrigues/tlang-sub002/internal/builtins"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

func newIntrospectRegistry() *builtins.Registry {
	r := builtins.NewRegistry()
	registerIntrospect(r)
	return r
}

func TestIntrospectType(t *testing.T) {
	r := newIntrospectRegistry()
	b, _ := r.Lookup("type")
	got := b.Fn([]runtime.Arg{{Value: runtime.Integer(1)}}, nil, nil)
	if got.String() != "Integer" {
		t.Fatalf("type returned %v, want Integer", got)
	}
}

func TestIntrospectLength(t *testing.T) {
	r := newIntrospectRegistry()
	b, _ := r.Lookup("length")

	lst := &runtime.List{Items: []runtime.ListItem{{Value: runtime.Integer(1)}, {Value: runtime.Integer(2)}}}
	got := b.Fn([]runtime.Arg{{Value: lst}}, nil, nil)
	if got != runtime.Integer(2) {
		t.Fatalf("length returned %v, want 2", got)
	}

	got = b.Fn([]runtime.Arg{{Value: runtime.Integer(5)}}, nil, nil)
	if !runtime.IsError(got) {
		t.Fatalf("length of a scalar should error, got %v", got)
	}
}

func TestIntrospectHeadAndTail(t *testing.T) {
	r := newIntrospectRegistry()
	head, _ := r.Lookup("head")
	tail, _ := r.Lookup("tail")

	lst := &runtime.List{Items: []runtime.ListItem{
		{Value: runtime.Integer(1)}, {Value: runtime.Integer(2)}, {Value: runtime.Integer(3)},
	}}

	if got := head.Fn([]runtime.Arg{{Value: lst}}, nil, nil); got != runtime.Integer(1) {
		t.Fatalf("head returned %v, want 1", got)
	}

	rest := tail.Fn([]runtime.Arg{{Value: lst}}, nil, nil).(*runtime.List)
	if len(rest.Items) != 2 || rest.Items[0].Value != runtime.Integer(2) {
		t.Fatalf("tail returned %v, want [2, 3]", rest)
	}

	empty := &runtime.List{}
	if got := head.Fn([]runtime.Arg{{Value: empty}}, nil, nil); !runtime.IsError(got) {
		t.Fatalf("head of empty list should error, got %v", got)
	}
}

func TestIntrospectIsError(t *testing.T) {
	r := newIntrospectRegistry()
	b, _ := r.Lookup("is_error")

	if got := b.Fn([]runtime.Arg{{Value: runtime.NewError(runtime.ValueError, "boom")}}, nil, nil); got != runtime.Bool(true) {
		t.Fatalf("is_error(Error) = %v, want true", got)
	}
	if got := b.Fn([]runtime.Arg{{Value: runtime.Integer(1)}}, nil, nil); got != runtime.Bool(false) {
		t.Fatalf("is_error(Integer) = %v, want false", got)
	}
}

func TestIntrospectAssert(t *testing.T) {
	r := newIntrospectRegistry()
	b, _ := r.Lookup("assert")

	if got := b.Fn([]runtime.Arg{{Value: runtime.Bool(true)}}, nil, nil); got != runtime.NullValue {
		t.Fatalf("assert(true) = %v, want Null", got)
	}

	got := b.Fn([]runtime.Arg{{Value: runtime.Bool(false)}, {Value: runtime.String("nope")}}, nil, nil)
	e, ok := got.(*runtime.ErrorValue)
	if !ok || e.Code != runtime.AssertionError || e.Message != "nope" {
		t.Fatalf("assert(false, \"nope\") = %v, want AssertionError(nope)", got)
	}
}
