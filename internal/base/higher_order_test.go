package base

import (
	"testing"

	"github.com/b-rodrigues/tlang-sub002/internal/builtins"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

// evalStub is a minimal runtime.EvalCallable good enough to drive
// map/filter/reduce in isolation: it only needs to invoke the
// *runtime.Builtin callees these tests construct by hand, not the full
// evaluator's Lambda/Symbol dispatch.
func evalStub(env *runtime.Environment, callee runtime.Value, args []runtime.Arg) runtime.Value {
	b, ok := callee.(*runtime.Builtin)
	if !ok {
		return runtime.NewErrorf(runtime.TypeError, "evalStub: %s is not callable", callee.Type())
	}
	return b.Fn(args, env, evalStub)
}

func builtinFn(fn func([]runtime.Arg) runtime.Value) *runtime.Builtin {
	return &runtime.Builtin{
		Name:  "test-fn",
		Arity: 1,
		Fn: func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			return fn(args)
		},
	}
}

func newHigherOrderRegistry() *builtins.Registry {
	r := builtins.NewRegistry()
	registerHigherOrder(r)
	return r
}

func intList(vs ...int64) *runtime.List {
	items := make([]runtime.ListItem, len(vs))
	for i, v := range vs {
		items[i] = runtime.ListItem{Value: runtime.Integer(v)}
	}
	return &runtime.List{Items: items}
}

func TestHigherOrderMap(t *testing.T) {
	r := newHigherOrderRegistry()
	b, _ := r.Lookup("map")

	double := builtinFn(func(args []runtime.Arg) runtime.Value {
		return args[0].Value.(runtime.Integer) * 2
	})

	got := b.Fn([]runtime.Arg{{Value: intList(1, 2, 3)}, {Value: double}}, nil, evalStub).(*runtime.List)
	want := []int64{2, 4, 6}
	for i, w := range want {
		if got.Items[i].Value != runtime.Integer(w) {
			t.Fatalf("map doubled[%d] = %v, want %d", i, got.Items[i].Value, w)
		}
	}
}

func TestHigherOrderFilter(t *testing.T) {
	r := newHigherOrderRegistry()
	b, _ := r.Lookup("filter")

	isEven := builtinFn(func(args []runtime.Arg) runtime.Value {
		return runtime.Bool(args[0].Value.(runtime.Integer)%2 == 0)
	})

	got := b.Fn([]runtime.Arg{{Value: intList(1, 2, 3, 4)}, {Value: isEven}}, nil, evalStub).(*runtime.List)
	if len(got.Items) != 2 || got.Items[0].Value != runtime.Integer(2) || got.Items[1].Value != runtime.Integer(4) {
		t.Fatalf("filter evens = %v, want [2, 4]", got)
	}
}

func TestHigherOrderSum(t *testing.T) {
	r := newHigherOrderRegistry()
	b, _ := r.Lookup("sum")

	got := b.Fn([]runtime.Arg{{Value: intList(1, 2, 3)}}, nil, evalStub)
	if got != runtime.Integer(6) {
		t.Fatalf("sum = %v, want 6", got)
	}

	mixed := &runtime.List{Items: []runtime.ListItem{
		{Value: runtime.Integer(1)}, {Value: runtime.Float(1.5)},
	}}
	got = b.Fn([]runtime.Arg{{Value: mixed}}, nil, evalStub)
	if got != runtime.Float(2.5) {
		t.Fatalf("sum(mixed) = %v, want 2.5", got)
	}
}

func TestHigherOrderReduce(t *testing.T) {
	r := newHigherOrderRegistry()
	b, _ := r.Lookup("reduce")

	add := &runtime.Builtin{
		Name:  "add",
		Arity: 2,
		Fn: func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			return args[0].Value.(runtime.Integer) + args[1].Value.(runtime.Integer)
		},
	}

	got := b.Fn([]runtime.Arg{{Value: intList(1, 2, 3)}, {Value: add}, {Value: runtime.Integer(10)}}, nil, evalStub)
	if got != runtime.Integer(16) {
		t.Fatalf("reduce sum starting at 10 = %v, want 16", got)
	}
}

func TestHigherOrderMapPropagatesCalleeError(t *testing.T) {
	r := newHigherOrderRegistry()
	b, _ := r.Lookup("map")

	failing := builtinFn(func(args []runtime.Arg) runtime.Value {
		return runtime.NewError(runtime.ValueError, "boom")
	})

	got := b.Fn([]runtime.Arg{{Value: intList(1)}, {Value: failing}}, nil, evalStub)
	if !runtime.IsError(got) {
		t.Fatalf("map with a failing callee = %v, want an error", got)
	}
}
