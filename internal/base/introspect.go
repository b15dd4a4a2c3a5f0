package base

import (
	"github.com/b-rodrigues/tlang-sub002/internal/builtins"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

func registerIntrospect(r *builtins.Registry) {
	r.Register("type", 1, false, builtins.CategoryIntrospect, "returns a value's runtime type name as a String",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			return runtime.String(args[0].Value.Type())
		})

	r.Register("length", 1, false, builtins.CategoryIntrospect, "returns the element count of a List, Dict, or String",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			n, err := elementCount(args[0].Value)
			if err != nil {
				return err
			}
			return runtime.Integer(n)
		})

	r.Register("head", 1, false, builtins.CategoryIntrospect, "returns the first element of a non-empty List",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			lst, ok := args[0].Value.(*runtime.List)
			if !ok {
				return runtime.NewErrorf(runtime.TypeError, "head requires a List, got %s", args[0].Value.Type())
			}
			if len(lst.Items) == 0 {
				return runtime.NewError(runtime.IndexError, "head of an empty List")
			}
			return lst.Items[0].Value
		})

	r.Register("tail", 1, false, builtins.CategoryIntrospect, "returns every element of a List after the first",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			lst, ok := args[0].Value.(*runtime.List)
			if !ok {
				return runtime.NewErrorf(runtime.TypeError, "tail requires a List, got %s", args[0].Value.Type())
			}
			if len(lst.Items) == 0 {
				return runtime.NewError(runtime.IndexError, "tail of an empty List")
			}
			rest := make([]runtime.ListItem, len(lst.Items)-1)
			copy(rest, lst.Items[1:])
			return &runtime.List{Items: rest}
		})

	r.Register("is_error", 1, false, builtins.CategoryIntrospect, "reports whether a value is an Error",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			return runtime.Bool(runtime.IsError(args[0].Value))
		})

	r.Register("assert", 1, true, builtins.CategoryIntrospect, "raises an AssertionError if its first argument is not truthy",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			ok, err := runtime.Truthy(args[0].Value)
			if err != nil {
				return runtime.NewErrorf(runtime.AssertionError, "assert: %s", err)
			}
			if !ok {
				if len(args) > 1 {
					if msg, isStr := args[1].Value.(runtime.String); isStr {
						return runtime.NewError(runtime.AssertionError, string(msg))
					}
				}
				return runtime.NewError(runtime.AssertionError, "assertion failed")
			}
			return runtime.NullValue
		})
}

func elementCount(v runtime.Value) (int, *runtime.ErrorValue) {
	switch x := v.(type) {
	case *runtime.List:
		return len(x.Items), nil
	case *runtime.Dict:
		return len(x.Entries), nil
	case runtime.String:
		return len([]rune(string(x))), nil
	default:
		return 0, runtime.NewErrorf(runtime.TypeError, "length is not defined for %s", v.Type())
	}
}
