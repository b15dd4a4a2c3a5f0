package base

import (
	"github.com/b-rodrigues/tlang-sub002/internal/builtins"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

// registerHigherOrder registers `map`, `filter`, `sum`, `reduce` — the
// builtins that need to call back into user code, via the evaluator
// callback every builtin receives as its third parameter.
func registerHigherOrder(r *builtins.Registry) {
	r.Register("map", 2, false, builtins.CategoryHigher, "applies a one-argument callable to every element of a List",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			lst, ok := args[0].Value.(*runtime.List)
			if !ok {
				return runtime.NewErrorf(runtime.TypeError, "map requires a List as its first argument, got %s", args[0].Value.Type())
			}
			out := make([]runtime.ListItem, len(lst.Items))
			for i, it := range lst.Items {
				v := eval(env, args[1].Value, []runtime.Arg{{Value: it.Value}})
				if runtime.IsError(v) {
					return v
				}
				out[i] = runtime.ListItem{Name: it.Name, Value: v}
			}
			return &runtime.List{Items: out}
		})

	r.Register("filter", 2, false, builtins.CategoryHigher, "keeps every element of a List for which a one-argument callable returns a truthy Bool",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			lst, ok := args[0].Value.(*runtime.List)
			if !ok {
				return runtime.NewErrorf(runtime.TypeError, "filter requires a List as its first argument, got %s", args[0].Value.Type())
			}
			var out []runtime.ListItem
			for _, it := range lst.Items {
				v := eval(env, args[1].Value, []runtime.Arg{{Value: it.Value}})
				if runtime.IsError(v) {
					return v
				}
				keep, err := runtime.Truthy(v)
				if err != nil {
					return runtime.NewErrorf(runtime.TypeError, "filter predicate: %s", err)
				}
				if keep {
					out = append(out, it)
				}
			}
			return &runtime.List{Items: out}
		})

	r.Register("sum", 1, false, builtins.CategoryHigher, "sums the numeric elements of a List",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			lst, ok := args[0].Value.(*runtime.List)
			if !ok {
				return runtime.NewErrorf(runtime.TypeError, "sum requires a List, got %s", args[0].Value.Type())
			}
			var fsum float64
			allInt := true
			var isum int64
			for _, it := range lst.Items {
				switch n := it.Value.(type) {
				case runtime.Integer:
					isum += int64(n)
					fsum += float64(n)
				case runtime.Float:
					allInt = false
					fsum += float64(n)
				default:
					return runtime.NewErrorf(runtime.TypeError, "sum: element of type %s is not numeric", it.Value.Type())
				}
			}
			if allInt {
				return runtime.Integer(isum)
			}
			return runtime.Float(fsum)
		})

	r.Register("reduce", 3, false, builtins.CategoryHigher, "folds a List with a two-argument (accumulator, element) callable, starting from an initial value",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			lst, ok := args[0].Value.(*runtime.List)
			if !ok {
				return runtime.NewErrorf(runtime.TypeError, "reduce requires a List as its first argument, got %s", args[0].Value.Type())
			}
			acc := args[2].Value
			for _, it := range lst.Items {
				acc = eval(env, args[1].Value, []runtime.Arg{{Value: acc}, {Value: it.Value}})
				if runtime.IsError(acc) {
					return acc
				}
			}
			return acc
		})
}
