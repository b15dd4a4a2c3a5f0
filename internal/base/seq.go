package base

import (
	"github.com/b-rodrigues/tlang-sub002/internal/builtins"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

// registerSeq registers `seq(from, to)` / `seq(from, to, by)`. Marked
// variadic with a minimum arity of 2 so both call shapes dispatch
// through the same native function.
func registerSeq(r *builtins.Registry) {
	r.Register("seq", 2, true, builtins.CategorySeq, "builds an ascending or descending integer sequence",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			if len(args) > 3 {
				return runtime.NewErrorf(runtime.ArityError, "seq expects 2 or 3 arguments, got %d", len(args))
			}
			from, ok := args[0].Value.(runtime.Integer)
			if !ok {
				return runtime.NewErrorf(runtime.TypeError, "seq: from must be an Integer, got %s", args[0].Value.Type())
			}
			to, ok := args[1].Value.(runtime.Integer)
			if !ok {
				return runtime.NewErrorf(runtime.TypeError, "seq: to must be an Integer, got %s", args[1].Value.Type())
			}
			by := runtime.Integer(1)
			if len(args) == 3 {
				b, ok := args[2].Value.(runtime.Integer)
				if !ok {
					return runtime.NewErrorf(runtime.TypeError, "seq: by must be an Integer, got %s", args[2].Value.Type())
				}
				by = b
			}
			if by == 0 {
				return runtime.NewError(runtime.ValueError, "seq: by must not be zero")
			}
			if (by > 0 && from > to) || (by < 0 && from < to) {
				return &runtime.List{}
			}

			var items []runtime.ListItem
			if by > 0 {
				for v := from; v <= to; v += by {
					items = append(items, runtime.ListItem{Value: v})
				}
			} else {
				for v := from; v >= to; v += by {
					items = append(items, runtime.ListItem{Value: v})
				}
			}
			return &runtime.List{Items: items}
		})
}
