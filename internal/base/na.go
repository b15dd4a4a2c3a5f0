package base

import (
	"github.com/b-rodrigues/tlang-sub002/internal/builtins"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

// registerNA registers the typed NA constructors and the `is_na`
// predicate. The constructors take no arguments: NA carries no payload
// besides its kind tag.
func registerNA(r *builtins.Registry) {
	kinds := []struct {
		name string
		kind runtime.NAKind
	}{
		{"na", runtime.NAGeneric},
		{"na_bool", runtime.NABool},
		{"na_int", runtime.NAInt},
		{"na_float", runtime.NAFloat},
		{"na_string", runtime.NAString},
	}
	for _, k := range kinds {
		kind := k.kind
		r.Register(k.name, 0, false, builtins.CategoryNA, "constructs a typed NA value",
			func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
				return runtime.NA{Kind: kind}
			})
	}

	r.Register("is_na", 1, false, builtins.CategoryNA, "reports whether a value is any NA variant",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			return runtime.Bool(runtime.IsNA(args[0].Value))
		})
}
