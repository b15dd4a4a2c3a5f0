package base

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/b-rodrigues/tlang-sub002/internal/builtins"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

// registerStrings registers the String builtins: case folding, trimming,
// Unicode normalization, and locale-aware comparison.
func registerStrings(r *builtins.Registry) {
	r.Register("str_upper", 1, false, builtins.CategoryString, "uppercases a String",
		stringMapFn("str_upper", strings.ToUpper))

	r.Register("str_lower", 1, false, builtins.CategoryString, "lowercases a String",
		stringMapFn("str_lower", strings.ToLower))

	r.Register("str_trim", 1, false, builtins.CategoryString, "trims leading and trailing whitespace from a String",
		stringMapFn("str_trim", strings.TrimSpace))

	r.Register("str_normalize", 1, false, builtins.CategoryString, "applies NFC Unicode normalization to a String",
		stringMapFn("str_normalize", norm.NFC.String))

	r.Register("str_compare", 2, false, builtins.CategoryString, "locale-aware comparison of two Strings, returning -1, 0, or 1",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			a, ok := args[0].Value.(runtime.String)
			if !ok {
				return runtime.NewErrorf(runtime.TypeError, "str_compare requires Strings, got %s", args[0].Value.Type())
			}
			b, ok := args[1].Value.(runtime.String)
			if !ok {
				return runtime.NewErrorf(runtime.TypeError, "str_compare requires Strings, got %s", args[1].Value.Type())
			}
			c := collate.New(language.Und)
			return runtime.Integer(c.CompareString(string(a), string(b)))
		})
}

// stringMapFn adapts a pure string->string function into a BuiltinFunc
// operating on a single String argument.
func stringMapFn(name string, f func(string) string) runtime.BuiltinFunc {
	return func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
		s, ok := args[0].Value.(runtime.String)
		if !ok {
			return runtime.NewErrorf(runtime.TypeError, "%s requires a String, got %s", name, args[0].Value.Type())
		}
		return runtime.String(f(string(s)))
	}
}
