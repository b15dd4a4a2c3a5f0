package base

import (
	"fmt"
	"io"
	"strings"

	"github.com/b-rodrigues/tlang-sub002/internal/builtins"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

// registerIO registers `print` and `println`, both variadic and
// writing through w — the same sink `explain`/REPL output uses, kept
// separate from the evaluator's diagnostic warning stream.
func registerIO(r *builtins.Registry, w io.Writer) {
	r.Register("print", 0, true, builtins.CategoryIO, "writes every argument with no separator or trailing newline",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			var sb strings.Builder
			for _, a := range args {
				sb.WriteString(a.Value.String())
			}
			fmt.Fprint(w, sb.String())
			return runtime.NullValue
		})

	r.Register("println", 0, true, builtins.CategoryIO, "writes every argument with no separator, then a newline",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			var sb strings.Builder
			for _, a := range args {
				sb.WriteString(a.Value.String())
			}
			fmt.Fprintln(w, sb.String())
			return runtime.NullValue
		})
}
