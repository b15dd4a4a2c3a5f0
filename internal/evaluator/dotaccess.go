package evaluator

import (
	"github.com/b-rodrigues/tlang-sub002/internal/ast"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

// evalDotAccess resolves `target.field` across every value kind that
// supports it: Dict (direct key, or partial-prefix
// chaining when no direct key exists but some key shares the
// accumulated prefix), List (named-element lookup), DataFrame (column
// lookup with the same partial-prefix chaining) and PipelineResult
// (node lookup). An Error target is returned unchanged and an NA
// target is a TypeError.
func (e *Evaluator) evalDotAccess(x *ast.DotAccess, env *runtime.Environment) runtime.Value {
	target := e.EvalExpr(x.Target, env)
	if runtime.IsError(target) {
		return target
	}
	if runtime.IsNA(target) {
		return runtime.NewErrorf(runtime.TypeError, "cannot access field %q of NA", x.Field)
	}

	switch v := target.(type) {
	case *runtime.Dict:
		return dotAccessDict(v, x.Field)
	case *runtime.List:
		if val, ok := v.Find(x.Field); ok {
			return val
		}
		return runtime.NewErrorf(runtime.KeyError, "no element named %q", x.Field)
	case runtime.DataFrame:
		return dotAccessDataFrame(v, x.Field)
	case *runtime.PipelineResult:
		if val, ok := v.Node(x.Field); ok {
			return val
		}
		return runtime.NewErrorf(runtime.KeyError, "pipeline has no node named %q", x.Field)
	case *runtime.ErrorValue:
		if val, ok := v.ContextValue(x.Field); ok {
			return val
		}
		return runtime.NewErrorf(runtime.KeyError, "error has no context field %q", x.Field)
	default:
		return runtime.NewErrorf(runtime.TypeError, "cannot access field %q of a %s", x.Field, target.Type())
	}
}

func dotAccessDict(d *runtime.Dict, field string) runtime.Value {
	if prefix, ok := d.IsPartialDot(); ok {
		return resolvePartialDot(d, prefix, field)
	}
	if v, ok := d.Get(field); ok {
		return v
	}
	if d.HasPrefix(field) {
		return runtime.NewPartialDot(d, field)
	}
	return runtime.NewErrorf(runtime.KeyError, "no key named %q", field)
}

// resolvePartialDot completes the next hop of a dotted chain against a
// partial-prefix carrier: look up the fully accumulated "prefix.field"
// key in the real dict the carrier was built over, returning its value
// when present, extending the carrier one field further when the key
// is itself still a prefix of something deeper, and KeyError otherwise.
func resolvePartialDot(carrier *runtime.Dict, prefix, field string) runtime.Value {
	realVal, _ := carrier.Get(runtime.PartialDotDictKey)
	real, ok := realVal.(*runtime.Dict)
	if !ok {
		return runtime.NewErrorf(runtime.TypeError, "cannot access field %q of an incomplete dotted reference", field)
	}
	full := prefix + "." + field
	if v, ok := real.Get(full); ok {
		return v
	}
	if real.HasPrefix(full) {
		return runtime.NewPartialDot(carrier, field)
	}
	return runtime.NewErrorf(runtime.KeyError, "no key named %q", full)
}

func dotAccessDataFrame(df runtime.DataFrame, field string) runtime.Value {
	if v, ok := df.Column(field); ok {
		return v
	}
	if df.HasColumnPrefix(field) {
		return runtime.NewPartialDot(df.ColumnsWithPrefix(field), field)
	}
	return runtime.NewErrorf(runtime.KeyError, "no column named %q", field)
}

// evalPipe implements `|>` / `?|>`. `|>` inserts left as
// the first positional argument of a call on the right (or calls a
// bare right with left as its sole argument), and short-circuits
// without ever evaluating the call when left is an Error. `?|>` is
// unconditional: it forwards left — Error or NA included — as a
// normal argument value, never special-casing it.
func (e *Evaluator) evalPipe(x *ast.PipeExpr, env *runtime.Environment) runtime.Value {
	left := e.EvalExpr(x.Left, env)

	if !x.Unconditional && runtime.IsError(left) {
		return left
	}

	callee, extraArgs := pipeTarget(x.Right)

	calleeVal := e.EvalExpr(callee, env)
	if runtime.IsError(calleeVal) {
		return calleeVal
	}

	args := make([]runtime.Arg, 0, len(extraArgs)+1)
	args = append(args, runtime.Arg{Kind: ast.ArgPositional, Value: left})
	for _, a := range extraArgs {
		v := e.evalCallArgument(a, env)
		if runtime.IsError(v) {
			return v
		}
		args = append(args, runtime.Arg{Kind: a.Kind, Name: a.Name, Value: v})
	}

	return e.evalCallValue(calleeVal, args, env)
}

// pipeTarget splits the right-hand side of a pipe into the callee
// expression and any arguments already written at the call site
// (`x |> f(a, b)` pipes into f ahead of a and b; a bare `x |> f` calls
// f with x as its only argument).
func pipeTarget(right ast.Expression) (ast.Expression, []ast.Argument) {
	if call, ok := right.(*ast.CallExpr); ok {
		return call.Callee, call.Args
	}
	return right, nil
}
