package evaluator

import (
	"github.com/b-rodrigues/tlang-sub002/internal/ast"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

func (e *Evaluator) evalCall(x *ast.CallExpr, env *runtime.Environment) runtime.Value {
	callee := e.EvalExpr(x.Callee, env)
	if runtime.IsError(callee) {
		return callee
	}

	args := make([]runtime.Arg, 0, len(x.Args))
	for _, a := range x.Args {
		v := e.evalCallArgument(a, env)
		if runtime.IsError(v) {
			return v
		}
		args = append(args, runtime.Arg{Kind: a.Kind, Name: a.Name, Value: v})
	}

	return e.evalCallValue(callee, args, env)
}

// evalCallArgument evaluates one call argument, applying the NSE
// transform when the raw expression mentions a `$col`
// reference anywhere: instead of evaluating eagerly, it is rewritten
// into a one-parameter lambda over an implicit `row` so a row-wise
// verb can apply it per record. A bare `$col` is left alone — it
// evaluates to the Symbol the verb itself consumes, not a lambda.
func (e *Evaluator) evalCallArgument(a ast.Argument, env *runtime.Environment) runtime.Value {
	if _, ok := a.Value.(*ast.ColumnRef); ok {
		return e.EvalExpr(a.Value, env)
	}
	if containsColumnRef(a.Value) {
		return &runtime.Lambda{
			Params:      []ast.Param{{Name: nseRowParam}},
			Body:        desugarColumnRefs(a.Value),
			CapturedEnv: env,
		}
	}
	return e.EvalExpr(a.Value, env)
}

// evalCallValue dispatches a call given an already-evaluated callee
// and already-evaluated arguments.
func (e *Evaluator) evalCallValue(callee runtime.Value, args []runtime.Arg, env *runtime.Environment) runtime.Value {
	switch v := callee.(type) {
	case *runtime.Builtin:
		return e.callBuiltin(v, args, env)
	case *runtime.Lambda:
		return e.callLambda(v, args, env)
	case runtime.Symbol:
		return runtime.NewNameError(v.Name, env.Names())
	case *runtime.ErrorValue:
		return v
	case runtime.NA:
		return runtime.NewError(runtime.TypeError, "cannot call NA")
	default:
		return runtime.NewErrorf(runtime.TypeError, "value of type %s is not callable", callee.Type())
	}
}

func (e *Evaluator) callBuiltin(b *runtime.Builtin, args []runtime.Arg, env *runtime.Environment) runtime.Value {
	if !b.Variadic && len(args) != b.Arity {
		return runtime.NewErrorf(runtime.ArityError, "%s expects %d argument(s), got %d", b.Name, b.Arity, len(args))
	}
	if b.Variadic && len(args) < b.Arity {
		return runtime.NewErrorf(runtime.ArityError, "%s expects at least %d argument(s), got %d", b.Name, b.Arity, len(args))
	}
	return b.Fn(args, env, e.evalCallableAdapter)
}

// callLambda binds args to params in a scope enclosing either the
// lambda's captured environment, or — when CapturedEnv is nil (an
// "unbound" lambda, used only for builtin-synthesized callables) —
// the caller's environment.
func (e *Evaluator) callLambda(lam *runtime.Lambda, args []runtime.Arg, callerEnv *runtime.Environment) runtime.Value {
	base := lam.CapturedEnv
	if base == nil {
		base = callerEnv
	}
	scope := runtime.NewEnclosedEnvironment(base)

	named := make(map[string]runtime.Value)
	var positional []runtime.Value
	for _, a := range args {
		if a.Kind == ast.ArgPositional {
			positional = append(positional, a.Value)
		} else {
			named[a.Name] = a.Value
		}
	}

	fixedParams := lam.Params
	variadicName := ""
	if lam.Variadic && len(lam.Params) > 0 {
		fixedParams = lam.Params[:len(lam.Params)-1]
		variadicName = lam.Params[len(lam.Params)-1].Name
	}

	posIdx := 0
	for _, p := range fixedParams {
		if v, ok := named[p.Name]; ok {
			scope = scope.Bind(p.Name, v)
			delete(named, p.Name)
			continue
		}
		if posIdx < len(positional) {
			scope = scope.Bind(p.Name, positional[posIdx])
			posIdx++
			continue
		}
		return runtime.NewErrorf(runtime.ArityError, "missing argument for parameter %q", p.Name)
	}

	if variadicName != "" {
		rest := make([]runtime.ListItem, 0, len(positional)-posIdx)
		for ; posIdx < len(positional); posIdx++ {
			rest = append(rest, runtime.ListItem{Value: positional[posIdx]})
		}
		scope = scope.Bind(variadicName, &runtime.List{Items: rest})
	} else if posIdx < len(positional) {
		return runtime.NewErrorf(runtime.ArityError, "too many positional arguments: expected %d, got %d", len(fixedParams), len(positional))
	}

	for name := range named {
		return runtime.NewErrorf(runtime.ArityError, "unexpected named argument %q", name)
	}

	return e.EvalExpr(lam.Body, scope)
}

// evalCallableAdapter satisfies runtime.EvalCallable so builtins can
// invoke user callables (e.g. `map`, `filter`) without importing this
// package.
func (e *Evaluator) evalCallableAdapter(env *runtime.Environment, callee runtime.Value, args []runtime.Arg) runtime.Value {
	return e.evalCallValue(callee, args, env)
}
