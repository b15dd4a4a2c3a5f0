package base

import (
	"github.com/b-rodrigues/tlang-sub002/internal/builtins"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

var knownCodes = map[runtime.ErrorCode]bool{
	runtime.TypeError:      true,
	runtime.ArityError:     true,
	runtime.NameError:      true,
	runtime.DivisionByZero: true,
	runtime.KeyError:       true,
	runtime.IndexError:     true,
	runtime.AssertionError: true,
	runtime.FileError:      true,
	runtime.ValueError:     true,
	runtime.GenericError:   true,
}

// registerErrors registers the constructor and accessors that make
// tlang's error values inspectable and constructible from user code,
// rather than only produced by the evaluator itself.
func registerErrors(r *builtins.Registry) {
	r.Register("error", 2, false, builtins.CategoryErrors, "constructs an Error value with the given code and message",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			code, ok := args[0].Value.(runtime.String)
			if !ok {
				return runtime.NewErrorf(runtime.TypeError, "error: code must be a String, got %s", args[0].Value.Type())
			}
			msg, ok := args[1].Value.(runtime.String)
			if !ok {
				return runtime.NewErrorf(runtime.TypeError, "error: message must be a String, got %s", args[1].Value.Type())
			}
			ec := runtime.ErrorCode(string(code))
			if !knownCodes[ec] {
				return runtime.NewErrorf(runtime.ValueError, "error: %q is not a recognized error code", string(code))
			}
			return runtime.NewError(ec, string(msg))
		})

	r.Register("error_code", 1, false, builtins.CategoryErrors, "returns an Error's code as a String",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			e, ok := args[0].Value.(*runtime.ErrorValue)
			if !ok {
				return runtime.NewErrorf(runtime.TypeError, "error_code requires an Error, got %s", args[0].Value.Type())
			}
			return runtime.String(e.Code)
		})

	r.Register("error_message", 1, false, builtins.CategoryErrors, "returns an Error's message as a String",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			e, ok := args[0].Value.(*runtime.ErrorValue)
			if !ok {
				return runtime.NewErrorf(runtime.TypeError, "error_message requires an Error, got %s", args[0].Value.Type())
			}
			return runtime.String(e.Message)
		})

	r.Register("error_context", 2, false, builtins.CategoryErrors, "looks up a key in an Error's context, or NA if absent",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			e, ok := args[0].Value.(*runtime.ErrorValue)
			if !ok {
				return runtime.NewErrorf(runtime.TypeError, "error_context requires an Error, got %s", args[0].Value.Type())
			}
			key, ok := args[1].Value.(runtime.String)
			if !ok {
				return runtime.NewErrorf(runtime.TypeError, "error_context: key must be a String, got %s", args[1].Value.Type())
			}
			if v, found := e.ContextValue(string(key)); found {
				return v
			}
			return runtime.NA{Kind: runtime.NAGeneric}
		})
}
