// Package evaluator walks an *ast.Program against a *runtime.Environment,
// producing runtime.Value results. It is the tree-walking core of
// tlang: one dispatch switch per node category, errors returned as
// ordinary values rather than Go panics.
package evaluator

import (
	"github.com/b-rodrigues/tlang-sub002/internal/ast"
	"github.com/b-rodrigues/tlang-sub002/internal/diag"
	"github.com/b-rodrigues/tlang-sub002/internal/pipeline"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

// Evaluator holds the (optional) diagnostic sink overwrite statements
// write a warning to. A zero-value Evaluator discards
// diagnostics, matching REPL one-shot usage where there is nothing to
// attach a stream to.
type Evaluator struct {
	Diagnostics *diag.Stream
}

// New builds an Evaluator that writes overwrite-warnings to w.
func New(w *diag.Stream) *Evaluator {
	return &Evaluator{Diagnostics: w}
}

// EvalProgram threads env through every top-level statement in
// program, returning the value of the last statement (Null for an
// empty program) and the final environment.
func (e *Evaluator) EvalProgram(program *ast.Program, env *runtime.Environment) (runtime.Value, *runtime.Environment) {
	var last runtime.Value = runtime.NullValue
	for _, stmt := range program.Statements {
		last, env = e.evalStatement(stmt, env)
		if runtime.IsError(last) {
			return last, env
		}
	}
	return last, env
}

func (e *Evaluator) evalStatement(stmt ast.Statement, env *runtime.Environment) (runtime.Value, *runtime.Environment) {
	switch s := stmt.(type) {
	case *ast.FirstAssignStmt:
		return e.evalFirstAssign(s, env)
	case *ast.OverwriteStmt:
		return e.evalOverwrite(s, env)
	case *ast.ExprStmt:
		return e.EvalExpr(s.Expression, env), env
	case *ast.ImportStmt:
		return runtime.NullValue, env
	default:
		return runtime.NewErrorf(runtime.GenericError, "unhandled statement type %T", stmt), env
	}
}

func (e *Evaluator) evalFirstAssign(s *ast.FirstAssignStmt, env *runtime.Environment) (runtime.Value, *runtime.Environment) {
	if env.IsBoundInCurrentScope(s.Name) {
		return runtime.NewReassignError(s.Name), env
	}
	v := e.EvalExpr(s.Value, env)
	if runtime.IsError(v) {
		return v, env
	}
	return v, env.Bind(s.Name, v)
}

func (e *Evaluator) evalOverwrite(s *ast.OverwriteStmt, env *runtime.Environment) (runtime.Value, *runtime.Environment) {
	if _, ok := env.Find(s.Name); !ok {
		return runtime.NewOverwriteUndefinedError(s.Name), env
	}
	v := e.EvalExpr(s.Value, env)
	if runtime.IsError(v) {
		return v, env
	}
	if e.Diagnostics != nil {
		e.Diagnostics.Warnf("overwriting %q via `:=`", s.Name)
	}
	return v, env.Bind(s.Name, v)
}

// EvalExpr evaluates a single expression in env.
func (e *Evaluator) EvalExpr(expr ast.Expression, env *runtime.Environment) runtime.Value {
	switch x := expr.(type) {
	case nil:
		return runtime.NullValue
	case *ast.IntegerLiteral:
		return runtime.Integer(x.Value)
	case *ast.FloatLiteral:
		return runtime.Float(x.Value)
	case *ast.StringLiteral:
		return runtime.String(x.Value)
	case *ast.BoolLiteral:
		return runtime.Bool(x.Value)
	case *ast.NullLiteral:
		return runtime.NullValue
	case *ast.NALiteral:
		return runtime.NA{Kind: runtime.NAGeneric}
	case *ast.Identifier:
		if v, ok := env.Find(x.Name); ok {
			return v
		}
		return runtime.Symbol{Name: x.Name}
	case *ast.ColumnRef:
		return runtime.Symbol{Name: "$" + x.Name}
	case *ast.UnaryExpr:
		return e.evalUnary(x, env)
	case *ast.BinaryExpr:
		return e.evalBinary(x, env)
	case *ast.PipeExpr:
		return e.evalPipe(x, env)
	case *ast.IfExpr:
		return e.evalIf(x, env)
	case *ast.LambdaExpr:
		return &runtime.Lambda{
			Params:      x.Params,
			ReturnType:  x.ReturnType,
			Generics:    x.Generics,
			Variadic:    x.Variadic,
			Body:        x.Body,
			CapturedEnv: env,
		}
	case *ast.CallExpr:
		return e.evalCall(x, env)
	case *ast.ListLiteral:
		return e.evalList(x, env)
	case *ast.DictLiteral:
		return e.evalDict(x, env)
	case *ast.DotAccess:
		return e.evalDotAccess(x, env)
	case *ast.Block:
		return e.evalBlock(x, env)
	case *ast.PipelineDef:
		return e.evalPipelineDef(x, env)
	case *ast.IntentDef:
		return e.evalIntentDef(x, env)
	case *ast.Formula:
		return e.evalFormula(x, env)
	default:
		return runtime.NewErrorf(runtime.GenericError, "unhandled expression type %T", expr)
	}
}

func (e *Evaluator) evalBlock(b *ast.Block, env *runtime.Environment) runtime.Value {
	scope := runtime.NewEnclosedEnvironment(env)
	var last runtime.Value = runtime.NullValue
	for _, stmt := range b.Statements {
		last, scope = e.evalStatement(stmt, scope)
		if runtime.IsError(last) {
			return last
		}
	}
	return last
}

func (e *Evaluator) evalIf(x *ast.IfExpr, env *runtime.Environment) runtime.Value {
	cond := e.EvalExpr(x.Condition, env)
	if runtime.IsError(cond) {
		return cond
	}
	if runtime.IsNA(cond) {
		return runtime.NewError(runtime.TypeError, "if condition cannot be NA")
	}
	truthy, err := runtime.Truthy(cond)
	if err != nil {
		return runtime.NewErrorf(runtime.TypeError, "if condition: %s", err)
	}
	if truthy {
		return e.EvalExpr(x.Then, env)
	}
	return e.EvalExpr(x.Else, env)
}

func (e *Evaluator) evalList(x *ast.ListLiteral, env *runtime.Environment) runtime.Value {
	items := make([]runtime.ListItem, 0, len(x.Elements))
	for _, el := range x.Elements {
		v := e.EvalExpr(el.Value, env)
		if runtime.IsError(v) {
			return v
		}
		items = append(items, runtime.ListItem{Name: el.Name, Value: v})
	}
	return &runtime.List{Items: items}
}

func (e *Evaluator) evalDict(x *ast.DictLiteral, env *runtime.Environment) runtime.Value {
	d := runtime.NewDict()
	for _, entry := range x.Entries {
		v := e.EvalExpr(entry.Value, env)
		if runtime.IsError(v) {
			return v
		}
		d = d.Set(entry.Key, v)
	}
	return d
}

func (e *Evaluator) evalFormula(x *ast.Formula, env *runtime.Environment) runtime.Value {
	return &runtime.FormulaValue{
		Response:  collectFormulaNames(x.RawLHS),
		Predictor: collectFormulaNames(x.RawRHS),
		RawLHS:    x.RawLHS,
		RawRHS:    x.RawRHS,
	}
}

// collectFormulaNames walks a `+`-tree of bare names, dropping the
// literal `1` intercept marker. Any operator other than `+` (e.g. `*`
// interaction terms) contributes no names — see DESIGN.md Open
// Question (c).
func collectFormulaNames(expr ast.Expression) []string {
	switch x := expr.(type) {
	case *ast.Identifier:
		return []string{x.Name}
	case *ast.IntegerLiteral:
		if x.Value == 1 {
			return nil
		}
		return nil
	case *ast.BinaryExpr:
		if x.Op.String() != "+" {
			return nil
		}
		return append(collectFormulaNames(x.Left), collectFormulaNames(x.Right)...)
	default:
		return nil
	}
}

func (e *Evaluator) evalIntentDef(x *ast.IntentDef, env *runtime.Environment) runtime.Value {
	intent := &runtime.Intent{}
	for _, f := range x.Fields {
		v := e.EvalExpr(f.Value, env)
		if runtime.IsError(v) {
			return v
		}
		s, ok := v.(runtime.String)
		if !ok {
			return runtime.NewErrorf(runtime.TypeError, "intent field %q must evaluate to a string, got %s", f.Key, v.Type())
		}
		intent.Fields = append(intent.Fields, runtime.DictEntry{Key: f.Key, Value: s})
	}
	return intent
}

func (e *Evaluator) evalPipelineDef(x *ast.PipelineDef, env *runtime.Environment) runtime.Value {
	plan, err := pipeline.Build(x.Nodes)
	if err != nil {
		return runtime.NewErrorf(runtime.ValueError, "%s", err)
	}
	result, errVal := pipeline.Run(plan, env, func(scope *runtime.Environment, expr ast.Expression) runtime.Value {
		return e.EvalExpr(expr, scope)
	})
	if errVal != nil {
		return errVal
	}
	return result
}
