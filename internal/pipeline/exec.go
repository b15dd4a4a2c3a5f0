package pipeline

import (
	"github.com/b-rodrigues/tlang-sub002/internal/ast"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

// EvalFn evaluates a single expression in env. The evaluator package
// supplies this so pipeline never imports it back (it would cycle).
type EvalFn func(env *runtime.Environment, expr ast.Expression) runtime.Value

// Run evaluates every node of plan, in topological order, inside a
// scope built from outerEnv plus each already-computed node's value
// bound under its own name (so later nodes read earlier ones like
// ordinary variables). The first node whose expression evaluates to
// an error value stops the run; its error is rewrapped as a
// ValueError naming the failing node, so a pipeline's own failure
// says which node broke instead of surfacing the node's error
// verbatim.
func Run(plan *Plan, outerEnv *runtime.Environment, eval EvalFn) (*runtime.PipelineResult, *runtime.ErrorValue) {
	scope := runtime.NewEnclosedEnvironment(outerEnv)
	values := make(map[string]runtime.Value, len(plan.Order))

	for _, name := range plan.Order {
		v := eval(scope, plan.Exprs[name])
		if runtime.IsError(v) {
			orig := v.(*runtime.ErrorValue)
			return nil, runtime.NewErrorf(runtime.ValueError, "pipeline node %q failed: %s", name, orig.Message).
				WithContext("node", runtime.String(name))
		}
		values[name] = v
		scope = scope.Bind(name, v)
	}

	return &runtime.PipelineResult{
		Order:  plan.Order,
		Values: values,
		Exprs:  plan.Exprs,
		Deps:   plan.Deps,
	}, nil
}

// Recompute re-runs only the nodes whose result could have changed: a
// node is dirty if any external (non-node) free variable it reads is
// bound in outerEnv (prior keeps no record of external values, so a
// bound external name always counts as changed), or if it depends —
// directly or transitively — on a dirty node. Clean nodes keep their cached
// value from prior without re-evaluation.
func Recompute(plan *Plan, outerEnv *runtime.Environment, prior *runtime.PipelineResult, eval EvalFn) (*runtime.PipelineResult, *runtime.ErrorValue) {
	dirty := make(map[string]bool, len(plan.Order))
	nodeSet := make(map[string]bool, len(plan.Order))
	for _, n := range plan.Order {
		nodeSet[n] = true
	}

	for _, name := range plan.Order {
		if dirty[name] {
			continue
		}
		for dep := range FreeVars(plan.Exprs[name]) {
			if nodeSet[dep] {
				continue // internal dependency, handled by propagation below
			}
			cur, curOK := outerEnv.Find(dep)
			prev, prevOK := priorExternalValue(prior, dep)
			if curOK != prevOK || (curOK && !valuesEqual(cur, prev)) {
				dirty[name] = true
				break
			}
		}
	}
	// Propagate dirtiness to dependents, in topological order so a
	// dependency's dirtiness is known before its dependents are checked.
	for _, name := range plan.Order {
		if dirty[name] {
			continue
		}
		for _, dep := range plan.Deps[name] {
			if dirty[dep] {
				dirty[name] = true
				break
			}
		}
	}

	scope := runtime.NewEnclosedEnvironment(outerEnv)
	values := make(map[string]runtime.Value, len(plan.Order))
	for _, name := range plan.Order {
		var v runtime.Value
		if dirty[name] {
			v = eval(scope, plan.Exprs[name])
			if runtime.IsError(v) {
				orig := v.(*runtime.ErrorValue)
				return nil, runtime.NewErrorf(runtime.ValueError, "pipeline node %q failed: %s", name, orig.Message).
					WithContext("node", runtime.String(name))
			}
		} else {
			v = prior.Values[name]
		}
		values[name] = v
		scope = scope.Bind(name, v)
	}

	return &runtime.PipelineResult{
		Order:  plan.Order,
		Values: values,
		Exprs:  plan.Exprs,
		Deps:   plan.Deps,
	}, nil
}

// priorExternalValue has no record of external inputs on a bare
// PipelineResult snapshot, so dirty-checking external frees always
// treats them as potentially changed on every Recompute. Callers that want precise external-change detection across
// runs should keep their own snapshot of the external names a plan
// reads and diff it themselves before calling Recompute; this helper
// exists so that diffing logic has one place to live.
func priorExternalValue(prior *runtime.PipelineResult, name string) (runtime.Value, bool) {
	if prior == nil {
		return nil, false
	}
	v, ok := prior.Values[name]
	return v, ok
}

func valuesEqual(a, b runtime.Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type() != b.Type() {
		return false
	}
	return a.String() == b.String()
}
