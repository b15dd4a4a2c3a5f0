package pipeline

import (
	"testing"

	"github.com/b-rodrigues/tlang-sub002/internal/ast"
	"github.com/b-rodrigues/tlang-sub002/internal/lexer"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

// evalStub is a tiny evaluator covering just enough expression shapes
// (literals, identifiers, `+`) to drive Run/Recompute without pulling
// in the full evaluator package, which would import pipeline back.
func evalStub(env *runtime.Environment, expr ast.Expression) runtime.Value {
	switch x := expr.(type) {
	case *ast.IntegerLiteral:
		return runtime.Integer(x.Value)
	case *ast.Identifier:
		v, ok := env.Find(x.Name)
		if !ok {
			return runtime.NewErrorf(runtime.NameError, "unbound name %q", x.Name)
		}
		return v
	case *ast.BinaryExpr:
		l := evalStub(env, x.Left)
		if runtime.IsError(l) {
			return l
		}
		r := evalStub(env, x.Right)
		if runtime.IsError(r) {
			return r
		}
		li, lok := l.(runtime.Integer)
		ri, rok := r.(runtime.Integer)
		if !lok || !rok || x.Op != lexer.PLUS {
			return runtime.NewErrorf(runtime.TypeError, "evalStub only supports Integer +")
		}
		return li + ri
	default:
		return runtime.NewErrorf(runtime.TypeError, "evalStub: unsupported node %T", expr)
	}
}

func TestRunEvaluatesNodesInDependencyOrderAndThreadsBindings(t *testing.T) {
	plan, err := Build([]ast.PipelineNode{
		{Name: "b", Value: plus(ident("a"), &ast.IntegerLiteral{Value: 1})},
		{Name: "a", Value: &ast.IntegerLiteral{Value: 10}},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	result, errVal := Run(plan, runtime.NewRootEnvironment(), evalStub)
	if errVal != nil {
		t.Fatalf("Run: %v", errVal)
	}
	if result.Values["a"] != runtime.Integer(10) {
		t.Fatalf("a = %v, want 10", result.Values["a"])
	}
	if result.Values["b"] != runtime.Integer(11) {
		t.Fatalf("b = %v, want 11", result.Values["b"])
	}
}

func TestRunWrapsFailingNodeAsValueError(t *testing.T) {
	plan, err := Build([]ast.PipelineNode{
		{Name: "a", Value: ident("missing")},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	_, errVal := Run(plan, runtime.NewRootEnvironment(), evalStub)
	if errVal == nil || errVal.Code != runtime.ValueError {
		t.Fatalf("expected a ValueError naming the failing node, got %v", errVal)
	}
	node, _ := errVal.ContextValue("node")
	if node != runtime.String("a") {
		t.Fatalf("expected context node=a, got %v", node)
	}
}

func TestRecomputeSkipsCleanNodesAndReevaluatesDirtyOnes(t *testing.T) {
	plan, err := Build([]ast.PipelineNode{
		{Name: "a", Value: &ast.IntegerLiteral{Value: 1}},
		{Name: "b", Value: plus(ident("a"), ident("x"))},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	env1 := runtime.NewRootEnvironment().Bind("x", runtime.Integer(1))
	prior, errVal := Run(plan, env1, evalStub)
	if errVal != nil {
		t.Fatalf("Run: %v", errVal)
	}
	if prior.Values["b"] != runtime.Integer(2) {
		t.Fatalf("b = %v, want 2", prior.Values["b"])
	}

	env2 := runtime.NewRootEnvironment().Bind("x", runtime.Integer(5))
	next, errVal := Recompute(plan, env2, prior, evalStub)
	if errVal != nil {
		t.Fatalf("Recompute: %v", errVal)
	}
	if next.Values["a"] != runtime.Integer(1) {
		t.Fatalf("a should stay 1 (clean), got %v", next.Values["a"])
	}
	if next.Values["b"] != runtime.Integer(6) {
		t.Fatalf("b should recompute to 6 after x changed, got %v", next.Values["b"])
	}
}
