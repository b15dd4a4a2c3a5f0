package pipeline

import (
	"testing"

	"github.com/b-rodrigues/tlang-sub002/internal/ast"
	"github.com/b-rodrigues/tlang-sub002/internal/lexer"
)

func ident(name string) ast.Expression {
	return &ast.Identifier{Name: name}
}

func plus(left ast.Expression, right ast.Expression) ast.Expression {
	return &ast.BinaryExpr{Op: lexer.PLUS, Left: left, Right: right}
}

func TestBuildOrdersNodesByDependency(t *testing.T) {
	nodes := []ast.PipelineNode{
		{Name: "c", Value: plus(ident("a"), ident("b"))},
		{Name: "a", Value: &ast.IntegerLiteral{Value: 1}},
		{Name: "b", Value: &ast.IntegerLiteral{Value: 2}},
	}
	plan, err := Build(nodes)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	pos := make(map[string]int, len(plan.Order))
	for i, n := range plan.Order {
		pos[n] = i
	}
	if pos["a"] >= pos["c"] || pos["b"] >= pos["c"] {
		t.Fatalf("expected a and b to precede c, got order %v", plan.Order)
	}
	if got := plan.Deps["c"]; len(got) != 2 {
		t.Fatalf("c should depend on a and b, got %v", got)
	}
}

func TestBuildIsDeterministicOnUnrelatedNodes(t *testing.T) {
	nodes := []ast.PipelineNode{
		{Name: "x", Value: &ast.IntegerLiteral{Value: 1}},
		{Name: "y", Value: &ast.IntegerLiteral{Value: 2}},
		{Name: "z", Value: &ast.IntegerLiteral{Value: 3}},
	}
	plan, err := Build(nodes)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := []string{"x", "y", "z"}
	for i, name := range want {
		if plan.Order[i] != name {
			t.Fatalf("Order = %v, want source order %v", plan.Order, want)
		}
	}
}

func TestBuildDetectsCycle(t *testing.T) {
	nodes := []ast.PipelineNode{
		{Name: "a", Value: ident("b")},
		{Name: "b", Value: ident("a")},
	}
	_, err := Build(nodes)
	if err == nil {
		t.Fatal("expected a cycle error")
	}
	if _, ok := err.(*CycleError); !ok {
		t.Fatalf("expected *CycleError, got %T: %v", err, err)
	}
}

func TestBuildDetectsDuplicateNodeName(t *testing.T) {
	nodes := []ast.PipelineNode{
		{Name: "a", Value: &ast.IntegerLiteral{Value: 1}},
		{Name: "a", Value: &ast.IntegerLiteral{Value: 2}},
	}
	_, err := Build(nodes)
	if err == nil {
		t.Fatal("expected a duplicate-node error")
	}
	if _, ok := err.(*DuplicateNodeError); !ok {
		t.Fatalf("expected *DuplicateNodeError, got %T: %v", err, err)
	}
}

func TestFreeVarsCollectsIdentifiersAcrossNesting(t *testing.T) {
	expr := &ast.CallExpr{
		Callee: ident("f"),
		Args: []ast.Argument{
			{Value: plus(ident("x"), ident("y"))},
		},
	}
	free := FreeVars(expr)
	for _, name := range []string{"f", "x", "y"} {
		if !free[name] {
			t.Fatalf("expected %q in free vars, got %v", name, free)
		}
	}
}
