// Package pipeline computes the dependency graph of a `pipeline { ... }`
// definition and drives both its initial evaluation and its
// dirty-aware re-execution, mirroring two-phase
// compile-then-run split (internal/compiler building a plan, an
// executor walking it) but scaled down to a flat DAG of named node
// expressions instead of a full bytecode program.
package pipeline

import (
	"fmt"

	"github.com/b-rodrigues/tlang-sub002/internal/ast"
)

// Plan is the result of dependency analysis: a deterministic
// topological order over the pipeline's nodes, plus each node's
// direct dependencies (other node names its expression references).
type Plan struct {
	Order []string
	Deps  map[string][]string
	Exprs map[string]ast.Expression
}

// CycleError reports a dependency cycle detected while building a Plan.
type CycleError struct {
	Cycle []string
}

func (e *CycleError) Error() string {
	s := "pipeline dependency cycle: "
	for i, n := range e.Cycle {
		if i > 0 {
			s += " -> "
		}
		s += n
	}
	return s
}

// DuplicateNodeError reports two nodes sharing a name.
type DuplicateNodeError struct {
	Name string
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("duplicate pipeline node name %q", e.Name)
}

// Build computes a Plan for nodes: free-variable collection intersected
// with the set of node names gives each node's dependencies; a DFS
// with in-progress marking both orders the nodes topologically and
// detects cycles. Ties (nodes with no dependency relation to each
// other) are broken by source order, so the same pipeline definition
// always plans the same way.
func Build(nodes []ast.PipelineNode) (*Plan, error) {
	names := make(map[string]bool, len(nodes))
	exprs := make(map[string]ast.Expression, len(nodes))
	sourceOrder := make([]string, len(nodes))
	for i, n := range nodes {
		if names[n.Name] {
			return nil, &DuplicateNodeError{Name: n.Name}
		}
		names[n.Name] = true
		exprs[n.Name] = n.Value
		sourceOrder[i] = n.Name
	}

	deps := make(map[string][]string, len(nodes))
	for _, n := range nodes {
		free := FreeVars(n.Value)
		var d []string
		for _, s := range sourceOrder { // iterate in source order for determinism
			if s == n.Name {
				continue
			}
			if free[s] {
				d = append(d, s)
			}
		}
		deps[n.Name] = d
	}

	const (
		unvisited = 0
		visiting  = 1
		visited   = 2
	)
	state := make(map[string]int, len(nodes))
	var order []string
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visited:
			return nil
		case visiting:
			cyc := append(append([]string{}, path...), name)
			return &CycleError{Cycle: cyc}
		}
		state[name] = visiting
		path = append(path, name)
		for _, dep := range deps[name] {
			if err := visit(dep); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[name] = visited
		order = append(order, name)
		return nil
	}

	for _, name := range sourceOrder {
		if err := visit(name); err != nil {
			return nil, err
		}
	}

	return &Plan{Order: order, Deps: deps, Exprs: exprs}, nil
}

// FreeVars collects every bare identifier name referenced anywhere in
// expr, including those that are actually lambda parameters or block
// locals. This over-approximates true free variables, but pipeline
// node names are user-chosen and collisions with a nested lambda
// parameter are rare; treating the extra names as spurious
// dependencies only risks ordering a node later than strictly
// necessary, never incorrectly early — see DESIGN.md.
func FreeVars(expr ast.Node) map[string]bool {
	out := make(map[string]bool)
	collectFreeVars(expr, out)
	return out
}

func collectFreeVars(n ast.Node, out map[string]bool) {
	switch x := n.(type) {
	case nil:
		return
	case *ast.Identifier:
		out[x.Name] = true
	case *ast.BinaryExpr:
		collectFreeVars(x.Left, out)
		collectFreeVars(x.Right, out)
	case *ast.PipeExpr:
		collectFreeVars(x.Left, out)
		collectFreeVars(x.Right, out)
	case *ast.UnaryExpr:
		collectFreeVars(x.Operand, out)
	case *ast.CallExpr:
		collectFreeVars(x.Callee, out)
		for _, a := range x.Args {
			collectFreeVars(a.Value, out)
		}
	case *ast.LambdaExpr:
		collectFreeVars(x.Body, out)
	case *ast.IfExpr:
		collectFreeVars(x.Condition, out)
		collectFreeVars(x.Then, out)
		collectFreeVars(x.Else, out)
	case *ast.ListLiteral:
		for _, e := range x.Elements {
			collectFreeVars(e.Value, out)
		}
	case *ast.DictLiteral:
		for _, e := range x.Entries {
			collectFreeVars(e.Value, out)
		}
	case *ast.DotAccess:
		collectFreeVars(x.Target, out)
	case *ast.Block:
		for _, s := range x.Statements {
			collectFreeVars(s, out)
		}
	case *ast.FirstAssignStmt:
		collectFreeVars(x.Value, out)
	case *ast.OverwriteStmt:
		collectFreeVars(x.Value, out)
	case *ast.ExprStmt:
		collectFreeVars(x.Expression, out)
	case *ast.PipelineDef:
		for _, node := range x.Nodes {
			collectFreeVars(node.Value, out)
		}
	case *ast.IntentDef:
		for _, f := range x.Fields {
			collectFreeVars(f.Value, out)
		}
	case *ast.Formula:
		collectFreeVars(x.RawLHS, out)
		collectFreeVars(x.RawRHS, out)
	}
}
