package evaluator

import "github.com/b-rodrigues/tlang-sub002/internal/ast"

// nseRowParam is the implicit parameter name bound to one record when
// a `$col`-bearing argument is desugared into a row lambda.
const nseRowParam = "row"

// containsColumnRef reports whether expr mentions a `$col` reference
// anywhere in its tree — the trigger for the NSE transform.
func containsColumnRef(expr ast.Expression) bool {
	found := false
	walkExpr(expr, func(n ast.Expression) {
		if _, ok := n.(*ast.ColumnRef); ok {
			found = true
		}
	})
	return found
}

// desugarColumnRefs rewrites every `$col` in expr into `row.col`,
// producing the body of the implicit row lambda.
func desugarColumnRefs(expr ast.Expression) ast.Expression {
	switch x := expr.(type) {
	case nil:
		return nil
	case *ast.ColumnRef:
		return &ast.DotAccess{Tok: x.Tok, Target: &ast.Identifier{Tok: x.Tok, Name: nseRowParam}, Field: x.Name}
	case *ast.BinaryExpr:
		return &ast.BinaryExpr{Tok: x.Tok, Op: x.Op, Broadcast: x.Broadcast,
			Left: desugarColumnRefs(x.Left), Right: desugarColumnRefs(x.Right)}
	case *ast.UnaryExpr:
		return &ast.UnaryExpr{Tok: x.Tok, Op: x.Op, Operand: desugarColumnRefs(x.Operand)}
	case *ast.CallExpr:
		newArgs := make([]ast.Argument, len(x.Args))
		for i, a := range x.Args {
			newArgs[i] = ast.Argument{Kind: a.Kind, Name: a.Name, Value: desugarColumnRefs(a.Value)}
		}
		return &ast.CallExpr{Tok: x.Tok, Callee: desugarColumnRefs(x.Callee), Args: newArgs}
	case *ast.DotAccess:
		return &ast.DotAccess{Tok: x.Tok, Target: desugarColumnRefs(x.Target), Field: x.Field}
	case *ast.IfExpr:
		return &ast.IfExpr{Tok: x.Tok,
			Condition: desugarColumnRefs(x.Condition),
			Then:      desugarColumnRefs(x.Then),
			Else:      desugarColumnRefs(x.Else)}
	case *ast.ListLiteral:
		elems := make([]ast.ListElement, len(x.Elements))
		for i, el := range x.Elements {
			elems[i] = ast.ListElement{Name: el.Name, Value: desugarColumnRefs(el.Value)}
		}
		return &ast.ListLiteral{Tok: x.Tok, Elements: elems}
	case *ast.DictLiteral:
		entries := make([]ast.DictEntry, len(x.Entries))
		for i, en := range x.Entries {
			entries[i] = ast.DictEntry{Key: en.Key, Value: desugarColumnRefs(en.Value)}
		}
		return &ast.DictLiteral{Tok: x.Tok, Entries: entries}
	default:
		return expr
	}
}

// walkExpr visits expr and every subexpression reachable through the
// forms NSE desugaring understands, calling visit on each.
func walkExpr(expr ast.Expression, visit func(ast.Expression)) {
	if expr == nil {
		return
	}
	visit(expr)
	switch x := expr.(type) {
	case *ast.BinaryExpr:
		walkExpr(x.Left, visit)
		walkExpr(x.Right, visit)
	case *ast.UnaryExpr:
		walkExpr(x.Operand, visit)
	case *ast.CallExpr:
		walkExpr(x.Callee, visit)
		for _, a := range x.Args {
			walkExpr(a.Value, visit)
		}
	case *ast.DotAccess:
		walkExpr(x.Target, visit)
	case *ast.IfExpr:
		walkExpr(x.Condition, visit)
		walkExpr(x.Then, visit)
		walkExpr(x.Else, visit)
	case *ast.ListLiteral:
		for _, el := range x.Elements {
			walkExpr(el.Value, visit)
		}
	case *ast.DictLiteral:
		for _, en := range x.Entries {
			walkExpr(en.Value, visit)
		}
	}
}
