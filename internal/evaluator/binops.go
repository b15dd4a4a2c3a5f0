package evaluator

import (
	"math"

	"github.com/b-rodrigues/tlang-sub002/internal/ast"
	"github.com/b-rodrigues/tlang-sub002/internal/lexer"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

func (e *Evaluator) evalUnary(x *ast.UnaryExpr, env *runtime.Environment) runtime.Value {
	operand := e.EvalExpr(x.Operand, env)
	if runtime.IsError(operand) {
		return operand
	}
	if runtime.IsNA(operand) {
		return runtime.NewErrorf(runtime.TypeError, "unary %s cannot be applied to NA", x.Op)
	}
	switch x.Op {
	case lexer.BANG:
		b, err := runtime.Truthy(operand)
		if err != nil {
			return runtime.NewErrorf(runtime.TypeError, "!: %s", err)
		}
		return runtime.Bool(!b)
	case lexer.MINUS:
		switch v := operand.(type) {
		case runtime.Integer:
			return -v
		case runtime.Float:
			return -v
		default:
			return runtime.NewErrorf(runtime.TypeError, "unary - requires a number, got %s", operand.Type())
		}
	default:
		return runtime.NewErrorf(runtime.GenericError, "unhandled unary operator %s", x.Op)
	}
}

func (e *Evaluator) evalBinary(x *ast.BinaryExpr, env *runtime.Environment) runtime.Value {
	left := e.EvalExpr(x.Left, env)
	if runtime.IsError(left) {
		return runtime.NewErrorf(runtime.TypeError, "left operand of %s raised an error", x.Op)
	}
	right := e.EvalExpr(x.Right, env)
	if runtime.IsError(right) {
		return runtime.NewErrorf(runtime.TypeError, "right operand of %s raised an error", x.Op)
	}

	if x.Broadcast {
		return e.evalBroadcast(x.Op, left, right)
	}

	// `and`/`or` short-circuit at the Go level too, but both operands
	// were already evaluated above (tlang has no special lazy-boolean
	// AST node) — acceptable since neither has side effects beyond
	// further evaluation, unlike pipe's error short-circuit, which
	// does need to skip the call on the right entirely.
	switch x.Op {
	case lexer.AND:
		return logicalOp(left, right, func(a, b bool) bool { return a && b })
	case lexer.OR:
		return logicalOp(left, right, func(a, b bool) bool { return a || b })
	case lexer.IN:
		return evalIn(left, right)
	}

	if runtime.IsNA(left) || runtime.IsNA(right) {
		return runtime.NewErrorf(runtime.TypeError, "%s cannot be applied to NA", x.Op)
	}

	return scalarBinOp(x.Op, left, right)
}

func logicalOp(left, right runtime.Value, combine func(a, b bool) bool) runtime.Value {
	if runtime.IsNA(left) || runtime.IsNA(right) {
		return runtime.NewError(runtime.TypeError, "logical operators cannot be applied to NA")
	}
	lb, err := runtime.Truthy(left)
	if err != nil {
		return runtime.NewErrorf(runtime.TypeError, "logical operator: %s", err)
	}
	rb, err := runtime.Truthy(right)
	if err != nil {
		return runtime.NewErrorf(runtime.TypeError, "logical operator: %s", err)
	}
	return runtime.Bool(combine(lb, rb))
}

func evalIn(left, right runtime.Value) runtime.Value {
	if runtime.IsNA(left) {
		return runtime.NewError(runtime.TypeError, "`in` cannot be applied to NA")
	}
	list, ok := right.(*runtime.List)
	if !ok {
		return runtime.NewErrorf(runtime.TypeError, "`in` requires a List on the right, got %s", right.Type())
	}
	for _, item := range list.Items {
		if valueEquals(left, item.Value) {
			return runtime.Bool(true)
		}
	}
	return runtime.Bool(false)
}

func valueEquals(a, b runtime.Value) bool {
	af, aok := numericValue(a)
	bf, bok := numericValue(b)
	if aok && bok {
		return af == bf
	}
	return a.Type() == b.Type() && a.String() == b.String()
}

func numericValue(v runtime.Value) (float64, bool) {
	switch x := v.(type) {
	case runtime.Integer:
		return float64(x), true
	case runtime.Float:
		return float64(x), true
	default:
		return 0, false
	}
}

// scalarBinOp implements the non-broadcast arithmetic/comparison/
// bitwise operators over scalar operands: Integer/Float
// promotion (mixed operands promote to Float), division by zero as a
// DivisionByZero error rather than Inf/NaN, and string concatenation
// via `+`.
func scalarBinOp(op lexer.TokenType, left, right runtime.Value) runtime.Value {
	if ls, ok := left.(runtime.String); ok && op == lexer.PLUS {
		if rs, ok := right.(runtime.String); ok {
			return ls + rs
		}
		return runtime.NewErrorf(runtime.TypeError, "+ between String and %s is not supported", right.Type())
	}

	lf, lIsNum := numericValue(left)
	rf, rIsNum := numericValue(right)
	if !lIsNum || !rIsNum {
		if isComparisonOp(op) {
			return compareNonNumeric(op, left, right)
		}
		return runtime.NewErrorf(runtime.TypeError, "%s requires numeric operands, got %s and %s", op, left.Type(), right.Type())
	}

	_, lIsInt := left.(runtime.Integer)
	_, rIsInt := right.(runtime.Integer)
	bothInt := lIsInt && rIsInt

	switch op {
	case lexer.PLUS:
		if bothInt {
			return left.(runtime.Integer) + right.(runtime.Integer)
		}
		return runtime.Float(lf + rf)
	case lexer.MINUS:
		if bothInt {
			return left.(runtime.Integer) - right.(runtime.Integer)
		}
		return runtime.Float(lf - rf)
	case lexer.STAR:
		if bothInt {
			return left.(runtime.Integer) * right.(runtime.Integer)
		}
		return runtime.Float(lf * rf)
	case lexer.SLASH:
		if rf == 0 {
			return runtime.NewError(runtime.DivisionByZero, "division by zero")
		}
		return runtime.Float(lf / rf)
	case lexer.PERCENT:
		if rf == 0 {
			return runtime.NewError(runtime.DivisionByZero, "division by zero")
		}
		if bothInt {
			return left.(runtime.Integer) % right.(runtime.Integer)
		}
		return runtime.Float(modFloat(lf, rf))
	case lexer.EQ:
		return runtime.Bool(lf == rf)
	case lexer.NEQ:
		return runtime.Bool(lf != rf)
	case lexer.LT:
		return runtime.Bool(lf < rf)
	case lexer.GT:
		return runtime.Bool(lf > rf)
	case lexer.LE:
		return runtime.Bool(lf <= rf)
	case lexer.GE:
		return runtime.Bool(lf >= rf)
	case lexer.AMP:
		if bothInt {
			return left.(runtime.Integer) & right.(runtime.Integer)
		}
		return runtime.NewError(runtime.TypeError, "& requires Integer operands")
	case lexer.BAR:
		if bothInt {
			return left.(runtime.Integer) | right.(runtime.Integer)
		}
		return runtime.NewError(runtime.TypeError, "| requires Integer operands")
	default:
		return runtime.NewErrorf(runtime.GenericError, "unhandled binary operator %s", op)
	}
}

// modFloat returns the remainder of a/b with the sign of b, matching
// R's %% rather than Go's math.Mod (which takes the sign of a).
func modFloat(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

func isComparisonOp(op lexer.TokenType) bool {
	switch op {
	case lexer.EQ, lexer.NEQ, lexer.LT, lexer.GT, lexer.LE, lexer.GE:
		return true
	default:
		return false
	}
}

func compareNonNumeric(op lexer.TokenType, left, right runtime.Value) runtime.Value {
	switch op {
	case lexer.EQ:
		return runtime.Bool(valueEquals(left, right))
	case lexer.NEQ:
		return runtime.Bool(!valueEquals(left, right))
	default:
		ls, lok := left.(runtime.String)
		rs, rok := right.(runtime.String)
		if !lok || !rok {
			return runtime.NewErrorf(runtime.TypeError, "%s requires comparable operands, got %s and %s", op, left.Type(), right.Type())
		}
		switch op {
		case lexer.LT:
			return runtime.Bool(ls < rs)
		case lexer.GT:
			return runtime.Bool(ls > rs)
		case lexer.LE:
			return runtime.Bool(ls <= rs)
		case lexer.GE:
			return runtime.Bool(ls >= rs)
		}
		return runtime.NewErrorf(runtime.TypeError, "unsupported comparison %s on String", op)
	}
}

// evalBroadcast implements the dotted (`.+`, `.==`, ...) operators
//: elementwise across a List, or a scalar broadcast
// against every element of a List when the other side is a scalar.
func (e *Evaluator) evalBroadcast(op lexer.TokenType, left, right runtime.Value) runtime.Value {
	ll, lIsList := left.(*runtime.List)
	rl, rIsList := right.(*runtime.List)

	switch {
	case lIsList && rIsList:
		if len(ll.Items) != len(rl.Items) {
			return runtime.NewErrorf(runtime.ValueError, "broadcast %s requires equal-length lists (%d vs %d)", op, len(ll.Items), len(rl.Items))
		}
		out := make([]runtime.ListItem, len(ll.Items))
		for i := range ll.Items {
			v := e.applyBroadcastScalar(op, ll.Items[i].Value, rl.Items[i].Value)
			if runtime.IsError(v) {
				return v
			}
			out[i] = runtime.ListItem{Value: v}
		}
		return &runtime.List{Items: out}
	case lIsList:
		out := make([]runtime.ListItem, len(ll.Items))
		for i, it := range ll.Items {
			v := e.applyBroadcastScalar(op, it.Value, right)
			if runtime.IsError(v) {
				return v
			}
			out[i] = runtime.ListItem{Value: v}
		}
		return &runtime.List{Items: out}
	case rIsList:
		out := make([]runtime.ListItem, len(rl.Items))
		for i, it := range rl.Items {
			v := e.applyBroadcastScalar(op, left, it.Value)
			if runtime.IsError(v) {
				return v
			}
			out[i] = runtime.ListItem{Value: v}
		}
		return &runtime.List{Items: out}
	default:
		return e.applyBroadcastScalar(op, left, right)
	}
}

func (e *Evaluator) applyBroadcastScalar(op lexer.TokenType, left, right runtime.Value) runtime.Value {
	if runtime.IsNA(left) || runtime.IsNA(right) {
		return runtime.NA{Kind: runtime.NAGeneric}
	}
	switch op {
	case lexer.AND:
		return logicalOp(left, right, func(a, b bool) bool { return a && b })
	case lexer.OR:
		return logicalOp(left, right, func(a, b bool) bool { return a || b })
	default:
		return scalarBinOp(op, left, right)
	}
}
