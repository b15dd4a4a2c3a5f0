package ast

import (
	"strings"

	"github.com/b-rodrigues/tlang-sub002/internal/lexer"
)

// BinaryExpr covers every arithmetic/comparison/logical/bitwise/
// membership operator. Broadcast is true for the dotted counterparts
// (`.+`, `.==`, ...); Op always holds the *non-dotted* TokenType so
// the evaluator's core dispatch table stays a single switch, per
// "the core tags them" design.
type BinaryExpr struct {
	Tok       lexer.Token
	Op        lexer.TokenType
	Broadcast bool
	Left      Expression
	Right     Expression
}

func (b *BinaryExpr) expressionNode()      {}
func (b *BinaryExpr) TokenLiteral() string { return b.Tok.Literal }
func (b *BinaryExpr) String() string {
	op := b.Op.String()
	if b.Broadcast {
		op = "." + op
	}
	return "(" + b.Left.String() + " " + op + " " + b.Right.String() + ")"
}

// PipeExpr is `|>` / `?|>`. Kept distinct from BinaryExpr because its
// evaluation rule (insert Left as first arg of a call, or call Right
// with Left) is nothing like a normal binary operator.
type PipeExpr struct {
	Tok           lexer.Token
	Unconditional bool
	Left          Expression
	Right         Expression
}

func (p *PipeExpr) expressionNode()      {}
func (p *PipeExpr) TokenLiteral() string { return p.Tok.Literal }
func (p *PipeExpr) String() string {
	arrow := "|>"
	if p.Unconditional {
		arrow = "?|>"
	}
	return "(" + p.Left.String() + " " + arrow + " " + p.Right.String() + ")"
}

// UnaryExpr is `!x` or `-x`.
type UnaryExpr struct {
	Tok     lexer.Token
	Op      lexer.TokenType
	Operand Expression
}

func (u *UnaryExpr) expressionNode()      {}
func (u *UnaryExpr) TokenLiteral() string { return u.Tok.Literal }
func (u *UnaryExpr) String() string       { return "(" + u.Op.String() + u.Operand.String() + ")" }

// ArgKind distinguishes a positional argument from the four
// named-argument spellings. The core treats Colon and Equals identically (Open Question (a));
// DotEquals and ColRefEquals are reserved named-option forms for
// verbs (e.g. `.desc = true`, `$col = expr`).
type ArgKind int

const (
	ArgPositional ArgKind = iota
	ArgNamedColon
	ArgNamedEquals
	ArgNamedDot
	ArgNamedColRef
)

// Argument is one entry in a call's argument list.
type Argument struct {
	Kind  ArgKind
	Name  string // set for all ArgNamed* kinds
	Value Expression
}

func (a Argument) String() string {
	switch a.Kind {
	case ArgNamedColon:
		return a.Name + ": " + a.Value.String()
	case ArgNamedEquals:
		return a.Name + " = " + a.Value.String()
	case ArgNamedDot:
		return "." + a.Name + " = " + a.Value.String()
	case ArgNamedColRef:
		return "$" + a.Name + " = " + a.Value.String()
	default:
		return a.Value.String()
	}
}

// CallExpr is `callee(args)`.
type CallExpr struct {
	Tok    lexer.Token
	Callee Expression
	Args   []Argument
}

func (c *CallExpr) expressionNode()      {}
func (c *CallExpr) TokenLiteral() string { return c.Tok.Literal }
func (c *CallExpr) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// Param is one lambda parameter, optionally annotated.
type Param struct {
	Name string
	Type *TypeAnnotation
}

func (p Param) String() string {
	if p.Type != nil {
		return p.Name + ": " + p.Type.Name
	}
	return p.Name
}

// LambdaExpr covers the `\(params) body` and `function(params) body`
// surface forms; which of the two was written is not kept. A `->`
// after the parameter list always introduces ReturnType, so a
// `\(params) -> body` form without a return type is not parsed.
type LambdaExpr struct {
	Tok        lexer.Token
	Params     []Param
	ReturnType *TypeAnnotation
	Generics   []string
	Variadic   bool
	Body       Expression
}

func (l *LambdaExpr) expressionNode()      {}
func (l *LambdaExpr) TokenLiteral() string { return l.Tok.Literal }
func (l *LambdaExpr) String() string {
	parts := make([]string, len(l.Params))
	for i, p := range l.Params {
		parts[i] = p.String()
	}
	s := "\\(" + strings.Join(parts, ", ") + ")"
	if l.ReturnType != nil {
		s += " -> " + l.ReturnType.Name
	}
	return s + " " + l.Body.String()
}

// IfExpr: both branches are mandatory.
type IfExpr struct {
	Tok       lexer.Token
	Condition Expression
	Then      Expression
	Else      Expression
}

func (i *IfExpr) expressionNode()      {}
func (i *IfExpr) TokenLiteral() string { return i.Tok.Literal }
func (i *IfExpr) String() string {
	return "if " + i.Condition.String() + " " + i.Then.String() + " else " + i.Else.String()
}

// ListElement is one entry of a `[...]` literal. An all-keyed `[...]`
// literal becomes a DictLiteral and a bare/keyed mix is a parse error,
// so every element of a successfully parsed ListLiteral has a nil Name.
type ListElement struct {
	Name  *string
	Value Expression
}

type ListLiteral struct {
	Tok      lexer.Token
	Elements []ListElement
}

func (l *ListLiteral) expressionNode()      {}
func (l *ListLiteral) TokenLiteral() string { return l.Tok.Literal }
func (l *ListLiteral) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		if e.Name != nil {
			parts[i] = *e.Name + ": " + e.Value.String()
		} else {
			parts[i] = e.Value.String()
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// DictEntry is one `key: value` pair in a `{...}` dict literal. Keys
// are syntactic, never evaluated.
type DictEntry struct {
	Key   string
	Value Expression
}

type DictLiteral struct {
	Tok     lexer.Token
	Entries []DictEntry
}

func (d *DictLiteral) expressionNode()      {}
func (d *DictLiteral) TokenLiteral() string { return d.Tok.Literal }
func (d *DictLiteral) String() string {
	parts := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		parts[i] = e.Key + ": " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// DotAccess is `target.field` — dicts, lists, dataframes, pipeline
// results, and errors all resolve it differently at evaluation time.
type DotAccess struct {
	Tok    lexer.Token
	Target Expression
	Field  string
}

func (d *DotAccess) expressionNode()      {}
func (d *DotAccess) TokenLiteral() string { return d.Tok.Literal }
func (d *DotAccess) String() string       { return d.Target.String() + "." + d.Field }

// Block is `{ s1; ...; sn }` evaluated as an expression: the value of
// the last statement (or null if empty), in a fresh local scope that
// does not leak bindings to the enclosing environment.
type Block struct {
	Tok        lexer.Token
	Statements []Statement
}

func (b *Block) expressionNode()      {}
func (b *Block) TokenLiteral() string { return b.Tok.Literal }
func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for i, s := range b.Statements {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(s.String())
	}
	sb.WriteString(" }")
	return sb.String()
}
