package ast

import (
	"strings"

	"github.com/b-rodrigues/tlang-sub002/internal/lexer"
)

// PipelineNode is one named node of a `pipeline { ... }` definition.
type PipelineNode struct {
	Name  string
	Value Expression
}

// PipelineDef is a `pipeline { name = expr; ... }` definition. The
// evaluator (not the parser) computes dependencies and topological
// order — see internal/pipeline.
type PipelineDef struct {
	Tok   lexer.Token
	Nodes []PipelineNode
}

func (p *PipelineDef) expressionNode()      {}
func (p *PipelineDef) TokenLiteral() string { return p.Tok.Literal }
func (p *PipelineDef) String() string {
	var sb strings.Builder
	sb.WriteString("pipeline { ")
	for i, n := range p.Nodes {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(n.Name + " = " + n.Value.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// IntentField is one `key: expr` entry of an `intent { ... }`
// definition; expr must evaluate to a string.
type IntentField struct {
	Key   string
	Value Expression
}

type IntentDef struct {
	Tok    lexer.Token
	Fields []IntentField
}

func (in *IntentDef) expressionNode()      {}
func (in *IntentDef) TokenLiteral() string { return in.Tok.Literal }
func (in *IntentDef) String() string {
	var sb strings.Builder
	sb.WriteString("intent { ")
	for i, f := range in.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Key + ": " + f.Value.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// Formula is the raw, unevaluated `lhs ~ rhs` node. Response/Predictor
// are collected by walking `+` trees of bare names on each side,
// skipping the literal `1`; an operator the walk does
// not recognize (e.g. `*` interaction terms) simply contributes no
// names and is preserved only in RawRHS/RawLHS — see DESIGN.md Open
// Question (c).
type Formula struct {
	Tok     lexer.Token
	RawLHS  Expression
	RawRHS  Expression
}

func (f *Formula) expressionNode()      {}
func (f *Formula) TokenLiteral() string { return f.Tok.Literal }
func (f *Formula) String() string       { return f.RawLHS.String() + " ~ " + f.RawRHS.String() }
