package ast

import "github.com/b-rodrigues/tlang-sub002/internal/lexer"

// FirstAssignStmt is `name = expr` (optionally `name: Type = expr`).
// It fails at evaluation time if name is already bound in the current
// environment.
type FirstAssignStmt struct {
	Tok   lexer.Token
	Name  string
	Type  *TypeAnnotation
	Value Expression
}

func (s *FirstAssignStmt) statementNode()     {}
func (s *FirstAssignStmt) TokenLiteral() string { return s.Tok.Literal }
func (s *FirstAssignStmt) String() string {
	if s.Type != nil {
		return s.Name + ": " + s.Type.Name + " = " + s.Value.String()
	}
	return s.Name + " = " + s.Value.String()
}

// OverwriteStmt is `name := expr`, the only way to rebind an existing
// name. It fails if name is not already bound.
type OverwriteStmt struct {
	Tok   lexer.Token
	Name  string
	Value Expression
}

func (s *OverwriteStmt) statementNode()      {}
func (s *OverwriteStmt) TokenLiteral() string { return s.Tok.Literal }
func (s *OverwriteStmt) String() string       { return s.Name + " := " + s.Value.String() }

// ExprStmt wraps a bare expression used as a statement.
type ExprStmt struct {
	Tok        lexer.Token
	Expression Expression
}

func (s *ExprStmt) statementNode()      {}
func (s *ExprStmt) TokenLiteral() string { return s.Tok.Literal }
func (s *ExprStmt) String() string {
	if s.Expression == nil {
		return ""
	}
	return s.Expression.String()
}

// ImportStmt is parsed but treated as a no-op by the core evaluator;
// package/module resolution is an external collaborator concern
// (Non-goal: "No module/import resolution logic").
type ImportStmt struct {
	Tok  lexer.Token
	Path string
}

func (s *ImportStmt) statementNode()      {}
func (s *ImportStmt) TokenLiteral() string { return s.Tok.Literal }
func (s *ImportStmt) String() string       { return "import " + s.Path }
