package parser

import (
	"github.com/b-rodrigues/tlang-sub002/internal/ast"
	"github.com/b-rodrigues/tlang-sub002/internal/lexer"
)

// parseStatement dispatches on the current token to one of the four
// statement forms: first-assignment, overwrite, import, or a bare
// expression statement.
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.curIs(lexer.IMPORT):
		return p.parseImportStmt()
	case p.curIs(lexer.IDENT) && p.peekIs(lexer.ASSIGN):
		return p.parseFirstAssignStmt(nil)
	case p.curIs(lexer.IDENT) && p.peekIs(lexer.WALRUS):
		return p.parseOverwriteStmt()
	case p.curIs(lexer.IDENT) && p.peekIs(lexer.COLON):
		// A bare identifier at statement position is never itself a
		// dict key (dicts only appear inside `{...}`), so a COLON
		// here always starts a type annotation.
		return p.parseTypedFirstAssignStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseFirstAssignStmt(typ *ast.TypeAnnotation) *ast.FirstAssignStmt {
	stmt := &ast.FirstAssignStmt{Tok: p.cur, Name: p.cur.Literal, Type: typ}
	if !p.expectPeek(lexer.ASSIGN) {
		return stmt
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	return stmt
}

func (p *Parser) parseTypedFirstAssignStmt() *ast.FirstAssignStmt {
	nameTok := p.cur
	name := p.cur.Literal
	p.nextToken() // COLON
	p.nextToken() // type ident
	typ := &ast.TypeAnnotation{Tok: p.cur, Name: p.cur.Literal}
	stmt := &ast.FirstAssignStmt{Tok: nameTok, Name: name, Type: typ}
	if !p.expectPeek(lexer.ASSIGN) {
		return stmt
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	return stmt
}

func (p *Parser) parseOverwriteStmt() *ast.OverwriteStmt {
	stmt := &ast.OverwriteStmt{Tok: p.cur, Name: p.cur.Literal}
	if !p.expectPeek(lexer.WALRUS) {
		return stmt
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	return stmt
}

func (p *Parser) parseImportStmt() *ast.ImportStmt {
	stmt := &ast.ImportStmt{Tok: p.cur}
	if !p.expectPeek(lexer.STRING) {
		return stmt
	}
	stmt.Path = p.cur.Literal
	return stmt
}

func (p *Parser) parseExprStmt() *ast.ExprStmt {
	stmt := &ast.ExprStmt{Tok: p.cur}
	stmt.Expression = p.parseExpression(LOWEST)
	return stmt
}

// parseExpression is the Pratt-parser core: a prefix parse, then a
// loop of infix parses while the next operator binds tighter than
// precedence.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixFns[p.cur.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.cur.Type)
		return nil
	}
	left := prefix()

	for !p.peekIs(lexer.NEWLINE) && !p.peekIs(lexer.SEMICOLON) && !p.peekIs(lexer.EOF) &&
		precedence < getPrecedence(p.peek.Type) {
		infix := p.infixFns[p.peek.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}
