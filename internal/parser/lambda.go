package parser

import (
	"github.com/b-rodrigues/tlang-sub002/internal/ast"
	"github.com/b-rodrigues/tlang-sub002/internal/lexer"
)

// parseLambdaBackslash parses `\(params) body`. A `->` after the
// parameter list always introduces a return-type identifier, and
// anything other than an identifier after it is a parse error, so a
// `\(params) -> body` lambda without a return type is not recognised.
func (p *Parser) parseLambdaBackslash() ast.Expression {
	expr := &ast.LambdaExpr{Tok: p.cur}
	if !p.expectPeek(lexer.LPAREN) {
		return expr
	}
	expr.Params, expr.Variadic = p.parseParamList()
	if p.peekIs(lexer.ARROW) {
		p.nextToken()
		if !p.expectPeek(lexer.IDENT) {
			return expr
		}
		expr.ReturnType = &ast.TypeAnnotation{Tok: p.cur, Name: p.cur.Literal}
		p.nextToken()
	} else {
		p.nextToken()
	}
	expr.Body = p.parseExpression(LOWEST)
	return expr
}

// parseLambdaFunction parses the `function(params) body` spelling,
// identical in every way except the leading keyword.
func (p *Parser) parseLambdaFunction() ast.Expression {
	expr := &ast.LambdaExpr{Tok: p.cur}
	if !p.expectPeek(lexer.LPAREN) {
		return expr
	}
	expr.Params, expr.Variadic = p.parseParamList()
	if p.peekIs(lexer.ARROW) {
		p.nextToken()
		if !p.expectPeek(lexer.IDENT) {
			return expr
		}
		expr.ReturnType = &ast.TypeAnnotation{Tok: p.cur, Name: p.cur.Literal}
		p.nextToken()
	} else {
		p.nextToken()
	}
	expr.Body = p.parseExpression(LOWEST)
	return expr
}

// parseParamList parses `(a, b: Type, rest...)`. cur is LPAREN on
// entry; on return cur is RPAREN. A parameter's name may be suffixed
// with `...` to mark it variadic; only the last parameter may carry
// it.
func (p *Parser) parseParamList() ([]ast.Param, bool) {
	var params []ast.Param
	variadic := false

	if p.peekIs(lexer.RPAREN) {
		p.nextToken()
		return params, variadic
	}

	p.nextToken()
	for {
		if !p.curIs(lexer.IDENT) {
			p.addErrorAt(p.cur.Pos, "expected parameter name, got %s", p.cur.Type)
			break
		}
		param := ast.Param{Name: p.cur.Literal}
		if p.peekIs(lexer.ELLIPSIS) {
			p.nextToken()
			variadic = true
		}
		if p.peekIs(lexer.COLON) {
			p.nextToken()
			if !p.expectPeek(lexer.IDENT) {
				break
			}
			param.Type = &ast.TypeAnnotation{Tok: p.cur, Name: p.cur.Literal}
		}
		params = append(params, param)
		if variadic {
			break // a variadic parameter must be last
		}
		if !p.peekIs(lexer.COMMA) {
			break
		}
		p.nextToken()
		p.nextToken()
	}
	p.expectPeek(lexer.RPAREN)
	return params, variadic
}
