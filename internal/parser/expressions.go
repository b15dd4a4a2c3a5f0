package parser

import (
	"strconv"

	"github.com/b-rodrigues/tlang-sub002/internal/ast"
	"github.com/b-rodrigues/tlang-sub002/internal/lexer"
)

func (p *Parser) registerPrefixFns() {
	p.registerPrefix(lexer.INT, p.parseIntegerLiteral)
	p.registerPrefix(lexer.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBoolLiteral)
	p.registerPrefix(lexer.FALSE, p.parseBoolLiteral)
	p.registerPrefix(lexer.NULLKW, p.parseNullLiteral)
	p.registerPrefix(lexer.NA, p.parseNALiteral)
	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.COLREF, p.parseColumnRef)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(lexer.BANG, p.parseUnaryExpr)
	p.registerPrefix(lexer.MINUS, p.parseUnaryExpr)
	p.registerPrefix(lexer.BACKSLASH, p.parseLambdaBackslash)
	p.registerPrefix(lexer.FUNCTION, p.parseLambdaFunction)
	p.registerPrefix(lexer.IF, p.parseIfExpr)
	p.registerPrefix(lexer.LBRACKET, p.parseBracketLiteral)
	p.registerPrefix(lexer.LBRACE, p.parseBraceExpression)
	p.registerPrefix(lexer.PIPELINE, p.parsePipelineDef)
	p.registerPrefix(lexer.INTENT, p.parseIntentDef)
}

func (p *Parser) registerInfixFns() {
	binaryOps := []lexer.TokenType{
		lexer.PLUS, lexer.MINUS, lexer.STAR, lexer.SLASH, lexer.PERCENT,
		lexer.EQ, lexer.NEQ, lexer.LT, lexer.GT, lexer.LE, lexer.GE,
		lexer.AMP, lexer.BAR, lexer.AND, lexer.OR, lexer.IN,
		lexer.DOTPLUS, lexer.DOTMINUS, lexer.DOTSTAR, lexer.DOTSLASH, lexer.DOTPERCENT,
		lexer.DOTEQ, lexer.DOTNEQ, lexer.DOTLT, lexer.DOTGT, lexer.DOTLE, lexer.DOTGE,
		lexer.DOTAMP, lexer.DOTBAR,
	}
	for _, t := range binaryOps {
		p.registerInfix(t, p.parseBinaryExpr)
	}
	p.registerInfix(lexer.PIPE, p.parsePipeExpr)
	p.registerInfix(lexer.UNCONDPIPE, p.parsePipeExpr)
	p.registerInfix(lexer.TILDE, p.parseFormulaInfix)
	p.registerInfix(lexer.LPAREN, p.parseCallExpr)
	p.registerInfix(lexer.DOT, p.parseDotAccess)
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.cur
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.addErrorAt(tok.Pos, "could not parse %q as integer", tok.Literal)
		return nil
	}
	return &ast.IntegerLiteral{Tok: tok, Value: v}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.cur
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.addErrorAt(tok.Pos, "could not parse %q as float", tok.Literal)
		return nil
	}
	return &ast.FloatLiteral{Tok: tok, Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Tok: p.cur, Value: p.cur.Literal}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return &ast.BoolLiteral{Tok: p.cur, Value: p.cur.Type == lexer.TRUE}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Tok: p.cur}
}

func (p *Parser) parseNALiteral() ast.Expression {
	return &ast.NALiteral{Tok: p.cur}
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Tok: p.cur, Name: p.cur.Literal}
}

func (p *Parser) parseColumnRef() ast.Expression {
	return &ast.ColumnRef{Tok: p.cur, Name: p.cur.Literal[1:]}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseUnaryExpr() ast.Expression {
	tok := p.cur
	op := p.cur.Type
	p.nextToken()
	operand := p.parseExpression(PREFIXPREC)
	return &ast.UnaryExpr{Tok: tok, Op: op, Operand: operand}
}

func (p *Parser) parseBinaryExpr(left ast.Expression) ast.Expression {
	tok := p.cur
	op := p.cur.Type
	broadcast := false
	if base, ok := broadcastBase[op]; ok {
		op = base
		broadcast = true
	}
	prec := getPrecedence(tok.Type)
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.BinaryExpr{Tok: tok, Op: op, Broadcast: broadcast, Left: left, Right: right}
}

func (p *Parser) parsePipeExpr(left ast.Expression) ast.Expression {
	tok := p.cur
	unconditional := tok.Type == lexer.UNCONDPIPE
	p.nextToken()
	right := p.parseExpression(PIPEPREC)
	return &ast.PipeExpr{Tok: tok, Unconditional: unconditional, Left: left, Right: right}
}

func (p *Parser) parseFormulaInfix(left ast.Expression) ast.Expression {
	tok := p.cur
	p.nextToken()
	right := p.parseExpression(FORMULAPREC)
	return &ast.Formula{Tok: tok, RawLHS: left, RawRHS: right}
}

func (p *Parser) parseDotAccess(left ast.Expression) ast.Expression {
	tok := p.cur
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	return &ast.DotAccess{Tok: tok, Target: left, Field: p.cur.Literal}
}

func (p *Parser) parseIfExpr() ast.Expression {
	expr := &ast.IfExpr{Tok: p.cur}
	p.nextToken()
	expr.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.LBRACE) {
		return expr
	}
	expr.Then = p.parseBraceExpression()
	if !p.expectPeek(lexer.ELSE) {
		return expr
	}
	p.nextToken()
	switch {
	case p.curIs(lexer.LBRACE):
		expr.Else = p.parseBraceExpression()
	case p.curIs(lexer.IF):
		expr.Else = p.parseIfExpr()
	default:
		expr.Else = p.parseExpression(LOWEST)
	}
	return expr
}

func (p *Parser) parseCallExpr(callee ast.Expression) ast.Expression {
	expr := &ast.CallExpr{Tok: p.cur, Callee: callee}
	expr.Args = p.parseCallArguments()
	return expr
}

func (p *Parser) parseCallArguments() []ast.Argument {
	var args []ast.Argument
	if p.peekIs(lexer.RPAREN) {
		p.nextToken()
		return args
	}
	p.nextToken()
	args = append(args, p.parseCallArgument())
	for p.peekIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseCallArgument())
	}
	if !p.expectPeek(lexer.RPAREN) {
		return args
	}
	return args
}

// parseCallArgument handles the positional form and all four
// named-argument spellings:
// positional, `name: expr`, `name = expr`, `.name = expr`, `$name =
// expr`. The dot and column-ref forms are reserved option-style
// spellings a verb can use to set keyword options.
func (p *Parser) parseCallArgument() ast.Argument {
	if p.curIs(lexer.DOT) {
		p.nextToken() // the option name
		name := p.cur.Literal
		if !p.expectPeek(lexer.ASSIGN) {
			return ast.Argument{Kind: ast.ArgNamedDot, Name: name}
		}
		p.nextToken()
		return ast.Argument{Kind: ast.ArgNamedDot, Name: name, Value: p.parseExpression(LOWEST)}
	}
	if p.curIs(lexer.COLREF) && p.peekIs(lexer.ASSIGN) {
		name := p.cur.Literal[1:]
		p.nextToken() // consume ASSIGN
		p.nextToken()
		return ast.Argument{Kind: ast.ArgNamedColRef, Name: name, Value: p.parseExpression(LOWEST)}
	}
	if p.curIs(lexer.IDENT) && (p.peekIs(lexer.COLON) || p.peekIs(lexer.ASSIGN)) {
		name := p.cur.Literal
		kind := ast.ArgNamedColon
		if p.peekIs(lexer.ASSIGN) {
			kind = ast.ArgNamedEquals
		}
		p.nextToken() // consume COLON/ASSIGN
		p.nextToken()
		return ast.Argument{Kind: kind, Name: name, Value: p.parseExpression(LOWEST)}
	}
	return ast.Argument{Kind: ast.ArgPositional, Value: p.parseExpression(LOWEST)}
}
