package parser

import (
	"github.com/b-rodrigues/tlang-sub002/internal/ast"
	"github.com/b-rodrigues/tlang-sub002/internal/lexer"
)

// parseBraceExpression disambiguates `{` into a Block, a Dict
// literal, or an empty Block, : "a dict literal is
// recognized when the first token after `{` is an identifier followed
// by `:`." An immediately-closed `{}` is the empty Block (it evaluates
// to null), since only Block has that documented empty-case behavior.
func (p *Parser) parseBraceExpression() ast.Expression {
	if p.peekIs(lexer.RBRACE) {
		tok := p.cur
		p.nextToken()
		return &ast.Block{Tok: tok}
	}
	if p.peekIs(lexer.IDENT) && p.peekAfterType() == lexer.COLON {
		return p.parseDictLiteral()
	}
	return p.parseBlock()
}

func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{Tok: p.cur}
	p.nextToken()
	p.skipStatementSeparators()
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		if !p.curIs(lexer.RBRACE) {
			p.nextToken()
			p.skipStatementSeparators()
		}
	}
	if !p.curIs(lexer.RBRACE) {
		p.addErrorAt(p.cur.Pos, "expected '}' to close block, got %s", p.cur.Type)
	}
	return block
}

func (p *Parser) parseDictLiteral() ast.Expression {
	dict := &ast.DictLiteral{Tok: p.cur}
	p.nextToken() // first key
	for {
		if !p.curIs(lexer.IDENT) {
			p.addErrorAt(p.cur.Pos, "expected dict key, got %s", p.cur.Type)
			break
		}
		key := p.cur.Literal
		if !p.expectPeek(lexer.COLON) {
			break
		}
		p.nextToken()
		val := p.parseExpression(LOWEST)
		dict.Entries = append(dict.Entries, ast.DictEntry{Key: key, Value: val})
		if p.peekIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(lexer.RBRACE) {
		return dict
	}
	return dict
}

// parseBracketLiteral parses `[...]`. The result is a List when every
// element is bare, and a Dict when every element is named; mixing the
// two is a parse error.
func (p *Parser) parseBracketLiteral() ast.Expression {
	tok := p.cur
	var elements []ast.ListElement

	if p.peekIs(lexer.RBRACKET) {
		p.nextToken()
		return &ast.ListLiteral{Tok: tok}
	}

	p.nextToken()
	elements = append(elements, p.parseBracketElement())
	for p.peekIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		elements = append(elements, p.parseBracketElement())
	}
	if !p.expectPeek(lexer.RBRACKET) {
		return &ast.ListLiteral{Tok: tok, Elements: elements}
	}

	named, bare := 0, 0
	for _, e := range elements {
		if e.Name != nil {
			named++
		} else {
			bare++
		}
	}
	if named > 0 && bare > 0 {
		p.addErrorAt(tok.Pos, "cannot mix named and bare entries in a [] literal")
		return &ast.ListLiteral{Tok: tok, Elements: elements}
	}
	if named > 0 && named == len(elements) {
		dict := &ast.DictLiteral{Tok: tok}
		for _, e := range elements {
			dict.Entries = append(dict.Entries, ast.DictEntry{Key: *e.Name, Value: e.Value})
		}
		return dict
	}
	return &ast.ListLiteral{Tok: tok, Elements: elements}
}

func (p *Parser) parseBracketElement() ast.ListElement {
	if p.curIs(lexer.IDENT) && p.peekIs(lexer.COLON) {
		name := p.cur.Literal
		p.nextToken() // COLON
		p.nextToken()
		return ast.ListElement{Name: &name, Value: p.parseExpression(LOWEST)}
	}
	return ast.ListElement{Value: p.parseExpression(LOWEST)}
}

// parsePipelineDef parses `pipeline { name = expr; ... }`.
// Each node must be a plain first-assignment; anything else is a
// parse error, since the pipeline body is a flat list of named node
// expressions, not a general statement block.
func (p *Parser) parsePipelineDef() ast.Expression {
	def := &ast.PipelineDef{Tok: p.cur}
	if !p.expectPeek(lexer.LBRACE) {
		return def
	}
	p.nextToken()
	p.skipStatementSeparators()
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		if !p.curIs(lexer.IDENT) || !p.peekIs(lexer.ASSIGN) {
			p.addErrorAt(p.cur.Pos, "pipeline node must be `name = expr`, got %s", p.cur.Type)
			p.nextToken()
			p.skipStatementSeparators()
			continue
		}
		name := p.cur.Literal
		p.nextToken() // ASSIGN
		p.nextToken()
		val := p.parseExpression(LOWEST)
		def.Nodes = append(def.Nodes, ast.PipelineNode{Name: name, Value: val})
		if !p.curIs(lexer.RBRACE) {
			p.nextToken()
			p.skipStatementSeparators()
		}
	}
	if !p.curIs(lexer.RBRACE) {
		p.addErrorAt(p.cur.Pos, "expected '}' to close pipeline definition, got %s", p.cur.Type)
	}
	return def
}

// parseIntentDef parses `intent { key: expr, ... }`: a
// flat, comma-separated set of fields, each of which must evaluate to
// a string.
func (p *Parser) parseIntentDef() ast.Expression {
	def := &ast.IntentDef{Tok: p.cur}
	if !p.expectPeek(lexer.LBRACE) {
		return def
	}
	if p.peekIs(lexer.RBRACE) {
		p.nextToken()
		return def
	}
	p.nextToken()
	for {
		if !p.curIs(lexer.IDENT) {
			p.addErrorAt(p.cur.Pos, "expected intent field name, got %s", p.cur.Type)
			break
		}
		key := p.cur.Literal
		if !p.expectPeek(lexer.COLON) {
			break
		}
		p.nextToken()
		val := p.parseExpression(LOWEST)
		def.Fields = append(def.Fields, ast.IntentField{Key: key, Value: val})
		if p.peekIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	p.expectPeek(lexer.RBRACE)
	return def
}
