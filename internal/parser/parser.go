// Package parser implements a Pratt (top-down operator precedence)
// parser turning a tlang token stream into an *ast.Program, following
// internal/parser architecture (prefix/infix parse
// function tables keyed by token type, a precedence-climbing
// parseExpression, structured *ParseError values instead of panics).
package parser

import (
	"fmt"

	"github.com/b-rodrigues/tlang-sub002/internal/ast"
	"github.com/b-rodrigues/tlang-sub002/internal/lexer"
)

// Precedence levels, lowest to highest: eleven levels, with
// comparisons and `in` sharing one level.
const (
	_ int = iota
	LOWEST
	PIPEPREC
	FORMULAPREC
	ORPREC
	ANDPREC
	BITORPREC
	BITANDPREC
	CMPPREC
	SUMPREC
	PRODPREC
	PREFIXPREC
	CALLPREC
)

var precedences = map[lexer.TokenType]int{
	lexer.PIPE:       PIPEPREC,
	lexer.UNCONDPIPE: PIPEPREC,
	lexer.TILDE:      FORMULAPREC,
	lexer.OR:         ORPREC,
	lexer.AND:        ANDPREC,
	lexer.BAR:        BITORPREC,
	lexer.DOTBAR:     BITORPREC,
	lexer.AMP:        BITANDPREC,
	lexer.DOTAMP:     BITANDPREC,
	lexer.EQ:         CMPPREC,
	lexer.NEQ:        CMPPREC,
	lexer.LT:         CMPPREC,
	lexer.GT:         CMPPREC,
	lexer.LE:         CMPPREC,
	lexer.GE:         CMPPREC,
	lexer.DOTEQ:      CMPPREC,
	lexer.DOTNEQ:     CMPPREC,
	lexer.DOTLT:      CMPPREC,
	lexer.DOTGT:      CMPPREC,
	lexer.DOTLE:      CMPPREC,
	lexer.DOTGE:      CMPPREC,
	lexer.IN:         CMPPREC,
	lexer.PLUS:       SUMPREC,
	lexer.MINUS:      SUMPREC,
	lexer.DOTPLUS:    SUMPREC,
	lexer.DOTMINUS:   SUMPREC,
	lexer.STAR:       PRODPREC,
	lexer.SLASH:      PRODPREC,
	lexer.PERCENT:    PRODPREC,
	lexer.DOTSTAR:    PRODPREC,
	lexer.DOTSLASH:   PRODPREC,
	lexer.DOTPERCENT: PRODPREC,
	lexer.LPAREN:     CALLPREC,
	lexer.DOT:        CALLPREC,
}

func getPrecedence(t lexer.TokenType) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}

// broadcastBase maps each dotted token to the non-dotted operator it
// broadcasts.
var broadcastBase = map[lexer.TokenType]lexer.TokenType{
	lexer.DOTPLUS:    lexer.PLUS,
	lexer.DOTMINUS:   lexer.MINUS,
	lexer.DOTSTAR:    lexer.STAR,
	lexer.DOTSLASH:   lexer.SLASH,
	lexer.DOTPERCENT: lexer.PERCENT,
	lexer.DOTEQ:      lexer.EQ,
	lexer.DOTNEQ:     lexer.NEQ,
	lexer.DOTLT:      lexer.LT,
	lexer.DOTGT:      lexer.GT,
	lexer.DOTLE:      lexer.LE,
	lexer.DOTGE:      lexer.GE,
	lexer.DOTAMP:     lexer.AMP,
	lexer.DOTBAR:     lexer.BAR,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// ParseError is a single parser diagnostic; the top-level boundary
// (pkg/tlang) converts these into a runtime.ErrorValue tagged
// GenericError.
type ParseError struct {
	Pos     lexer.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Parser turns a token stream into an AST.
type Parser struct {
	l    *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn

	errors []*ParseError
}

// New builds a Parser over l and primes the two-token lookahead.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.prefixFns = make(map[lexer.TokenType]prefixParseFn)
	p.infixFns = make(map[lexer.TokenType]infixParseFn)
	p.registerPrefixFns()
	p.registerInfixFns()

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns all parse errors accumulated so far.
func (p *Parser) Errors() []*ParseError {
	return p.errors
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peek.Type == t }

func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t lexer.TokenType) {
	p.addErrorAt(p.peek.Pos, "expected next token to be %s, got %s instead", t, p.peek.Type)
}

func (p *Parser) addErrorAt(pos lexer.Position, format string, args ...any) {
	p.errors = append(p.errors, &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func (p *Parser) noPrefixParseFnError(t lexer.TokenType) {
	p.addErrorAt(p.cur.Pos, "no prefix parse function for %s found", t)
}

func (p *Parser) registerPrefix(t lexer.TokenType, fn prefixParseFn) {
	p.prefixFns[t] = fn
}

func (p *Parser) registerInfix(t lexer.TokenType, fn infixParseFn) {
	p.infixFns[t] = fn
}

// peekAfterType reports the token type one past p.peek, without
// disturbing the parser's or lexer's actual position. The lexer has
// no pointer fields besides the input string it never mutates, so a
// shallow copy is a safe, cheap snapshot to scan ahead on.
func (p *Parser) peekAfterType() lexer.TokenType {
	if p.peek.Type == lexer.EOF {
		return lexer.EOF
	}
	snapshot := *p.l
	return snapshot.NextToken().Type
}

// skipStatementSeparators consumes any run of NEWLINE/SEMICOLON
// tokens, used between statements in a Program/Block/pipeline body.
func (p *Parser) skipStatementSeparators() {
	for p.curIs(lexer.NEWLINE) || p.curIs(lexer.SEMICOLON) {
		p.nextToken()
	}
}

// ParseProgram parses an entire token stream into a Program.
func ParseProgram(l *lexer.Lexer) (*ast.Program, []*ParseError) {
	p := New(l)
	prog := &ast.Program{}

	p.skipStatementSeparators()
	for !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.nextToken()
		if !p.curIs(lexer.EOF) && !p.curIs(lexer.NEWLINE) && !p.curIs(lexer.SEMICOLON) {
			p.addErrorAt(p.cur.Pos, "expected statement separator, got %s", p.cur.Type)
		}
		p.skipStatementSeparators()
	}

	for _, lexErr := range l.Errors() {
		p.errors = append(p.errors, &ParseError{Pos: lexErr.Pos, Message: lexErr.Message})
	}

	return prog, p.errors
}
