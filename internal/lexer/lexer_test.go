package lexer

import "testing"

func TestNextTokenBasics(t *testing.T) {
	input := `x = 5
y := x + 10`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{IDENT, "x"},
		{ASSIGN, "="},
		{INT, "5"},
		{NEWLINE, "\n"},
		{IDENT, "y"},
		{WALRUS, ":="},
		{IDENT, "x"},
		{PLUS, "+"},
		{INT, "10"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong. expected=%s, got=%s (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywordFolding(t *testing.T) {
	input := `if else function pipeline intent true false null NA in and or notakeyword`
	tests := []TokenType{IF, ELSE, FUNCTION, PIPELINE, INTENT, TRUE, FALSE, NULLKW, NA, IN, AND, OR, IDENT}
	toks := Tokenize(input)
	for i, want := range tests {
		if toks[i].Type != want {
			t.Fatalf("token %d: expected %s, got %s", i, want, toks[i].Type)
		}
	}
}

func TestNewlineSwallowedBeforePipe(t *testing.T) {
	input := "5\n|> f()"
	toks := Tokenize(input)
	// No NEWLINE token should appear before the PIPE.
	for _, tok := range toks {
		if tok.Type == NEWLINE {
			t.Fatalf("unexpected NEWLINE token in %v", toks)
		}
	}
	if toks[1].Type != PIPE {
		t.Fatalf("expected PIPE as second token, got %s", toks[1].Type)
	}
}

func TestNewlineSwallowedBeforeUnconditionalPipe(t *testing.T) {
	input := "5\n?|> f()"
	toks := Tokenize(input)
	for _, tok := range toks {
		if tok.Type == NEWLINE {
			t.Fatalf("unexpected NEWLINE token in %v", toks)
		}
	}
	if toks[1].Type != UNCONDPIPE {
		t.Fatalf("expected UNCONDPIPE as second token, got %s", toks[1].Type)
	}
}

func TestNewlineNotSwallowedOtherwise(t *testing.T) {
	input := "5\nx"
	toks := Tokenize(input)
	if toks[1].Type != NEWLINE {
		t.Fatalf("expected NEWLINE as second token, got %s", toks[1].Type)
	}
}

func TestFloatPrecedesInt(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
	}{
		{"123", INT},
		{"123.45", FLOAT},
		{"1.", FLOAT},
	}
	for _, tt := range tests {
		toks := Tokenize(tt.input)
		if toks[0].Type != tt.typ {
			t.Fatalf("input %q: expected %s, got %s", tt.input, tt.typ, toks[0].Type)
		}
	}
}

func TestColumnReference(t *testing.T) {
	toks := Tokenize("$age")
	if toks[0].Type != COLREF || toks[0].Literal != "$age" {
		t.Fatalf("expected COLREF $age, got %v", toks[0])
	}
}

func TestBacktickIdentifier(t *testing.T) {
	toks := Tokenize("`weird name!`")
	if toks[0].Type != IDENT || toks[0].Literal != "weird name!" {
		t.Fatalf("expected IDENT 'weird name!', got %v", toks[0])
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hello\nworld"`, "hello\nworld"},
		{`"tab\there"`, "tab\there"},
		{`"quote\""`, `quote"`},
		{`'single'`, "single"},
		{`"unknown\qescape"`, "unknownqescape"},
	}
	for _, tt := range tests {
		toks := Tokenize(tt.input)
		if toks[0].Type != STRING || toks[0].Literal != tt.want {
			t.Fatalf("input %q: expected STRING %q, got %v", tt.input, tt.want, toks[0])
		}
	}
}

func TestLineComment(t *testing.T) {
	toks := Tokenize("1 -- this is ignored\n2")
	if toks[0].Type != INT || toks[0].Literal != "1" {
		t.Fatalf("expected INT 1, got %v", toks[0])
	}
	// comment + newline then 2
	found2 := false
	for _, tok := range toks {
		if tok.Type == INT && tok.Literal == "2" {
			found2 = true
		}
	}
	if !found2 {
		t.Fatalf("expected to find INT 2 after comment, got %v", toks)
	}
}

func TestBroadcastOperators(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
	}{
		{".+", DOTPLUS},
		{".-", DOTMINUS},
		{".*", DOTSTAR},
		{"./", DOTSLASH},
		{".%", DOTPERCENT},
		{".==", DOTEQ},
		{".!=", DOTNEQ},
		{".<", DOTLT},
		{".>", DOTGT},
		{".<=", DOTLE},
		{".>=", DOTGE},
		{".&", DOTAMP},
		{".|", DOTBAR},
	}
	for _, tt := range tests {
		toks := Tokenize(tt.input)
		if toks[0].Type != tt.typ {
			t.Fatalf("input %q: expected %s, got %s", tt.input, tt.typ, toks[0].Type)
		}
	}
}

func TestDotAccessVsBroadcast(t *testing.T) {
	toks := Tokenize("df.column")
	if toks[1].Type != DOT {
		t.Fatalf("expected DOT, got %s", toks[1].Type)
	}
}

func TestEllipsis(t *testing.T) {
	toks := Tokenize("...")
	if toks[0].Type != ELLIPSIS {
		t.Fatalf("expected ELLIPSIS, got %s", toks[0].Type)
	}
}

func TestUnterminatedStringProducesError(t *testing.T) {
	l := New(`"unterminated`)
	l.NextToken()
	if len(l.Errors()) == 0 {
		t.Fatalf("expected a lex error for unterminated string")
	}
}

func TestPositionTracking(t *testing.T) {
	toks := Tokenize("var x")
	if toks[0].Pos.Line != 1 || toks[0].Pos.Column != 1 {
		t.Fatalf("expected first token at 1:1, got %s", toks[0].Pos)
	}
}
