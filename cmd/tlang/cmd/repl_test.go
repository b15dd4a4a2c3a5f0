package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/b-rodrigues/tlang-sub002/pkg/tlang"
)

func TestReplEvaluatesEachLine(t *testing.T) {
	in := strings.NewReader("1 + 1\n")
	var out bytes.Buffer

	if err := repl(in, &out, defaultConfig(), tlang.ModeREPL); err != nil {
		t.Fatalf("repl: %v", err)
	}

	if !strings.Contains(out.String(), "Integer: 2") {
		t.Fatalf("repl output = %q, want it to contain \"Integer: 2\"", out.String())
	}
}

func TestReplThreadsEnvironmentAcrossLines(t *testing.T) {
	in := strings.NewReader("x = 41\nx + 1\n")
	var out bytes.Buffer

	if err := repl(in, &out, defaultConfig(), tlang.ModeREPL); err != nil {
		t.Fatalf("repl: %v", err)
	}

	if !strings.Contains(out.String(), "Integer: 42") {
		t.Fatalf("repl output = %q, want it to contain \"Integer: 42\"", out.String())
	}
}

func TestReplContinuesOnTrailingPipe(t *testing.T) {
	in := strings.NewReader("double = \\(x) x * 2\n1 |>\ndouble\n")
	var out bytes.Buffer

	if err := repl(in, &out, defaultConfig(), tlang.ModeREPL); err != nil {
		t.Fatalf("repl: %v", err)
	}

	if !strings.Contains(out.String(), "Integer: 2") {
		t.Fatalf("repl output = %q, want it to contain \"Integer: 2\"", out.String())
	}
}

func TestNeedsContinuationDetectsTrailingPipes(t *testing.T) {
	if !needsContinuation("1 |>") {
		t.Fatal("expected \"1 |>\" to need continuation")
	}
	if !needsContinuation("1 ?|>") {
		t.Fatal("expected \"1 ?|>\" to need continuation")
	}
	if needsContinuation("1 + 1") {
		t.Fatal("expected \"1 + 1\" to not need continuation")
	}
}
