// Package tlang is the public contract the CLI (and any other host)
// programs against: parse_and_eval and validate, plus the small amount
// of wiring needed to seed a root environment with the base builtins.
// The CLI never reaches into internal/* directly.
package tlang

import (
	"io"

	"github.com/b-rodrigues/tlang-sub002/internal/ast"
	"github.com/b-rodrigues/tlang-sub002/internal/base"
	"github.com/b-rodrigues/tlang-sub002/internal/builtins"
	"github.com/b-rodrigues/tlang-sub002/internal/diag"
	"github.com/b-rodrigues/tlang-sub002/internal/evaluator"
	"github.com/b-rodrigues/tlang-sub002/internal/lexer"
	"github.com/b-rodrigues/tlang-sub002/internal/parser"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
	"github.com/b-rodrigues/tlang-sub002/internal/strictmode"
)

// Mode selects how parse_and_eval and validate treat a program. Scripts
// run via `tlang run` default to ModeStrict; the REPL defaults to
// ModeREPL, where annotation gaps are permitted.
type Mode string

const (
	ModeREPL   Mode = "repl"
	ModeStrict Mode = "strict"
)

// Host holds the one-time-initialized pieces a process needs to run
// tlang source: the builtin registry and the evaluator that writes
// overwrite-warnings through a diagnostic stream.
type Host struct {
	Registry  *builtins.Registry
	Evaluator *evaluator.Evaluator
}

// NewHost builds a Host with the base collaborator package's builtins
// registered, `print`/`println` output routed to stdout, and the
// `:=` overwrite-warning diagnostic routed to diagOut (conventionally
// stderr, so warnings never interleave with program output).
func NewHost(stdout, diagOut io.Writer) *Host {
	registry := builtins.NewRegistry()
	base.Register(registry, stdout)
	return &Host{
		Registry:  registry,
		Evaluator: evaluator.New(diag.New(diagOut)),
	}
}

// RootEnvironment builds a fresh environment with every registered
// builtin bound at the root scope, ready to be threaded through
// ParseAndEval calls.
func (h *Host) RootEnvironment() *runtime.Environment {
	env := runtime.NewRootEnvironment()
	for _, name := range h.Registry.Names() {
		b, _ := h.Registry.Lookup(name)
		env = env.Bind(name, b)
	}
	return env
}

// Parse lexes and parses source, converting the first lex/parse
// failure (if any) into a GenericError value at this boundary — the
// only place outside the lexer/parser themselves allowed to treat a
// failure as terminal rather than an ordinary returned error value.
func Parse(source string) (*ast.Program, *runtime.ErrorValue) {
	program, parseErrs := parser.ParseProgram(lexer.New(source))
	if len(parseErrs) > 0 {
		return nil, parseErrorValue(parseErrs[0])
	}
	return program, nil
}

// Eval validates an already-parsed program under mode and, if it
// passes, evaluates it against env.
func (h *Host) Eval(mode Mode, env *runtime.Environment, program *ast.Program) (runtime.Value, *runtime.Environment) {
	if errVal := Validate(mode, program); errVal != nil {
		return errVal, env
	}
	return h.Evaluator.EvalProgram(program, env)
}

// ParseAndEval is the core's sole evaluation contract: parse source,
// validate it under mode, then evaluate against env. It returns the
// resulting value (an *runtime.ErrorValue on lex/parse/validate/eval
// failure) and the environment to carry into the next call — the same
// env on failure, the post-evaluation environment on success.
func (h *Host) ParseAndEval(mode Mode, env *runtime.Environment, source string) (runtime.Value, *runtime.Environment) {
	program, errVal := Parse(source)
	if errVal != nil {
		return errVal, env
	}
	return h.Eval(mode, env, program)
}

// HasPipelineDefinition reports whether program defines a pipeline
// anywhere at the top level — the structural check `run`'s "script
// must build a pipeline" gate performs before evaluating.
func HasPipelineDefinition(program *ast.Program) bool {
	for _, stmt := range program.Statements {
		var expr ast.Expression
		switch s := stmt.(type) {
		case *ast.FirstAssignStmt:
			expr = s.Value
		case *ast.OverwriteStmt:
			expr = s.Value
		case *ast.ExprStmt:
			expr = s.Expression
		default:
			continue
		}
		if _, ok := expr.(*ast.PipelineDef); ok {
			return true
		}
	}
	return false
}

// Validate applies strict-mode's parameter/return-annotation checks
// when mode is ModeStrict, returning nil when there is nothing to
// validate or the program passes. ModeREPL never validates: the REPL
// exists precisely so incomplete annotations can be tried out.
func Validate(mode Mode, program *ast.Program) *runtime.ErrorValue {
	if mode != ModeStrict {
		return nil
	}
	return strictmode.Validate(program)
}

func parseErrorValue(e *parser.ParseError) *runtime.ErrorValue {
	return runtime.NewErrorf(runtime.GenericError, "%s: %s", e.Pos, e.Message)
}
