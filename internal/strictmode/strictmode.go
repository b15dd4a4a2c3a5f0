// Package strictmode implements the optional pre-pass that validates
// top-level lambda annotations before a script runs. It never touches
// values or environments — only the AST — so it can reject a program
// before any evaluation begins.
package strictmode

import (
	"unicode"

	"github.com/b-rodrigues/tlang-sub002/internal/ast"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

// Validate checks every top-level `name = λ` statement in program:
// every parameter must carry a type annotation, the lambda itself
// must carry a return-type annotation, and every generic-looking type
// identifier (a single uppercase letter; see isGenericIdentifier) used in an annotation
// must appear in the lambda's declared generic-parameter list. The
// first violation is returned as an error value; a nil return means
// the program passed.
func Validate(program *ast.Program) *runtime.ErrorValue {
	for _, stmt := range program.Statements {
		fa, ok := stmt.(*ast.FirstAssignStmt)
		if !ok {
			continue
		}
		lam, ok := fa.Value.(*ast.LambdaExpr)
		if !ok {
			continue
		}
		if err := validateLambda(fa.Name, lam); err != nil {
			return err
		}
	}
	return nil
}

func validateLambda(name string, lam *ast.LambdaExpr) *runtime.ErrorValue {
	declared := make(map[string]bool, len(lam.Generics))
	for _, g := range lam.Generics {
		declared[g] = true
	}

	for _, p := range lam.Params {
		if p.Type == nil {
			return runtime.NewErrorf(runtime.TypeError,
				"strict mode: parameter %q of %q is missing a type annotation", p.Name, name)
		}
		if isGenericIdentifier(p.Type.Name) && !declared[p.Type.Name] {
			return runtime.NewErrorf(runtime.TypeError,
				"strict mode: type variable %q used by parameter %q of %q is not declared as a generic parameter",
				p.Type.Name, p.Name, name)
		}
	}

	if lam.ReturnType == nil {
		return runtime.NewErrorf(runtime.TypeError,
			"strict mode: %q is missing a return type annotation", name)
	}
	if isGenericIdentifier(lam.ReturnType.Name) && !declared[lam.ReturnType.Name] {
		return runtime.NewErrorf(runtime.TypeError,
			"strict mode: type variable %q used by the return type of %q is not declared as a generic parameter",
			lam.ReturnType.Name, name)
	}

	return nil
}

// isGenericIdentifier reports whether name is a single uppercase
// letter (`T`, `K`, `V`, ...), the conventional shape of a type
// variable, as distinct from a multi-character concrete type name
// (`Int`, `String`, `Dict`) that also happens to start uppercase.
// tlang has no surface syntax for declaring generics, so any such
// identifier currently fails validation unless a future collaborator
// extends the lambda grammar to populate LambdaExpr.Generics.
func isGenericIdentifier(name string) bool {
	r := []rune(name)
	return len(r) == 1 && unicode.IsUpper(r[0])
}
