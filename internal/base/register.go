// Package base is a worked example of a registry consumer: a
// collaborator package that registers concrete builtins through the
// interface internal/builtins defines, the way an external
// domain package would. It is exercised by the CLI and by the core's
// own example programs, but is not itself part of the tested
// language-kernel invariants.
package base

import (
	"io"

	"github.com/b-rodrigues/tlang-sub002/internal/builtins"
)

// Register installs every builtin this package provides into r,
// writing `print`/`println` output to w.
func Register(r *builtins.Registry, w io.Writer) {
	registerIO(r, w)
	registerIntrospect(r)
	registerNA(r)
	registerSeq(r)
	registerHigherOrder(r)
	registerErrors(r)
	registerStrings(r)
	registerJSON(r)
}
