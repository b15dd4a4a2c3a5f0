// Package diag is the small diagnostic-warning channel the evaluator
// writes to on an `:=` overwrite. It is deliberately just
// an io.Writer wrapper, not a structured logger: the core only ever
// emits one kind of message on one channel: a bare prefixed line, since
// there is no position tracking once evaluation starts and no severity
// other than "warning".
package diag

import (
	"fmt"
	"io"
)

// Stream writes warning lines to an underlying writer (typically
// os.Stderr for `run`/`repl`, or discarded entirely when the host
// doesn't want them).
type Stream struct {
	w io.Writer
}

// New wraps w as a diagnostic Stream.
func New(w io.Writer) *Stream {
	return &Stream{w: w}
}

// Warnf writes a "warning: <message>" line, ignoring write errors —
// a failed diagnostic write must never abort evaluation.
func (s *Stream) Warnf(format string, args ...any) {
	if s == nil || s.w == nil {
		return
	}
	fmt.Fprintf(s.w, "warning: %s\n", fmt.Sprintf(format, args...))
}
