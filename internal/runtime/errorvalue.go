package runtime

import (
	"fmt"

	tlerrors "github.com/b-rodrigues/tlang-sub002/internal/errors"
)

// ErrorCode is the closed set of error codes tlang can raise.
type ErrorCode string

const (
	TypeError       ErrorCode = "TypeError"
	ArityError      ErrorCode = "ArityError"
	NameError       ErrorCode = "NameError"
	DivisionByZero  ErrorCode = "DivisionByZero"
	KeyError        ErrorCode = "KeyError"
	IndexError      ErrorCode = "IndexError"
	AssertionError  ErrorCode = "AssertionError"
	FileError       ErrorCode = "FileError"
	ValueError      ErrorCode = "ValueError"
	GenericError    ErrorCode = "GenericError"
)

// ErrorValue is tlang's first-class error. Errors
// are ordinary values: they flow through bindings and data structures
// like any other value, never as Go panics/exceptions, except at the
// lexer/parser boundary.
type ErrorValue struct {
	Code    ErrorCode
	Message string
	Context []DictEntry
}

func (*ErrorValue) Type() string { return "Error" }
func (e *ErrorValue) String() string {
	return fmt.Sprintf("Error(%s): %s", e.Code, e.Message)
}

// NewError builds a plain error value with no context.
func NewError(code ErrorCode, message string) *ErrorValue {
	return &ErrorValue{Code: code, Message: message}
}

// NewErrorf builds a plain error value with a formatted message.
func NewErrorf(code ErrorCode, format string, args ...any) *ErrorValue {
	return &ErrorValue{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithContext returns a copy of e with an additional (key, value)
// context entry appended.
func (e *ErrorValue) WithContext(key string, value Value) *ErrorValue {
	ctx := make([]DictEntry, len(e.Context), len(e.Context)+1)
	copy(ctx, e.Context)
	ctx = append(ctx, DictEntry{Key: key, Value: value})
	return &ErrorValue{Code: e.Code, Message: e.Message, Context: ctx}
}

// ContextValue returns the value stored under key, if present.
func (e *ErrorValue) ContextValue(key string) (Value, bool) {
	for _, c := range e.Context {
		if c.Key == key {
			return c.Value, true
		}
	}
	return nil, false
}

// NewNameError builds a NameError for an unresolved name, appending a
// "Did you mean '<best>'?" suggestion when some candidate
// in names is within edit distance max(1, len(unresolved)/3).
func NewNameError(unresolved string, candidates []string) *ErrorValue {
	msg := fmt.Sprintf(tlerrors.MsgUndefinedName, unresolved)
	if best, ok := tlerrors.Suggest(unresolved, candidates); ok {
		msg += fmt.Sprintf(tlerrors.MsgDidYouMean, best)
	}
	return NewError(NameError, msg)
}

// NewReassignError builds the NameError for a first-assignment that
// targets an already-bound name.
func NewReassignError(name string) *ErrorValue {
	return NewErrorf(NameError, tlerrors.MsgReassignImmutable, name)
}

// NewOverwriteUndefinedError builds the NameError for an `:=`
// overwrite of a name that was never bound.
func NewOverwriteUndefinedError(name string) *ErrorValue {
	return NewErrorf(NameError, tlerrors.MsgOverwriteUndefined, name)
}

// FormatForCLI renders an error the way `run <file>` prints it to
// stderr on exit: "Error(<code>): <message>".
func (e *ErrorValue) FormatForCLI() string {
	return e.String()
}
