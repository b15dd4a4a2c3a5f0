// Package errors holds the small utilities the
// runtime error kernel is built on: the closed message
// catalog and the Levenshtein-based "did you mean" suggester. It has
// no dependency on internal/runtime so that package can depend on
// this one without a cycle.
package errors

// Message catalog: one format string per situation, grouped by the
// error code family that uses it.
const (
	// NameError
	MsgReassignImmutable  = "Cannot reassign immutable variable '%s'. Use ':=' to overwrite."
	MsgOverwriteUndefined = "Cannot overwrite '%s': variable not defined. Use '=' for first assignment."
	// TypeError
	MsgNAOperand          = "operation '%s' on NA value"
	MsgCallNonFunction    = "Cannot call %s as a function"
	MsgCallErrorOrNA      = "Cannot call Error/NA as a function"
	MsgBinaryOpError      = "operation '%s' failed: operand is an error"
	MsgTypeMismatch       = "type mismatch: %s %s %s"
	MsgConditionNotBool   = "condition must be boolean, got %s"

	// ArityError
	MsgArityMismatch     = "wrong number of arguments: expected %d, got %d"
	MsgArityMismatchFor  = "wrong number of arguments for %s: expected %d, got %d"
	MsgLambdaArityParams = "expected arguments (%s), got %d"

	// NameError
	MsgUndefinedName  = "undefined name: %s"
	MsgDidYouMean     = " Did you mean '%s'?"

	// DivisionByZero
	MsgDivisionByZero = "division by zero"

	// KeyError
	MsgKeyNotFound = "key not found: %s"

	// IndexError
	MsgIndexOutOfBounds = "index out of bounds: %d"

	// AssertionError
	MsgAssertionFailed = "assertion failed: %s"

	// ValueError
	MsgPipelineCycle     = "pipeline cycle detected at node '%s'"
	MsgPipelineNodeError = "pipeline node '%s' failed: %s"
	MsgIntentFieldType   = "intent field '%s' must evaluate to a string"

	// GenericError
	MsgParseError = "parse error: %s"
)
