package radix

import "github.com/funvibe/radixquest/internal/diagnostics"

type (
	Error     = diagnostics.Error
	ErrorKind = diagnostics.Kind
)

const (
	LexError      = diagnostics.KindLex
	SyntaxError   = diagnostics.KindSyntax
	SemanticError = diagnostics.KindSemantic
	StackError    = diagnostics.KindStack
)

// KindOf classifies an error returned by Evaluate. It returns 0 for errors
// of other origins.
func KindOf(err error) ErrorKind {
	return diagnostics.KindOf(err)
}
