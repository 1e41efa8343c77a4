// Package diagnostics defines the error taxonomy reported by the lexer,
// parser and evaluators.
package diagnostics

import (
	"errors"
	"fmt"
)

// Kind classifies an error by the stage that detected it.
type Kind int

const (
	// KindLex is an unexpected character or a malformed literal.
	KindLex Kind = iota + 1
	// KindSyntax is a grouping or operator placement error.
	KindSyntax
	// KindSemantic is a well-formed expression that cannot be evaluated.
	KindSemantic
	// KindStack is an internal invariant violation in an evaluator.
	KindStack
)

func (k Kind) String() string {
	switch k {
	case KindLex:
		return "LexError"
	case KindSyntax:
		return "SyntaxError"
	case KindSemantic:
		return "SemanticError"
	case KindStack:
		return "StackError"
	default:
		return "Error"
	}
}

type ErrorCode string

const (
	// Lexer
	ErrL001 ErrorCode = "L001" // unexpected character
	ErrL002 ErrorCode = "L002" // malformed literal

	// Parser
	ErrP001 ErrorCode = "P001" // mismatched parentheses
	ErrP002 ErrorCode = "P002" // comma outside a call or group
	ErrP003 ErrorCode = "P003" // unterminated function call
	ErrP004 ErrorCode = "P004" // missing operand or operator
	ErrP005 ErrorCode = "P005" // empty expression

	// Evaluation
	ErrE001 ErrorCode = "E001" // unknown identifier
	ErrE002 ErrorCode = "E002" // unknown function
	ErrE003 ErrorCode = "E003" // wrong argument count
	ErrE004 ErrorCode = "E004" // construct not available in this mode
	ErrE005 ErrorCode = "E005" // division or modulo by zero
	ErrE006 ErrorCode = "E006" // negative exponent
	ErrE007 ErrorCode = "E007" // non-finite result
	ErrE008 ErrorCode = "E008" // invalid number literal
	ErrE009 ErrorCode = "E009" // invalid options

	// Internal
	ErrS001 ErrorCode = "S001" // residual stack depth
	ErrS002 ErrorCode = "S002" // stack underflow
)

var codeKinds = map[byte]Kind{
	'L': KindLex,
	'P': KindSyntax,
	'E': KindSemantic,
	'S': KindStack,
}

// Error is a terminal failure of a single evaluation call.
type Error struct {
	Kind    Kind
	Code    ErrorCode
	Pos     int // 1-based character position, 0 when unknown
	Message string
}

// NewError builds an Error whose kind is derived from the code prefix.
func NewError(code ErrorCode, pos int, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    codeKinds[code[0]],
		Code:    code,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Kind, e.Code, e.Message)
}

// Is matches another *Error with the same code, so callers can test against
// a template error with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// KindOf returns the kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}

// CodeOf returns the code of err, or "" if err is not an *Error.
func CodeOf(err error) ErrorCode {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
