// Package token defines the lexical tokens of arithmetic expressions.
package token

import "fmt"

type TokenType string

const (
	NUMBER    TokenType = "NUMBER"
	IDENT     TokenType = "IDENT"
	OPERATOR  TokenType = "OPERATOR"
	FUNC_HEAD TokenType = "FUNC_HEAD"
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	COMMA     TokenType = ","
)

// Radix tags a number literal with how its digits must be read.
type Radix int

const (
	// RadixAmbient means the literal is read in the configured input base.
	RadixAmbient Radix = iota
	// RadixDecimal is a bare literal carrying a point or an exponent.
	RadixDecimal
	RadixHex
	RadixBin
	RadixOct
)

// Base returns the numeric base of an explicit radix, or 0 for ambient.
func (r Radix) Base() int {
	switch r {
	case RadixDecimal:
		return 10
	case RadixHex:
		return 16
	case RadixBin:
		return 2
	case RadixOct:
		return 8
	default:
		return 0
	}
}

// Explicit reports whether the literal carried a 0x/0b/0o prefix.
func (r Radix) Explicit() bool {
	return r == RadixHex || r == RadixBin || r == RadixOct
}

func (r Radix) String() string {
	switch r {
	case RadixAmbient:
		return "ambient"
	case RadixDecimal:
		return "decimal"
	case RadixHex:
		return "hex"
	case RadixBin:
		return "bin"
	case RadixOct:
		return "oct"
	default:
		return fmt.Sprintf("radix(%d)", int(r))
	}
}

// Token is a single lexical unit. Tokens are created fresh per call and never
// mutated after the lexer returns them.
type Token struct {
	Type TokenType
	// Lexeme is the source text. For NUMBER it is the digit body with the
	// radix prefix and '_' separators removed; for OPERATOR it is the operator
	// symbol ("u-" and "u+" for the unary forms); for IDENT and FUNC_HEAD it
	// is the lowercased name.
	Lexeme string
	Radix  Radix
	// Pos is the 1-based rune position of the token in the original input.
	Pos int
}

func (t Token) String() string {
	switch t.Type {
	case NUMBER:
		return fmt.Sprintf("%s(%s,%s)", t.Type, t.Lexeme, t.Radix)
	case IDENT, OPERATOR, FUNC_HEAD:
		return fmt.Sprintf("%s(%s)", t.Type, t.Lexeme)
	default:
		return string(t.Type)
	}
}

// EndsOperand reports whether a token can end an operand, which is what makes
// a following '+' or '-' binary.
func (t Token) EndsOperand() bool {
	switch t.Type {
	case NUMBER, IDENT, RPAREN:
		return true
	default:
		return false
	}
}
