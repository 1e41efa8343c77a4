package evaluator

import (
	"math"
	"math/big"
	"strconv"

	"github.com/funvibe/radixquest/internal/config"
	"github.com/funvibe/radixquest/internal/diagnostics"
	"github.com/funvibe/radixquest/internal/token"
	"github.com/funvibe/radixquest/internal/value"
)

var maxSafeInteger = big.NewInt(config.MaxSafeInteger)

// literalBase returns the base a number token's digits are read in.
func literalBase(tok token.Token, input value.InputBase) int {
	if tok.Radix == token.RadixAmbient {
		return input.Radix()
	}
	return tok.Radix.Base()
}

func validDigits(s string, base int) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		var d int
		switch {
		case '0' <= ch && ch <= '9':
			d = int(ch - '0')
		case 'a' <= ch && ch <= 'f':
			d = int(ch-'a') + 10
		case 'A' <= ch && ch <= 'F':
			d = int(ch-'A') + 10
		default:
			return false
		}
		if d >= base {
			return false
		}
	}
	return true
}

// parseBigLiteral reads an integer literal in base, validating its digits.
func parseBigLiteral(tok token.Token, base int) (*big.Int, error) {
	if !validDigits(tok.Lexeme, base) {
		return nil, diagnostics.NewError(diagnostics.ErrE008, tok.Pos,
			"invalid digits for base %d at position %d", base, tok.Pos)
	}
	n, ok := new(big.Int).SetString(tok.Lexeme, base)
	if !ok {
		return nil, diagnostics.NewError(diagnostics.ErrE008, tok.Pos,
			"invalid number '%s' at position %d", tok.Lexeme, tok.Pos)
	}
	return n, nil
}

// parseFloatLiteral reads a number token for the float evaluator. Integer
// literals in a non-decimal base go through big.Int and carry an advisory
// note when they exceed 2^53-1.
func parseFloatLiteral(tok token.Token, input value.InputBase) (float64, string, error) {
	base := literalBase(tok, input)
	if base == 10 {
		f, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			// ParseFloat reports overflow as ErrRange with f = ±Inf.
			return 0, "", diagnostics.NewError(diagnostics.ErrE008, tok.Pos,
				"invalid number '%s' at position %d", tok.Lexeme, tok.Pos)
		}
		return f, "", nil
	}

	n, err := parseBigLiteral(tok, base)
	if err != nil {
		return 0, "", err
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	if math.IsInf(f, 0) {
		return 0, "", diagnostics.NewError(diagnostics.ErrE008, tok.Pos,
			"invalid number '%s' at position %d", tok.Lexeme, tok.Pos)
	}
	var note string
	if n.Cmp(maxSafeInteger) > 0 {
		note = config.PrecisionNote
	}
	return f, note, nil
}

// parseIntLiteral reads a number token for the integer evaluator. The
// result is not yet canonicalized.
func parseIntLiteral(tok token.Token, input value.InputBase) (*big.Int, error) {
	if tok.Radix == token.RadixDecimal {
		return nil, diagnostics.NewError(diagnostics.ErrE008, tok.Pos,
			"only integers allowed without prefix in integer mode (position %d)", tok.Pos)
	}
	return parseBigLiteral(tok, literalBase(tok, input))
}
