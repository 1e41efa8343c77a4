package value

import (
	"math/big"
	"strconv"
)

type ResultKind int

const (
	FloatResult ResultKind = iota
	IntegerResult
)

// Result is the outcome of a successful evaluation.
//
// Float results carry Float and an optional advisory Note. Integer results
// carry Integer in canonical unsigned form (the residue modulo 2^BitWidth of
// Options) and never a separate signed copy; use Signed to reconstruct it.
type Result struct {
	Kind    ResultKind
	Float   float64
	Note    string
	Integer *big.Int
	Options Options
}

func NewFloat(v float64, note string, opts Options) Result {
	return Result{Kind: FloatResult, Float: v, Note: note, Options: opts}
}

// NewInteger canonicalizes v to the configured width.
func NewInteger(v *big.Int, opts Options) Result {
	return Result{Kind: IntegerResult, Integer: Canon(v, opts.BitWidth), Options: opts}
}

// Signed returns the two's-complement interpretation of an integer result.
func (r Result) Signed() *big.Int {
	return ToSigned(r.Integer, r.Options.BitWidth)
}

// Unsigned returns a copy of the canonical integer value.
func (r Result) Unsigned() *big.Int {
	return new(big.Int).Set(r.Integer)
}

func (r Result) String() string {
	if r.Kind == IntegerResult {
		if r.Options.Signed {
			return r.Signed().String()
		}
		return r.Integer.String()
	}
	return strconv.FormatFloat(r.Float, 'g', -1, 64)
}
