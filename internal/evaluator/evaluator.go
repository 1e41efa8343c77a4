// Package evaluator runs postfix programs in float or fixed-width integer
// mode.
package evaluator

import (
	"github.com/funvibe/radixquest/internal/diagnostics"
	"github.com/funvibe/radixquest/internal/rpn"
	"github.com/funvibe/radixquest/internal/value"
)

// Evaluate runs prog with the mode selected in opts.
func Evaluate(prog *rpn.Program, opts value.Options) (value.Result, error) {
	if err := opts.Validate(); err != nil {
		return value.Result{}, diagnostics.NewError(diagnostics.ErrE009, 0, "%s", err)
	}

	if opts.Mode == value.ModeInteger {
		n, err := EvaluateInteger(prog, opts)
		if err != nil {
			return value.Result{}, err
		}
		return value.NewInteger(n, opts), nil
	}

	f, note, err := EvaluateFloat(prog, opts.InputBase)
	if err != nil {
		return value.Result{}, err
	}
	return value.NewFloat(f, note, opts), nil
}
