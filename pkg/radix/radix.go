// Package radix evaluates arithmetic expressions in float or fixed-width
// integer mode and renders the results in binary, octal, decimal and hex.
//
// Every call is independent: options are passed in, results are returned,
// nothing is cached or persisted.
package radix

import (
	"github.com/funvibe/radixquest/internal/evaluator"
	"github.com/funvibe/radixquest/internal/format"
	"github.com/funvibe/radixquest/internal/lexer"
	"github.com/funvibe/radixquest/internal/parser"
	"github.com/funvibe/radixquest/internal/pipeline"
	"github.com/funvibe/radixquest/internal/value"
)

type (
	Options     = value.Options
	Result      = value.Result
	InputBase   = value.InputBase
	DisplayBase = value.DisplayBase
	Mode        = value.Mode

	Output = format.Output
	Entry  = format.Entry
)

const (
	InputAuto = value.InputAuto
	InputBin  = value.InputBin
	InputOct  = value.InputOct
	InputDec  = value.InputDec
	InputHex  = value.InputHex

	DisplayAll = value.DisplayAll
	DisplayBin = value.DisplayBin
	DisplayOct = value.DisplayOct
	DisplayDec = value.DisplayDec
	DisplayHex = value.DisplayHex

	ModeFloat   = value.ModeFloat
	ModeInteger = value.ModeInteger
)

// DefaultOptions returns auto input base, decimal display, float mode and a
// signed 32-bit integer width.
func DefaultOptions() Options {
	return value.DefaultOptions()
}

var evaluation = pipeline.New(
	&lexer.LexerProcessor{},
	&parser.ParserProcessor{},
	&evaluator.EvaluatorProcessor{},
)

// Evaluate tokenizes, parses and evaluates expr. Errors are
// *diagnostics.Error values; use KindOf to classify them.
func Evaluate(expr string, opts Options) (Result, error) {
	ctx := evaluation.Run(pipeline.NewPipelineContext(expr, opts))
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return *ctx.Result, nil
}

// Format renders res with the display settings of opts.
func Format(res Result, opts Options) Output {
	return format.Format(res, format.OptionsFrom(opts))
}
