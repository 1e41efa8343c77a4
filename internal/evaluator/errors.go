package evaluator

import (
	"github.com/funvibe/radixquest/internal/diagnostics"
	"github.com/funvibe/radixquest/internal/ops"
	"github.com/funvibe/radixquest/internal/rpn"
)

func unknownIdentifier(ins rpn.Instruction) error {
	return diagnostics.NewError(diagnostics.ErrE001, ins.Pos,
		"unknown identifier '%s' at position %d", ins.Name, ins.Pos)
}

func unknownFunction(ins rpn.Instruction) error {
	return diagnostics.NewError(diagnostics.ErrE002, ins.Pos,
		"unknown function '%s' at position %d", ins.Name, ins.Pos)
}

func wrongArity(fn *ops.Func, ins rpn.Instruction) error {
	if fn.Arity == ops.Variadic {
		return diagnostics.NewError(diagnostics.ErrE003, ins.Pos,
			"function '%s' expects at least 1 argument, got %d", fn.Name, ins.Argc)
	}
	noun := "arguments"
	if fn.Arity == 1 {
		noun = "argument"
	}
	return diagnostics.NewError(diagnostics.ErrE003, ins.Pos,
		"function '%s' expects %d %s, got %d", fn.Name, fn.Arity, noun, ins.Argc)
}

func underflow(pos int) error {
	return diagnostics.NewError(diagnostics.ErrS002, pos, "stack underflow at position %d", pos)
}

func residual(depth int) error {
	return diagnostics.NewError(diagnostics.ErrS001, 0,
		"invalid expression: %d values left on the stack", depth)
}
