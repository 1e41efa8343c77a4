package parser

import (
	"github.com/funvibe/radixquest/internal/diagnostics"
	"github.com/funvibe/radixquest/internal/rpn"
)

// checkDepth simulates the evaluator stack over prog. Each simulated value
// remembers the position where its sub-expression starts, so a leftover
// operand can be pointed at.
func checkDepth(prog *rpn.Program) error {
	var starts []int
	for _, ins := range prog.Code {
		need := 0
		switch ins.Kind {
		case rpn.Number, rpn.Constant:
		case rpn.Call:
			need = ins.Argc
		case rpn.Operator:
			need = ins.Op.Arity()
		}
		if len(starts) < need {
			if ins.Kind == rpn.Call {
				return diagnostics.NewError(diagnostics.ErrP004, ins.Pos,
					"incomplete expression: missing argument to '%s' at position %d", ins.Name, ins.Pos)
			}
			return diagnostics.NewError(diagnostics.ErrP004, ins.Pos,
				"incomplete expression: operator '%s' at position %d is missing an operand", ins.Op.Symbol(), ins.Pos)
		}

		start := ins.Pos
		if need > 0 {
			if first := starts[len(starts)-need]; first < start {
				start = first
			}
			starts = starts[:len(starts)-need]
		}
		starts = append(starts, start)
	}

	if len(starts) == 0 {
		// Only empty groups such as "()" get here.
		return diagnostics.NewError(diagnostics.ErrP005, 0, "empty expression")
	}
	if len(starts) > 1 {
		return diagnostics.NewError(diagnostics.ErrP004, starts[1],
			"missing operator before position %d", starts[1])
	}
	return nil
}
