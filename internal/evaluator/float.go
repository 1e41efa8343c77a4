package evaluator

import (
	"math"

	"github.com/funvibe/radixquest/internal/diagnostics"
	"github.com/funvibe/radixquest/internal/ops"
	"github.com/funvibe/radixquest/internal/rpn"
	"github.com/funvibe/radixquest/internal/value"
)

// floatMachine evaluates a program over IEEE-754 doubles.
type floatMachine struct {
	input value.InputBase
	stack []float64
	note  string
}

// EvaluateFloat runs prog in float mode and returns the value together with
// the last advisory note raised by a literal.
func EvaluateFloat(prog *rpn.Program, input value.InputBase) (float64, string, error) {
	m := &floatMachine{input: input}
	for _, ins := range prog.Code {
		if err := m.step(ins); err != nil {
			return 0, "", err
		}
	}
	if len(m.stack) != 1 {
		return 0, "", residual(len(m.stack))
	}
	return m.stack[0], m.note, nil
}

func (m *floatMachine) step(ins rpn.Instruction) error {
	switch ins.Kind {
	case rpn.Number:
		f, note, err := parseFloatLiteral(ins.Literal, m.input)
		if err != nil {
			return err
		}
		if note != "" {
			m.note = note
		}
		m.push(f)
		return nil

	case rpn.Constant:
		c, ok := ops.LookupConst(ins.Name)
		if !ok {
			return unknownIdentifier(ins)
		}
		m.push(c)
		return nil

	case rpn.Call:
		return m.call(ins)

	case rpn.Operator:
		return m.operator(ins)
	}
	return diagnostics.NewError(diagnostics.ErrS002, ins.Pos, "unknown instruction %s", ins.Kind)
}

func (m *floatMachine) call(ins rpn.Instruction) error {
	fn, ok := ops.LookupFunc(ins.Name)
	if !ok {
		return unknownFunction(ins)
	}
	if fn.IntegerOnly {
		return diagnostics.NewError(diagnostics.ErrE004, ins.Pos,
			"function '%s' is integer-only", ins.Name)
	}
	if !fn.Accepts(ins.Argc) {
		return wrongArity(fn, ins)
	}
	args, err := m.popN(ins.Argc, ins.Pos)
	if err != nil {
		return err
	}
	return m.pushChecked(fn.Float(args), ins)
}

func (m *floatMachine) operator(ins rpn.Instruction) error {
	op := ins.Op
	if op.IntegerOnly() {
		return diagnostics.NewError(diagnostics.ErrE004, ins.Pos,
			"operator '%s' is integer-only", op.Symbol())
	}
	args, err := m.popN(op.Arity(), ins.Pos)
	if err != nil {
		return err
	}

	if op.Arity() == 1 {
		a := args[0]
		if op == ops.Neg {
			a = -a
		}
		return m.pushChecked(a, ins)
	}

	a, b := args[0], args[1]
	var r float64
	switch op {
	case ops.Add:
		r = a + b
	case ops.Sub:
		r = a - b
	case ops.Mul:
		r = a * b
	case ops.Div:
		r = a / b
	case ops.Mod:
		r = math.Mod(a, b)
	case ops.Pow, ops.PowStar:
		r = math.Pow(a, b)
	default:
		return diagnostics.NewError(diagnostics.ErrE004, ins.Pos,
			"unknown operator '%s'", op.Symbol())
	}
	return m.pushChecked(r, ins)
}

// pushChecked rejects NaN and infinities.
func (m *floatMachine) pushChecked(v float64, ins rpn.Instruction) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return diagnostics.NewError(diagnostics.ErrE007, ins.Pos,
			"computation produced a non-finite result at position %d", ins.Pos)
	}
	m.push(v)
	return nil
}

func (m *floatMachine) push(v float64) {
	m.stack = append(m.stack, v)
}

// popN removes the top n values and returns them in push order.
func (m *floatMachine) popN(n, pos int) ([]float64, error) {
	if len(m.stack) < n {
		return nil, underflow(pos)
	}
	args := make([]float64, n)
	copy(args, m.stack[len(m.stack)-n:])
	m.stack = m.stack[:len(m.stack)-n]
	return args, nil
}
