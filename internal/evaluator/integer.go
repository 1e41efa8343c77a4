package evaluator

import (
	"math/big"

	"github.com/funvibe/radixquest/internal/config"
	"github.com/funvibe/radixquest/internal/diagnostics"
	"github.com/funvibe/radixquest/internal/ops"
	"github.com/funvibe/radixquest/internal/rpn"
	"github.com/funvibe/radixquest/internal/value"
)

var shiftMask = big.NewInt(config.ShiftMask)

// intMachine evaluates a program over W-bit integers. Every stack slot
// holds a canonical value in [0, 2^W).
type intMachine struct {
	opts  value.Options
	w     int
	stack []*big.Int
}

// EvaluateInteger runs prog in integer mode and returns the canonical
// result.
func EvaluateInteger(prog *rpn.Program, opts value.Options) (*big.Int, error) {
	m := &intMachine{opts: opts, w: opts.BitWidth}
	for _, ins := range prog.Code {
		if err := m.step(ins); err != nil {
			return nil, err
		}
	}
	if len(m.stack) != 1 {
		return nil, residual(len(m.stack))
	}
	return m.stack[0], nil
}

func (m *intMachine) canon(x *big.Int) *big.Int {
	return value.Canon(x, m.w)
}

func (m *intMachine) signed(x *big.Int) *big.Int {
	return value.ToSigned(x, m.w)
}

// operand returns x as the evaluator interprets it: two's complement when
// signed, the canonical value otherwise.
func (m *intMachine) operand(x *big.Int) *big.Int {
	if m.opts.Signed {
		return m.signed(x)
	}
	return x
}

func (m *intMachine) step(ins rpn.Instruction) error {
	switch ins.Kind {
	case rpn.Number:
		n, err := parseIntLiteral(ins.Literal, m.opts.InputBase)
		if err != nil {
			return err
		}
		m.push(m.canon(n))
		return nil

	case rpn.Constant:
		if _, ok := ops.LookupConst(ins.Name); ok {
			return diagnostics.NewError(diagnostics.ErrE004, ins.Pos,
				"constant '%s' is float-only", ins.Name)
		}
		return unknownIdentifier(ins)

	case rpn.Call:
		return m.call(ins)

	case rpn.Operator:
		return m.operator(ins)
	}
	return diagnostics.NewError(diagnostics.ErrS002, ins.Pos, "unknown instruction %s", ins.Kind)
}

func (m *intMachine) call(ins rpn.Instruction) error {
	fn, ok := ops.LookupFunc(ins.Name)
	if !ok {
		return unknownFunction(ins)
	}
	if !fn.Integer {
		return diagnostics.NewError(diagnostics.ErrE004, ins.Pos,
			"function '%s' is not available in integer mode", ins.Name)
	}
	if !fn.Accepts(ins.Argc) {
		return wrongArity(fn, ins)
	}
	args, err := m.popN(ins.Argc, ins.Pos)
	if err != nil {
		return err
	}

	switch fn.Name {
	case config.XorFuncName:
		m.push(new(big.Int).Xor(args[0], args[1]))
	case config.AbsFuncName:
		m.push(m.canon(new(big.Int).Abs(m.operand(args[0]))))
	case config.MinFuncName, config.MaxFuncName:
		// Canonical values compare as unsigned even in signed mode.
		v := args[0]
		for _, x := range args[1:] {
			c := x.Cmp(v)
			if (fn.Name == config.MinFuncName && c < 0) || (fn.Name == config.MaxFuncName && c > 0) {
				v = x
			}
		}
		m.push(v)
	default:
		return diagnostics.NewError(diagnostics.ErrE004, ins.Pos,
			"function '%s' is not available in integer mode", ins.Name)
	}
	return nil
}

func (m *intMachine) operator(ins rpn.Instruction) error {
	op := ins.Op
	args, err := m.popN(op.Arity(), ins.Pos)
	if err != nil {
		return err
	}

	if op.Arity() == 1 {
		a := args[0]
		switch op {
		case ops.Neg:
			m.push(m.canon(new(big.Int).Neg(a)))
		case ops.Pos:
			m.push(a)
		case ops.BitNot:
			m.push(m.canon(new(big.Int).Not(a)))
		default:
			return diagnostics.NewError(diagnostics.ErrE004, ins.Pos, "unknown operator '%s'", op.Symbol())
		}
		return nil
	}

	a, b := args[0], args[1]
	r := new(big.Int)
	switch op {
	case ops.Add:
		r.Add(a, b)
	case ops.Sub:
		r.Sub(a, b)
	case ops.Mul:
		r.Mul(a, b)
	case ops.Div, ops.Mod:
		if b.Sign() == 0 {
			word := "division"
			if op == ops.Mod {
				word = "modulo"
			}
			return diagnostics.NewError(diagnostics.ErrE005, ins.Pos,
				"%s by zero at position %d", word, ins.Pos)
		}
		// Quo and Rem truncate toward zero.
		if op == ops.Div {
			r.Quo(m.operand(a), m.operand(b))
		} else {
			r.Rem(m.operand(a), m.operand(b))
		}
	case ops.Pow, ops.PowStar:
		if m.opts.Signed && m.signed(b).Sign() < 0 {
			return diagnostics.NewError(diagnostics.ErrE006, ins.Pos,
				"negative exponent not allowed in integer mode (position %d)", ins.Pos)
		}
		r = m.pow(a, b)
	case ops.LeftShift:
		r.Lsh(a, m.shiftAmount(b))
	case ops.RightShift:
		// Rsh on a negative big.Int is an arithmetic shift.
		r.Rsh(m.operand(a), m.shiftAmount(b))
	case ops.BitAnd:
		r.And(a, b)
	case ops.BitOr:
		r.Or(a, b)
	case ops.BitXor:
		r.Xor(a, b)
	default:
		return diagnostics.NewError(diagnostics.ErrE004, ins.Pos, "unknown operator '%s'", op.Symbol())
	}
	m.push(m.canon(r))
	return nil
}

func (m *intMachine) shiftAmount(b *big.Int) uint {
	return uint(new(big.Int).And(b, shiftMask).Uint64())
}

// pow computes base^exp mod 2^W by square-and-multiply, reducing after
// every step so intermediates stay within 2W bits.
func (m *intMachine) pow(base, exp *big.Int) *big.Int {
	result := big.NewInt(1)
	b := new(big.Int).Set(base)
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			result = m.canon(result.Mul(result, b))
		}
		b = m.canon(b.Mul(b, b))
	}
	return m.canon(result)
}

func (m *intMachine) push(v *big.Int) {
	m.stack = append(m.stack, v)
}

func (m *intMachine) popN(n, pos int) ([]*big.Int, error) {
	if len(m.stack) < n {
		return nil, underflow(pos)
	}
	args := make([]*big.Int, n)
	copy(args, m.stack[len(m.stack)-n:])
	m.stack = m.stack[:len(m.stack)-n]
	return args, nil
}
