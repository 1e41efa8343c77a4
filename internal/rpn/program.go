// Package rpn defines the flat postfix instruction sequence produced by the
// parser and consumed by the evaluators.
package rpn

import (
	"github.com/funvibe/radixquest/internal/ops"
	"github.com/funvibe/radixquest/internal/token"
)

// Kind tags an Instruction variant.
type Kind int

const (
	Number Kind = iota
	Constant
	Call
	Operator
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "NUMBER"
	case Constant:
		return "CONST"
	case Call:
		return "CALL"
	case Operator:
		return "OP"
	default:
		return "UNKNOWN"
	}
}

// Instruction is one step of a Program.
type Instruction struct {
	Kind Kind

	// Literal is the number token for Number instructions.
	Literal token.Token
	// Name is the identifier for Constant and Call instructions.
	Name string
	// Argc is the resolved argument count of a Call.
	Argc int
	// Op is the operator of an Operator instruction.
	Op ops.Op

	// Pos is the 1-based position of the source token.
	Pos int
}

// Program is an ordered postfix instruction list. Parentheses and commas
// are already resolved.
type Program struct {
	Code []Instruction
}

func (p *Program) Len() int { return len(p.Code) }

func (p *Program) emit(ins Instruction) {
	p.Code = append(p.Code, ins)
}

func (p *Program) EmitNumber(tok token.Token) {
	p.emit(Instruction{Kind: Number, Literal: tok, Pos: tok.Pos})
}

func (p *Program) EmitConstant(name string, pos int) {
	p.emit(Instruction{Kind: Constant, Name: name, Pos: pos})
}

func (p *Program) EmitCall(name string, argc, pos int) {
	p.emit(Instruction{Kind: Call, Name: name, Argc: argc, Pos: pos})
}

func (p *Program) EmitOperator(op ops.Op, pos int) {
	p.emit(Instruction{Kind: Operator, Op: op, Pos: pos})
}
