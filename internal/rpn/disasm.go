package rpn

import (
	"fmt"
	"strings"
)

// Disassemble returns a human-readable representation of the program
func Disassemble(p *Program, name string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("== %s ==\n", name))

	for offset, ins := range p.Code {
		disassembleInstruction(&sb, ins, offset)
	}

	return sb.String()
}

func disassembleInstruction(sb *strings.Builder, ins Instruction, offset int) {
	sb.WriteString(fmt.Sprintf("%04d %4d ", offset, ins.Pos))

	switch ins.Kind {
	case Number:
		sb.WriteString(fmt.Sprintf("%-16s %s (%s)\n", "NUMBER", ins.Literal.Lexeme, ins.Literal.Radix))
	case Constant:
		sb.WriteString(fmt.Sprintf("%-16s %s\n", "CONST", ins.Name))
	case Call:
		sb.WriteString(fmt.Sprintf("%-16s %s (args: %d)\n", "CALL", ins.Name, ins.Argc))
	case Operator:
		sb.WriteString(fmt.Sprintf("%-16s %s\n", strings.ToUpper(ins.Op.String()), ins.Op.Symbol()))
	default:
		sb.WriteString(fmt.Sprintf("Unknown kind %d\n", ins.Kind))
	}
}
