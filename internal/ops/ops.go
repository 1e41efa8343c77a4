// Package ops holds the static operator, function and constant tables of
// the expression language. The tables are never mutated.
package ops

// Op is an operator after unary disambiguation.
type Op uint

const (
	InvalidOp Op = iota
	Add          //  +   add
	Sub          //  -   subtract
	Mul          //  *   multiply
	Div          //  /   divide
	Mod          //  %   remainder
	Pow          //  ^   power
	PowStar      //  **  power
	LeftShift    //  <<  left shift
	RightShift   //  >>  right shift
	BitAnd       //  &   bitwise and
	BitXor       //  xor bitwise xor
	BitOr        //  |   bitwise or
	Neg          //  u-  negate
	Pos          //  u+  positive (nop)
	BitNot       //  ~   bitwise not
)

// Assoc is the associativity of a binary operator.
type Assoc int

const (
	Left Assoc = iota
	Right
)

var opTable = [...]struct {
	symbol, desc string
	prec         int
	assoc        Assoc
	arity        int
	intOnly      bool
}{
	InvalidOp:  {"invalid", "invalid", 0, Left, 0, false},
	Add:        {"+", "add", 10, Left, 2, false},
	Sub:        {"-", "sub", 10, Left, 2, false},
	Mul:        {"*", "mul", 20, Left, 2, false},
	Div:        {"/", "div", 20, Left, 2, false},
	Mod:        {"%", "mod", 20, Left, 2, false},
	Pow:        {"^", "pow", 30, Right, 2, false},
	PowStar:    {"**", "pow", 30, Right, 2, false},
	LeftShift:  {"<<", "left_shift", 9, Left, 2, true},
	RightShift: {">>", "right_shift", 9, Left, 2, true},
	BitAnd:     {"&", "bit_and", 8, Left, 2, true},
	BitXor:     {"xor", "bit_xor", 7, Left, 2, true},
	BitOr:      {"|", "bit_or", 6, Left, 2, true},
	Neg:        {"u-", "neg", 40, Right, 1, false},
	Pos:        {"u+", "pos", 40, Right, 1, false},
	BitNot:     {"~", "bit_not", 40, Right, 1, true},
}

func (op Op) String() string { return opTable[op].desc }

// Symbol returns the operator as written, with "u-" and "u+" for the
// prefix forms.
func (op Op) Symbol() string { return opTable[op].symbol }

func (op Op) Precedence() int { return opTable[op].prec }

func (op Op) Assoc() Assoc { return opTable[op].assoc }

// Arity is 1 for prefix operators and 2 otherwise.
func (op Op) Arity() int { return opTable[op].arity }

// IntegerOnly reports whether the operator is rejected by the float
// evaluator.
func (op Op) IntegerOnly() bool { return opTable[op].intOnly }

// ToOp converts a lexer operator symbol into an Op, or returns InvalidOp if
// it couldn't be converted.
func ToOp(s string) Op {
	for op, item := range opTable {
		if Op(op) != InvalidOp && s == item.symbol {
			return Op(op)
		}
	}
	return InvalidOp
}

// Yields reports whether an operator already on the stack must be emitted
// before incoming is pushed.
func Yields(incoming, top Op) bool {
	p1, p2 := incoming.Precedence(), top.Precedence()
	if incoming.Assoc() == Left {
		return p1 <= p2
	}
	return p1 < p2
}
