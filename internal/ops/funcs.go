package ops

import (
	"math"

	"github.com/funvibe/radixquest/internal/config"
)

// Variadic marks a function accepting one or more arguments.
const Variadic = -1

// Func describes a built-in function.
type Func struct {
	Name  string
	Arity int

	// IntegerOnly functions are rejected by the float evaluator.
	IntegerOnly bool
	// Integer reports whether the integer evaluator implements the function.
	Integer bool

	// Float is the float-mode implementation, nil for integer-only functions.
	Float func(args []float64) float64
}

// Accepts reports whether argc is a valid argument count.
func (f *Func) Accepts(argc int) bool {
	if f.Arity == Variadic {
		return argc >= 1
	}
	return argc == f.Arity
}

func unary(fn func(float64) float64) func([]float64) float64 {
	return func(args []float64) float64 { return fn(args[0]) }
}

func fold(fn func(a, b float64) float64) func([]float64) float64 {
	return func(args []float64) float64 {
		acc := args[0]
		for _, x := range args[1:] {
			acc = fn(acc, x)
		}
		return acc
	}
}

// Round rounds half toward positive infinity.
func Round(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}

var funcs = map[string]*Func{
	config.SinFuncName:   {Name: config.SinFuncName, Arity: 1, Float: unary(math.Sin)},
	config.CosFuncName:   {Name: config.CosFuncName, Arity: 1, Float: unary(math.Cos)},
	config.TanFuncName:   {Name: config.TanFuncName, Arity: 1, Float: unary(math.Tan)},
	config.AsinFuncName:  {Name: config.AsinFuncName, Arity: 1, Float: unary(math.Asin)},
	config.AcosFuncName:  {Name: config.AcosFuncName, Arity: 1, Float: unary(math.Acos)},
	config.AtanFuncName:  {Name: config.AtanFuncName, Arity: 1, Float: unary(math.Atan)},
	config.SqrtFuncName:  {Name: config.SqrtFuncName, Arity: 1, Float: unary(math.Sqrt)},
	config.AbsFuncName:   {Name: config.AbsFuncName, Arity: 1, Integer: true, Float: unary(math.Abs)},
	config.FloorFuncName: {Name: config.FloorFuncName, Arity: 1, Float: unary(math.Floor)},
	config.CeilFuncName:  {Name: config.CeilFuncName, Arity: 1, Float: unary(math.Ceil)},
	config.RoundFuncName: {Name: config.RoundFuncName, Arity: 1, Float: unary(Round)},
	config.LogFuncName:   {Name: config.LogFuncName, Arity: 1, Float: unary(math.Log10)},
	config.LnFuncName:    {Name: config.LnFuncName, Arity: 1, Float: unary(math.Log)},
	config.MinFuncName:   {Name: config.MinFuncName, Arity: Variadic, Integer: true, Float: fold(math.Min)},
	config.MaxFuncName:   {Name: config.MaxFuncName, Arity: Variadic, Integer: true, Float: fold(math.Max)},
	config.XorFuncName:   {Name: config.XorFuncName, Arity: 2, IntegerOnly: true, Integer: true},
}

// LookupFunc returns the built-in function with the given lowercased name.
func LookupFunc(name string) (*Func, bool) {
	f, ok := funcs[name]
	return f, ok
}

var constants = map[string]float64{
	config.PiConstName:  math.Pi,
	config.TauConstName: 2 * math.Pi,
	config.EConstName:   math.E,
}

// LookupConst returns the value of a named float constant.
func LookupConst(name string) (float64, bool) {
	v, ok := constants[name]
	return v, ok
}
