// Package expr - the builtin function table.
package expr

import "math"

// builtin tags a math function with its arity so the parser can check
// argument counts before binding the call.
type builtin interface {
	arity() int
}

type fn1 func(float64) float64

func (fn1) arity() int { return 1 }

type fn2 func(float64, float64) float64

func (fn2) arity() int { return 2 }

// builtins maps callable names to their implementations. Lookup happens
// once, at parse time; the resolved function is stored in the call node.
//
// Naming follows common calculator conventions rather than Go's:
// ln is the natural logarithm and log is base 10.
var builtins = map[string]builtin{
	"sin":   fn1(math.Sin),
	"cos":   fn1(math.Cos),
	"tan":   fn1(math.Tan),
	"asin":  fn1(math.Asin),
	"acos":  fn1(math.Acos),
	"atan":  fn1(math.Atan),
	"sinh":  fn1(math.Sinh),
	"cosh":  fn1(math.Cosh),
	"tanh":  fn1(math.Tanh),
	"sqrt":  fn1(math.Sqrt),
	"abs":   fn1(math.Abs),
	"exp":   fn1(math.Exp),
	"ln":    fn1(math.Log),
	"log":   fn1(math.Log10),
	"log2":  fn1(math.Log2),
	"floor": fn1(math.Floor),
	"ceil":  fn1(math.Ceil),

	"pow":   fn2(math.Pow),
	"atan2": fn2(math.Atan2),
	"min":   fn2(math.Min),
	"max":   fn2(math.Max),
}
