// Package expr - the compiled expression tree.
//
// Node kinds form a closed set: literal, variable, negate, binary, and
// the two call shapes. Dispatch happens through the node interface, so
// evaluation performs no name lookups and no allocations.
package expr

import "math"

// node is the sealed interface every tree node implements.
type node interface {
	// eval computes the node's value at the given x.
	// Implementations are total: they return NaN/±Inf, never panic.
	eval(x float64) float64
}

// literal is a numeric leaf. Named constants (pi, a..e) fold into
// literals at parse time.
type literal struct {
	val float64
}

func (n literal) eval(float64) float64 { return n.val }

// variable is the single free variable x.
type variable struct{}

func (variable) eval(x float64) float64 { return x }

// negate flips the sign of its operand. A leading '+' never builds a
// node; the parser returns the operand unchanged.
type negate struct {
	operand node
}

func (n negate) eval(x float64) float64 { return -n.operand.eval(x) }

// binary applies one of + - * / ^ to two subtrees.
// Division follows IEEE-754: x/0 is ±Inf, 0/0 is NaN.
type binary struct {
	op          rune
	left, right node
}

func (n binary) eval(x float64) float64 {
	l, r := n.left.eval(x), n.right.eval(x)
	switch n.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	default: // '^', the only remaining operator the parser emits
		return math.Pow(l, r)
	}
}

// call1 invokes a one-argument builtin resolved at parse time.
type call1 struct {
	fn  func(float64) float64
	arg node
}

func (n call1) eval(x float64) float64 { return n.fn(n.arg.eval(x)) }

// call2 invokes a two-argument builtin resolved at parse time.
type call2 struct {
	fn   func(float64, float64) float64
	a, b node
}

func (n call2) eval(x float64) float64 { return n.fn(n.a.eval(x), n.b.eval(x)) }
