// SPDX-License-Identifier: MIT
// Package: mathviz/expr
//
// options.go — functional options for Parse.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Parse itself never panics on user-supplied sources.
//   • No hidden globals; every knob flows through config.
//
// AI-Hints:
//   • WithConst rebinds a..e only; pi and the variable x are grammar,
//     not knobs.
//   • e defaults to Euler's number, so "e^x" works out of the box;
//     rebind it only when a formula treats e as a free coefficient.
//   • Any float64 is a legal binding, NaN included; it propagates
//     through Eval by IEEE-754 rules.
package expr

import (
	"fmt"
	"math"
)

// Option customizes parsing by mutating a config before the source is
// scanned. Applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config carries the per-Parse constant bindings.
type config struct {
	consts map[string]float64
}

// defaultConfig returns the stock bindings: a..d are 1 so formulas like
// "a*sin(b*x)" evaluate out of the box, and e is Euler's number.
// pi is not listed here because it is not overridable.
func defaultConfig() config {
	return config{consts: map[string]float64{
		"a": 1,
		"b": 1,
		"c": 1,
		"d": 1,
		"e": math.E,
	}}
}

// WithConst binds one of the tunable constants a, b, c, d, e to a value.
// Panics on any other name to surface programmer error early; pi and the
// variable x are deliberately not rebindable.
func WithConst(name string, value float64) Option {
	if len(name) != 1 || name[0] < 'a' || name[0] > 'e' {
		// Fail fast: option constructors validate and panic.
		panic(fmt.Sprintf("expr: WithConst(%q): constant must be one of a, b, c, d, e", name))
	}
	return func(c *config) {
		c.consts[name] = value
	}
}
