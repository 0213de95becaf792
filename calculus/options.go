// SPDX-License-Identifier: MIT
// Package: mathviz/calculus
//
// options.go — functional options for the differentiation helpers.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     the numeric routines themselves never panic.
//
// AI-Hints:
//   • The default h=1e-8 balances truncation against roundoff for
//     smooth curves at plotting accuracy; leave it alone in charts.
//   • A coarse WithStep (0.1, 0.5) makes the truncation term visible,
//     useful when demonstrating how the difference quotient converges.
package calculus

import (
	"fmt"
	"math"
)

// defaultStep is the symmetric-difference step h. Small enough that the
// truncation error vanishes for smooth curves at plotting accuracy,
// large enough that x±h still differ in float64 for |x| up to ~1e7.
const defaultStep = 1e-8

// Option customizes a differentiation call.
type Option func(*config)

type config struct {
	step float64
}

func defaultConfig() config {
	return config{step: defaultStep}
}

// WithStep overrides the difference step h. Panics unless h is a
// positive finite number.
func WithStep(h float64) Option {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		// Fail fast: option constructors validate and panic.
		panic(fmt.Sprintf("calculus: WithStep(%v): step must be positive and finite", h))
	}
	return func(c *config) {
		c.step = h
	}
}
