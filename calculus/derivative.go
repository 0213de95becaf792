// Package calculus - numerical differentiation.
package calculus

import (
	"math"

	"github.com/katalvlaran/mathviz/core"
)

// Derivative estimates f'(x) with the symmetric difference quotient
// (f(x+h) - f(x-h)) / 2h.
//
// The symmetric form cancels the even error terms, so it is one order
// more accurate than the one-sided quotient at the same cost of two
// evaluations. Derivative is total: a nil f or a non-finite evaluation
// yields NaN rather than an error or panic.
func Derivative(f core.Func, x float64, opts ...Option) float64 {
	if f == nil {
		return math.NaN()
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := cfg.step

	return (f(x+h) - f(x-h)) / (2 * h)
}

// DerivativePoints samples the numeric derivative of f across r.
//
// Samples where the estimate is NaN or ±Inf are skipped, so the curve
// of a function with poles simply has gaps. Returns ErrNilFunc for a
// nil f and the core validation sentinels for a malformed range.
func DerivativePoints(f core.Func, r core.Range, opts ...Option) ([]core.Point, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := r.Steps()
	pts := make([]core.Point, 0, n)
	for i := 0; i < n; i++ {
		x := r.At(i)
		d := (f(x+cfg.step) - f(x-cfg.step)) / (2 * cfg.step)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			continue
		}
		pts = append(pts, core.Pt(x, d))
	}

	return pts, nil
}
