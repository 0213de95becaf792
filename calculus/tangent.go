// Package calculus - tangent-line construction.
package calculus

import (
	"math"

	"github.com/katalvlaran/mathviz/core"
)

// Tangent is the tangent to a curve at one point, ready for plotting.
type Tangent struct {
	// At is the touch point (x0, f(x0)).
	At core.Point

	// Slope is the numeric derivative f'(x0).
	Slope float64

	// Points samples y = f(x0) + Slope·(x - x0) across the requested
	// range. Empty when the touch point or slope is not finite.
	Points []core.Point
}

// TangentLine builds the tangent to f at x0, sampled across r.
//
// When f(x0) or the slope estimate is NaN/±Inf there is no line to
// draw; the returned Tangent carries the offending values so callers
// can report them, and Points stays empty. That situation is an
// ordinary outcome of probing a pole, not an error.
func TangentLine(f core.Func, x0 float64, r core.Range, opts ...Option) (Tangent, error) {
	if f == nil {
		return Tangent{}, ErrNilFunc
	}
	if err := r.Validate(); err != nil {
		return Tangent{}, err
	}

	y0 := f(x0)
	slope := Derivative(f, x0, opts...)

	tan := Tangent{At: core.Pt(x0, y0), Slope: slope}
	if math.IsNaN(y0) || math.IsInf(y0, 0) || math.IsNaN(slope) || math.IsInf(slope, 0) {
		return tan, nil
	}

	n := r.Steps()
	tan.Points = make([]core.Point, 0, n)
	for i := 0; i < n; i++ {
		x := r.At(i)
		tan.Points = append(tan.Points, core.Pt(x, y0+slope*(x-x0)))
	}

	return tan, nil
}
