// Package calculus - curve sampling.
package calculus

import (
	"math"

	"github.com/katalvlaran/mathviz/core"
)

// FunctionPoints samples f across r into plot-ready points.
//
// Positions where f returns NaN or ±Inf are skipped rather than
// reported: a curve such as ln(x) over [-1, 1] comes back with its
// undefined left half simply absent. The slice is freshly allocated on
// every call and holds at most r.Steps() points.
//
// Returns ErrNilFunc for a nil f and the core validation sentinels for
// a malformed range.
func FunctionPoints(f core.Func, r core.Range) ([]core.Point, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	n := r.Steps()
	pts := make([]core.Point, 0, n)
	for i := 0; i < n; i++ {
		x := r.At(i)
		y := f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, core.Pt(x, y))
	}

	return pts, nil
}
