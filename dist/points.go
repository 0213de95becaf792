// Package dist - plot-ready point generation.
package dist

import (
	"math"

	"github.com/katalvlaran/mathviz/core"
)

// Points renders a distribution into plot-ready samples.
//
// Continuous families sample Prob at every position of r, skipping
// NaN/±Inf values the way curve plotting does everywhere else.
// Discrete families enumerate their integer support 0..SupportMax with
// one point per value; r is not consulted for them, so a zero Range is
// fine. Returns ErrNilDistribution for a nil d and the core sentinels
// when a continuous family gets a malformed range.
func Points(d Distribution, r core.Range) ([]core.Point, error) {
	if d == nil {
		return nil, ErrNilDistribution
	}

	if disc, ok := d.(Discrete); ok {
		return discretePoints(disc), nil
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	n := r.Steps()
	pts := make([]core.Point, 0, n)
	for i := 0; i < n; i++ {
		x := r.At(i)
		y := d.Prob(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, core.Pt(x, y))
	}

	return pts, nil
}

// discretePoints enumerates the mass function over 0..SupportMax.
func discretePoints(d Discrete) []core.Point {
	top := d.SupportMax()
	if top < 0 {
		return nil
	}
	pts := make([]core.Point, 0, top+1)
	for k := 0; k <= top; k++ {
		y := d.Prob(float64(k))
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, core.Pt(float64(k), y))
	}

	return pts
}
