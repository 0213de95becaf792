// Package sampling - fixed-bin histogram points.
package sampling

import (
	"math"

	"github.com/katalvlaran/mathviz/core"
)

// Histogram bins data into exactly bins points with x at the bin
// center and y the count of values that landed there.
//
// The range defaults to the finite data extrema; WithBounds(min, max)
// fixes it explicitly. Values strictly outside the range, and any NaN,
// are silently dropped. A value exactly on max counts into the last
// bin. When every value is identical and no bounds are given, the
// range widens to a unit interval centered on that value so the single
// bar still has width.
//
// With explicit bounds an empty data set is valid and yields all-zero
// counts. Errors: ErrBadBins (bins < 1), ErrBadBounds (non-finite or
// min >= max), ErrNoData (no finite values and no bounds).
func Histogram(data []float64, bins int, opts ...Option) ([]core.Point, error) {
	if bins < 1 {
		return nil, ErrBadBins
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var min, max float64
	if cfg.hasBounds {
		min, max = cfg.min, cfg.max
		if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) || min >= max {
			return nil, ErrBadBounds
		}
	} else {
		var ok bool
		if min, max, ok = finiteExtrema(data); !ok {
			return nil, ErrNoData
		}
		if min == max {
			min, max = min-0.5, max+0.5
		}
	}

	width := (max - min) / float64(bins)
	counts := make([]float64, bins)
	for _, v := range data {
		if math.IsNaN(v) || v < min || v > max {
			continue
		}
		idx := int((v - min) / width)
		if idx >= bins {
			// v == max, or rounding at the last edge.
			idx = bins - 1
		}
		counts[idx]++
	}

	points := make([]core.Point, bins)
	for i := range points {
		points[i] = core.Pt(min+(float64(i)+0.5)*width, counts[i])
	}

	return points, nil
}

// finiteExtrema scans data for its smallest and largest finite values;
// ok is false when none exist.
func finiteExtrema(data []float64) (min, max float64, ok bool) {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !ok {
			min, max, ok = v, v, true
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return min, max, ok
}
