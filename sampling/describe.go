// Package sampling - descriptive statistics and density overlays.
package sampling

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/katalvlaran/mathviz/core"
)

// Summary is the five-number-plus-moments description of a data set.
// StdDev is the sample (n-1) standard deviation; quartiles use the
// R8 interpolation of the underlying statistics library.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
	Q1     float64
	Q3     float64
}

// Describe summarizes data. The input is copied before sorting, so the
// caller's slice is never reordered. Returns ErrNoData for an empty
// input.
func Describe(data []float64) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, ErrNoData
	}

	s := stats.Sample{Xs: append([]float64(nil), data...)}
	s.Sort()

	min, max := s.Bounds()
	return Summary{
		N:      len(data),
		Mean:   s.Mean(),
		StdDev: s.StdDev(),
		Min:    min,
		Max:    max,
		Median: s.Quantile(0.5),
		Q1:     s.Quantile(0.25),
		Q3:     s.Quantile(0.75),
	}, nil
}

// DensityPoints fits a Gaussian kernel density estimate to data and
// samples its curve at n evenly spaced x positions across the
// estimate's own support: the smooth overlay for a histogram of the
// same data. Bandwidth is the library's default (Scott's rule).
//
// Returns ErrNoData for empty data and ErrBadSize for n < 2 (a curve
// needs both endpoints).
func DensityPoints(data []float64, n int) ([]core.Point, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	if n < 2 {
		return nil, ErrBadSize
	}

	s := stats.Sample{Xs: append([]float64(nil), data...)}
	s.Sort()

	kde := &stats.KDE{Sample: s}
	lo, hi := kde.Bounds()

	step := (hi - lo) / float64(n-1)
	points := make([]core.Point, n)
	for i := range points {
		x := lo + float64(i)*step
		points[i] = core.Pt(x, kde.PDF(x))
	}

	return points, nil
}
