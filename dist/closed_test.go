// SPDX-License-Identifier: MIT
// Package dist_test cross-validates the closed forms against the gonum
// distuv implementations wherever both exist.
package dist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/mathviz/dist"
)

// TestNormalPDF_Reference pins the standard normal peak value and
// sweeps against the distuv density.
func TestNormalPDF_Reference(t *testing.T) {
	assert.InDelta(t, 0.3989422804014327, dist.NormalPDF(0, 0, 1), 1e-12, "peak 1/sqrt(2*pi)")

	oracle := distuv.Normal{Mu: 1.5, Sigma: 2}
	for x := -6.0; x <= 9.0; x += 0.25 {
		assert.InDelta(t, oracle.Prob(x), dist.NormalPDF(x, 1.5, 2), 1e-12, "at x=%v", x)
	}
}

// TestNormalPDF_IntegratesToOne sums the density over ±6σ.
func TestNormalPDF_IntegratesToOne(t *testing.T) {
	const h = 0.001
	sum := 0.0
	for x := -6.0; x <= 6.0; x += h {
		sum += dist.NormalPDF(x, 0, 1) * h
	}
	assert.InDelta(t, 1, sum, 1e-3)
}

// TestNormalCDF_Reference checks the ½ midpoint and the distuv sweep
// within the Erf approximation band.
func TestNormalCDF_Reference(t *testing.T) {
	assert.InDelta(t, 0.5, dist.NormalCDF(0, 0, 1), 1.5e-7)
	assert.InDelta(t, 0.5, dist.NormalCDF(-2, -2, 3), 1.5e-7)

	oracle := distuv.Normal{Mu: 0, Sigma: 1}
	prev := -1.0
	for x := -4.0; x <= 4.0; x += 0.1 {
		got := dist.NormalCDF(x, 0, 1)
		assert.InDelta(t, oracle.CDF(x), got, 1e-6, "at x=%v", x)
		assert.GreaterOrEqual(t, got, prev, "monotone at x=%v", x)
		prev = got
	}
}

// TestNormal_InvalidParams verifies NaN totality.
func TestNormal_InvalidParams(t *testing.T) {
	assert.True(t, math.IsNaN(dist.NormalPDF(0, 0, 0)))
	assert.True(t, math.IsNaN(dist.NormalPDF(0, 0, -1)))
	assert.True(t, math.IsNaN(dist.NormalCDF(0, 0, 0)))
	assert.True(t, math.IsNaN(dist.NormalCDF(1, 0, math.NaN())))
}

// TestBinomialPMF_Reference sweeps B(20, 0.3) against distuv and checks
// full-mass conservation.
func TestBinomialPMF_Reference(t *testing.T) {
	const (
		n = 20
		p = 0.3
	)
	oracle := distuv.Binomial{N: n, P: p}

	sum := 0.0
	for k := 0; k <= n; k++ {
		mass := dist.BinomialPMF(k, n, p)
		assert.InDelta(t, oracle.Prob(float64(k)), mass, 1e-10, "at k=%d", k)
		sum += mass
	}
	assert.InDelta(t, 1, sum, 1e-12, "total mass")
}

// TestBinomialPMF_Support: zero mass outside 0..n, NaN for bad params.
func TestBinomialPMF_Support(t *testing.T) {
	assert.Equal(t, 0.0, dist.BinomialPMF(-1, 10, 0.5))
	assert.Equal(t, 0.0, dist.BinomialPMF(11, 10, 0.5))
	assert.True(t, math.IsNaN(dist.BinomialPMF(1, -1, 0.5)))
	assert.True(t, math.IsNaN(dist.BinomialPMF(1, 10, -0.1)))
	assert.True(t, math.IsNaN(dist.BinomialPMF(1, 10, 1.1)))

	// Degenerate p: all mass at one end.
	assert.Equal(t, 1.0, dist.BinomialPMF(0, 10, 0))
	assert.Equal(t, 1.0, dist.BinomialPMF(10, 10, 1))
}

// TestBinomialCDF_Reference checks the incomplete-beta CDF against the
// running PMF sum and distuv.
func TestBinomialCDF_Reference(t *testing.T) {
	const (
		n = 15
		p = 0.42
	)
	oracle := distuv.Binomial{N: n, P: p}

	run := 0.0
	for k := 0; k < n; k++ {
		run += dist.BinomialPMF(k, n, p)
		got := dist.BinomialCDF(k, n, p)
		assert.InDelta(t, run, got, 1e-10, "partial sum at k=%d", k)
		assert.InDelta(t, oracle.CDF(float64(k)), got, 1e-10, "distuv at k=%d", k)
	}
	assert.Equal(t, 1.0, dist.BinomialCDF(n, n, p), "terminal value")
	assert.Equal(t, 0.0, dist.BinomialCDF(-1, n, p))
}

// TestPoissonPMF_Reference pins PMF(0) = e^-λ and sweeps distuv.
func TestPoissonPMF_Reference(t *testing.T) {
	for _, lambda := range []float64{0.5, 1, 4, 9} {
		assert.Equal(t, math.Exp(-lambda), dist.PoissonPMF(0, lambda), "PMF(0) at λ=%v", lambda)

		oracle := distuv.Poisson{Lambda: lambda}
		for k := 0; k <= 25; k++ {
			assert.InDelta(t, oracle.Prob(float64(k)), dist.PoissonPMF(k, lambda), 1e-10,
				"λ=%v k=%d", lambda, k)
		}
	}
}

// TestPoissonPMF_PartialSums verifies the partial sums grow toward 1
// from below.
func TestPoissonPMF_PartialSums(t *testing.T) {
	const lambda = 3.0

	sum := 0.0
	for k := 0; k <= 40; k++ {
		sum += dist.PoissonPMF(k, lambda)
		assert.Less(t, sum, 1+1e-12, "never exceeds 1 at k=%d", k)
	}
	assert.InDelta(t, 1, sum, 1e-9, "tail exhausted by k=40")

	assert.Equal(t, 0.0, dist.PoissonPMF(-1, lambda))
	assert.True(t, math.IsNaN(dist.PoissonPMF(2, -1)))
}

// TestPoissonCDF_Reference checks the incomplete-gamma CDF.
func TestPoissonCDF_Reference(t *testing.T) {
	const lambda = 2.5
	oracle := distuv.Poisson{Lambda: lambda}

	run := 0.0
	prev := 0.0
	for k := 0; k <= 20; k++ {
		run += dist.PoissonPMF(k, lambda)
		got := dist.PoissonCDF(k, lambda)
		assert.InDelta(t, run, got, 1e-10, "partial sum at k=%d", k)
		assert.InDelta(t, oracle.CDF(float64(k)), got, 1e-10, "distuv at k=%d", k)
		assert.GreaterOrEqual(t, got, prev, "monotone at k=%d", k)
		prev = got
	}
	assert.InDelta(t, 1, dist.PoissonCDF(60, lambda), 1e-12, "terminal value")
	assert.Equal(t, 1.0, dist.PoissonCDF(5, 0), "λ=0 has all mass at 0")
}

// TestExponential_Reference covers PDF/CDF closed forms vs distuv.
func TestExponential_Reference(t *testing.T) {
	const rate = 1.5
	oracle := distuv.Exponential{Rate: rate}

	assert.Equal(t, 0.0, dist.ExponentialPDF(-0.5, rate), "no mass left of 0")
	assert.Equal(t, 0.0, dist.ExponentialCDF(-0.5, rate))
	assert.Equal(t, rate, dist.ExponentialPDF(0, rate), "density starts at λ")

	for x := 0.0; x <= 5.0; x += 0.1 {
		assert.InDelta(t, oracle.Prob(x), dist.ExponentialPDF(x, rate), 1e-12, "PDF at x=%v", x)
		assert.InDelta(t, oracle.CDF(x), dist.ExponentialCDF(x, rate), 1e-12, "CDF at x=%v", x)
	}

	assert.True(t, math.IsNaN(dist.ExponentialPDF(1, 0)))
	assert.True(t, math.IsNaN(dist.ExponentialCDF(1, -2)))
}
