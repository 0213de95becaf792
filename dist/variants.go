// Package dist - one variant type per distribution family.
//
// The variant set is closed by construction: Points type-switches on
// Discrete, and the sampling engine accepts any Sampler. Parameters are
// plain exported fields in the gonum distuv manner; methods inherit the
// totality rules of the closed-form functions.
package dist

import (
	"math"
	"math/rand"
)

// Distribution is the common surface of every family. Prob is the
// density for continuous families and the mass for discrete ones.
type Distribution interface {
	Prob(x float64) float64
	CDF(x float64) float64
	Mean() float64
	Variance() float64
}

// Discrete marks integer-support families and bounds their enumeration.
type Discrete interface {
	Distribution

	// SupportMax is the largest k that Points plots; support is 0..SupportMax.
	SupportMax() int
}

// Sampler draws single variates. Implementations must derive all
// randomness from the supplied rng, never from package state, so a
// seeded *rand.Rand reproduces the stream exactly.
type Sampler interface {
	Rand(rng *rand.Rand) float64
}

// poissonSupportCap bounds plotted Poisson support at min(20, ceil(3λ)):
// twenty bars is where discrete charts stop being readable, and three
// lambdas cover the bulk of the mass for small rates.
const poissonSupportCap = 20

// maxDiscreteProbe guards the float→int conversions in the discrete
// Prob/CDF wrappers; probes beyond it are out of every plottable
// support anyway.
const maxDiscreteProbe = 1 << 30

// Normal is the N(Mu, Sigma²) family.
type Normal struct {
	Mu    float64
	Sigma float64
}

func (n Normal) Prob(x float64) float64 { return NormalPDF(x, n.Mu, n.Sigma) }
func (n Normal) CDF(x float64) float64  { return NormalCDF(x, n.Mu, n.Sigma) }
func (n Normal) Mean() float64          { return n.Mu }
func (n Normal) Variance() float64      { return n.Sigma * n.Sigma }

// Rand draws via the Box–Muller transform (cosine branch). Two uniforms
// per variate; the 1-U flip keeps the logarithm away from ln(0).
func (n Normal) Rand(rng *rand.Rand) float64 {
	u1, u2 := rng.Float64(), rng.Float64()
	z := math.Sqrt(-2*math.Log(1-u1)) * math.Cos(2*math.Pi*u2)

	return n.Mu + n.Sigma*z
}

// Binomial is the B(N, P) family: N trials with success probability P.
type Binomial struct {
	N int
	P float64
}

// Prob is the mass at integral x; non-integers carry zero mass.
func (b Binomial) Prob(x float64) float64 {
	if x != math.Trunc(x) || math.Abs(x) > maxDiscreteProbe {
		return 0
	}

	return BinomialPMF(int(x), b.N, b.P)
}

// CDF is P[X <= x]; the step function jumps at each integer.
func (b Binomial) CDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x < 0:
		return 0
	case x >= float64(b.N):
		return 1
	}

	return BinomialCDF(int(math.Floor(x)), b.N, b.P)
}

func (b Binomial) Mean() float64     { return float64(b.N) * b.P }
func (b Binomial) Variance() float64 { return float64(b.N) * b.P * (1 - b.P) }
func (b Binomial) SupportMax() int   { return b.N }

// Rand draws by running the N Bernoulli trials directly. O(N) per
// variate, which is exactly the experiment the histogram demos depict.
func (b Binomial) Rand(rng *rand.Rand) float64 {
	successes := 0
	for i := 0; i < b.N; i++ {
		if rng.Float64() < b.P {
			successes++
		}
	}

	return float64(successes)
}

// Poisson is the Pois(Lambda) family.
type Poisson struct {
	Lambda float64
}

// Prob is the mass at integral x; non-integers carry zero mass.
func (p Poisson) Prob(x float64) float64 {
	if x != math.Trunc(x) || math.Abs(x) > maxDiscreteProbe {
		return 0
	}

	return PoissonPMF(int(x), p.Lambda)
}

// CDF is P[X <= x]; the step function jumps at each integer.
func (p Poisson) CDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x < 0:
		return 0
	case x > maxDiscreteProbe:
		x = maxDiscreteProbe
	}

	return PoissonCDF(int(math.Floor(x)), p.Lambda)
}

func (p Poisson) Mean() float64     { return p.Lambda }
func (p Poisson) Variance() float64 { return p.Lambda }

// SupportMax caps plotted support at min(20, ceil(3·Lambda)).
func (p Poisson) SupportMax() int {
	v := 3 * p.Lambda
	if math.IsNaN(v) || v >= poissonSupportCap {
		return poissonSupportCap
	}
	k := int(math.Ceil(v))
	if k < 0 {
		return 0
	}

	return k
}

// Exponential is the Exp(Rate) family.
type Exponential struct {
	Rate float64
}

func (e Exponential) Prob(x float64) float64 { return ExponentialPDF(x, e.Rate) }
func (e Exponential) CDF(x float64) float64  { return ExponentialCDF(x, e.Rate) }
func (e Exponential) Mean() float64          { return 1 / e.Rate }
func (e Exponential) Variance() float64      { return 1 / (e.Rate * e.Rate) }

// Rand draws by inverting the CDF: -ln(1-U)/λ.
func (e Exponential) Rand(rng *rand.Rand) float64 {
	return -math.Log(1-rng.Float64()) / e.Rate
}

// Uniform is the continuous U[Min, Max] family.
type Uniform struct {
	Min float64
	Max float64
}

func (u Uniform) Prob(x float64) float64 {
	if !(u.Max > u.Min) {
		return math.NaN()
	}
	if x < u.Min || x > u.Max {
		return 0
	}

	return 1 / (u.Max - u.Min)
}

func (u Uniform) CDF(x float64) float64 {
	if !(u.Max > u.Min) {
		return math.NaN()
	}
	switch {
	case x < u.Min:
		return 0
	case x > u.Max:
		return 1
	default:
		return (x - u.Min) / (u.Max - u.Min)
	}
}

func (u Uniform) Mean() float64 { return (u.Min + u.Max) / 2 }

func (u Uniform) Variance() float64 {
	d := u.Max - u.Min

	return d * d / 12
}

// Rand scales one uniform draw onto [Min, Max).
func (u Uniform) Rand(rng *rand.Rand) float64 {
	return u.Min + (u.Max-u.Min)*rng.Float64()
}
