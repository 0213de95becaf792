// Package dist - closed-form densities and distribution functions.
//
// Every function here is total. Zero density/mass outside the support,
// NaN for parameters outside the family's domain; nothing errors and
// nothing panics, so the formulas can run inside tight plotting loops
// with no error plumbing.
package dist

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// NormalPDF evaluates the N(mean, stdDev²) density at x.
// stdDev must be positive; otherwise the result is NaN.
func NormalPDF(x, mean, stdDev float64) float64 {
	if !(stdDev > 0) {
		return math.NaN()
	}

	z := (x - mean) / stdDev

	return math.Exp(-z*z/2) / (stdDev * math.Sqrt(2*math.Pi))
}

// NormalCDF evaluates the N(mean, stdDev²) distribution function at x,
// built on Erf. stdDev must be positive; otherwise NaN.
func NormalCDF(x, mean, stdDev float64) float64 {
	if !(stdDev > 0) {
		return math.NaN()
	}

	return 0.5 * (1 + Erf((x-mean)/(stdDev*math.Sqrt2)))
}

// BinomialPMF evaluates P[X = k] for X ~ B(n, p).
//
// The binomial coefficient accumulates multiplicatively over the
// shorter symmetric half, so n well into the hundreds works without
// factorial overflow. k outside 0..n carries zero mass; n < 0 or p
// outside [0, 1] yields NaN.
func BinomialPMF(k, n int, p float64) float64 {
	if n < 0 || math.IsNaN(p) || p < 0 || p > 1 {
		return math.NaN()
	}
	if k < 0 || k > n {
		return 0
	}

	m := k
	if n-k < m {
		m = n - k
	}
	coef := 1.0
	for i := 1; i <= m; i++ {
		coef *= float64(n-m+i) / float64(i)
	}

	return coef * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
}

// BinomialCDF evaluates P[X <= k] for X ~ B(n, p) through the
// regularized incomplete beta function: I_{1-p}(n-k, k+1).
func BinomialCDF(k, n int, p float64) float64 {
	if n < 0 || math.IsNaN(p) || p < 0 || p > 1 {
		return math.NaN()
	}
	if k < 0 {
		return 0
	}
	if k >= n {
		return 1
	}

	return mathext.RegIncBeta(float64(n-k), float64(k+1), 1-p)
}

// factorial returns k! as a float64. Overflows to +Inf for k > 170.
func factorial(k int) float64 {
	f := 1.0
	for i := 2; i <= k; i++ {
		f *= float64(i)
	}

	return f
}

// PoissonPMF evaluates P[X = k] for X ~ Pois(lambda) with the direct
// formula λ^k·e^(-λ)/k!.
//
// Past k ≈ 170 both λ^k and k! leave float64 range and the quotient
// degrades to 0 or NaN; callers bound k (SupportMax stays at 20 or
// less). Negative k carries zero mass; negative or NaN lambda is NaN.
func PoissonPMF(k int, lambda float64) float64 {
	if math.IsNaN(lambda) || lambda < 0 {
		return math.NaN()
	}
	if k < 0 {
		return 0
	}

	return math.Exp(-lambda) * math.Pow(lambda, float64(k)) / factorial(k)
}

// PoissonCDF evaluates P[X <= k] for X ~ Pois(lambda) through the
// regularized upper incomplete gamma function: Q(k+1, λ).
func PoissonCDF(k int, lambda float64) float64 {
	if math.IsNaN(lambda) || lambda < 0 {
		return math.NaN()
	}
	if k < 0 {
		return 0
	}

	return mathext.GammaIncRegComp(float64(k+1), lambda)
}

// ExponentialPDF evaluates the Exp(lambda) density λ·e^(-λx) at x.
// Zero for x < 0; lambda must be positive, otherwise NaN.
func ExponentialPDF(x, lambda float64) float64 {
	if !(lambda > 0) {
		return math.NaN()
	}
	if x < 0 {
		return 0
	}

	return lambda * math.Exp(-lambda*x)
}

// ExponentialCDF evaluates the Exp(lambda) distribution function
// 1-e^(-λx) at x. Zero for x < 0; lambda must be positive, else NaN.
func ExponentialCDF(x, lambda float64) float64 {
	if !(lambda > 0) {
		return math.NaN()
	}
	if x < 0 {
		return 0
	}

	return 1 - math.Exp(-lambda*x)
}
