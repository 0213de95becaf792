// Package dist evaluates probability distributions: closed-form
// densities, distribution functions, and plot-ready point sets for the
// Normal, Binomial, Poisson, Exponential, and Uniform families.
//
// What:
//
//   - Stateless formulas: NormalPDF/NormalCDF (via the Abramowitz &
//     Stegun Erf approximation), BinomialPMF/BinomialCDF,
//     PoissonPMF/PoissonCDF, ExponentialPDF/ExponentialCDF.
//   - One variant type per family: Normal{Mu, Sigma}, Binomial{N, P},
//     Poisson{Lambda}, Exponential{Rate}, Uniform{Min, Max}. Each
//     implements Distribution (Prob, CDF, Mean, Variance); the integer
//     families additionally implement Discrete (SupportMax), and the
//     population families implement Sampler (Rand).
//   - Points renders any Distribution into core.Points: continuous
//     families sample Prob across a core.Range; discrete families
//     enumerate their integer support 0..SupportMax, one point per
//     value, ignoring the range.
//
// Why:
//
//   - Plotting: PDF/PMF curves and cumulative overlays from one value.
//   - Sampling: the Sampler hooks feed the Monte-Carlo engine without
//     the engine knowing family internals.
//
// Complexity:
//
//   - Formulas: O(1) except BinomialPMF's O(min(k, n-k)) coefficient
//     loop and PoissonPMF's O(k) factorial.
//   - Points: O(r.Steps()) continuous, O(SupportMax) discrete.
//
// All formulas are total: out-of-support arguments have zero
// density/mass, and invalid parameters (Sigma <= 0, P outside [0,1],
// negative Lambda or Rate) yield NaN rather than an error or panic.
// The only sentinel is ErrNilDistribution, from Points, alongside the
// core range sentinels for malformed continuous sampling intervals.
//
// Numeric limits: PoissonPMF keeps the direct λ^k/k! formula, which
// degrades past k ≈ 170 where float64 factorials overflow; SupportMax
// caps plotted support at min(20, ceil(3λ)), far below that edge.
package dist
