// Package core defines the shared plotting primitives used by every
// mathviz package: the Point sample, the Range sampling window, and the
// Func scalar-function type.
//
// What:
//
//   - Point is a single plotted sample (x, y); values are produced fresh
//     on every recomputation and owned by the caller.
//   - Range describes a closed interval [Min, Max] walked in steps of
//     Step; Steps and At implement the canonical sampling loop shared by
//     curve, distribution and tangent generators.
//   - Func is a scalar function of one variable. Implementations must be
//     total: return NaN on domain errors, never panic.
//
// Why:
//
//   - Every generator in calculus, dist, signal and sampling speaks the
//     same currency, so chart-facing callers receive plain point slices
//     with no package-specific wrappers.
//
// Invariants:
//
//   - Range.Validate enforces Min <= Max and Step > 0, all finite.
//   - At(i) is clamped to Max for the final sample, so a sampled curve
//     always ends exactly at the requested right edge even when the step
//     does not divide the interval.
//
// Errors:
//
//   - ErrInvalidRange: Min > Max, or a bound is NaN/±Inf.
//   - ErrInvalidStep: Step <= 0, or Step is NaN/±Inf.
package core
