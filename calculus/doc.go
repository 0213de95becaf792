// Package calculus provides numerical differentiation and curve
// sampling for scalar functions.
//
// What:
//
//   - Derivative estimates f'(x) by the symmetric difference quotient
//     (f(x+h) - f(x-h)) / 2h.
//   - FunctionPoints and DerivativePoints sample a function (or its
//     derivative) over a validated core.Range, silently skipping
//     samples where the value is NaN or ±Inf so curves with poles or
//     domain gaps plot cleanly.
//   - TangentLine builds the tangent y = f(x0) + f'(x0)·(x - x0) as a
//     ready-to-plot segment together with the touch point and slope.
//
// Why:
//
//   - Visual calculus: draw a curve, its derivative, and a movable
//     tangent from one parsed formula.
//   - No symbolic machinery: everything works on opaque core.Func
//     values, so parsed expressions and hand-written closures mix
//     freely.
//
// Complexity:
//
//   - Derivative:       O(1) time (two evaluations), O(1) space.
//   - *Points, Tangent: O(r.Steps()) time and space.
//
// Options:
//
//   - WithStep(h): difference step, default 1e-8.
//
// Errors:
//
//   - ErrNilFunc: a nil function was supplied where samples are needed.
//   - core.ErrInvalidRange, core.ErrInvalidStep: malformed interval.
//
// Derivative itself is total: it returns NaN near points where f is
// undefined instead of failing. Only the Range-taking helpers return
// errors, and only for invalid inputs, never for awkward functions.
package calculus
