// Package core defines the shared geometric and sampling primitives
// every mathviz package builds on: Point, Range, and Func.
//
// This file declares Point, Pt, Func, Range with its Validate/Steps/At
// methods, and the sentinel errors.
//
// Errors:
//
//	ErrInvalidRange - bound is NaN/±Inf, or Min > Max.
//	ErrInvalidStep  - step is not a positive finite number.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for range validation.
var (
	// ErrInvalidRange indicates Min > Max or a non-finite bound.
	ErrInvalidRange = errors.New("core: range bounds must be finite with min <= max")

	// ErrInvalidStep indicates a non-positive or non-finite step.
	ErrInvalidStep = errors.New("core: range step must be positive and finite")
)

// stepTol guards Steps against floating-point noise: an integral
// (Max-Min)/Step ratio that lands a hair above the integer must not
// produce an extra duplicate sample at the clamped right edge.
const stepTol = 1e-9

// Point is a single plotted sample. It has no identity beyond its
// position; generators allocate result slices fresh on every call.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Func is a scalar function of one variable.
//
// Implementations must be pure and total: evaluation failures (domain
// errors, division by zero) surface as NaN or ±Inf, never as a panic.
// Point generators skip non-finite values, so a partially defined Func
// simply produces a curve with gaps.
type Func func(x float64) float64

// Range describes a closed sampling interval [Min, Max] walked in
// increments of Step. The zero value is invalid; call Validate before
// iterating.
type Range struct {
	Min, Max, Step float64
}

// Validate reports whether the range is well-formed.
//
// Returns ErrInvalidRange when a bound is NaN/±Inf or Min > Max, and
// ErrInvalidStep when Step is not a positive finite value. Bounds are
// checked before the step so callers see the dominant problem first.
func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsInf(r.Min, 0) ||
		math.IsNaN(r.Max) || math.IsInf(r.Max, 0) || r.Min > r.Max {
		return ErrInvalidRange
	}
	if math.IsNaN(r.Step) || math.IsInf(r.Step, 0) || r.Step <= 0 {
		return ErrInvalidStep
	}

	return nil
}

// Steps returns the number of samples the range yields:
// ceil((Max-Min)/Step) + 1, so both edges are always included.
//
// The ratio is nudged by stepTol before rounding up; without the nudge
// an exactly divisible interval such as [0,1] step 0.1 can report one
// extra step and emit the clamped right edge twice.
//
// The result is meaningful only for a validated range.
func (r Range) Steps() int {
	ratio := (r.Max - r.Min) / r.Step

	return int(math.Ceil(ratio-stepTol)) + 1
}

// At returns the i-th sample position Min + i*Step, clamped to Max.
//
// Index-based stepping keeps long walks free of accumulated
// floating-point drift, and the clamp guarantees the final sample sits
// exactly on the right edge even when Step does not divide the
// interval.
func (r Range) At(i int) float64 {
	x := r.Min + float64(i)*r.Step
	if x > r.Max {
		return r.Max
	}

	return x
}
