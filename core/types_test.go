// SPDX-License-Identifier: MIT
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathviz/core"
)

// TestPt verifies the Point constructor copies both coordinates.
func TestPt(t *testing.T) {
	p := core.Pt(1.5, -2.25)
	assert.Equal(t, 1.5, p.X, "X coordinate")
	assert.Equal(t, -2.25, p.Y, "Y coordinate")
}

// TestRange_Validate_Errors drives Validate through every rejection path.
func TestRange_Validate_Errors(t *testing.T) {
	cases := []struct {
		name string
		r    core.Range
		err  error
	}{
		{"MinGreaterThanMax", core.Range{Min: 1, Max: 0, Step: 0.1}, core.ErrInvalidRange},
		{"NaNMin", core.Range{Min: math.NaN(), Max: 1, Step: 0.1}, core.ErrInvalidRange},
		{"NaNMax", core.Range{Min: 0, Max: math.NaN(), Step: 0.1}, core.ErrInvalidRange},
		{"InfMax", core.Range{Min: 0, Max: math.Inf(1), Step: 0.1}, core.ErrInvalidRange},
		{"ZeroStep", core.Range{Min: 0, Max: 1, Step: 0}, core.ErrInvalidStep},
		{"NegativeStep", core.Range{Min: 0, Max: 1, Step: -0.5}, core.ErrInvalidStep},
		{"NaNStep", core.Range{Min: 0, Max: 1, Step: math.NaN()}, core.ErrInvalidStep},
		{"InfStep", core.Range{Min: 0, Max: 1, Step: math.Inf(1)}, core.ErrInvalidStep},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.r.Validate(), tc.err)
		})
	}
}

// TestRange_Validate_OK accepts degenerate but legal ranges, including Min == Max.
func TestRange_Validate_OK(t *testing.T) {
	assert.NoError(t, core.Range{Min: -5, Max: 5, Step: 0.5}.Validate())
	assert.NoError(t, core.Range{Min: 2, Max: 2, Step: 1}.Validate(), "point interval is legal")
}

// TestRange_Steps verifies sample counts for divisible, non-divisible,
// and degenerate intervals.
func TestRange_Steps(t *testing.T) {
	cases := []struct {
		name string
		r    core.Range
		want int
	}{
		{"ExactDivision", core.Range{Min: 0, Max: 1, Step: 0.25}, 5},
		{"InexactDivision", core.Range{Min: 0, Max: 1, Step: 0.3}, 5}, // 0, .3, .6, .9, 1(clamped)
		{"PointInterval", core.Range{Min: 3, Max: 3, Step: 1}, 1},
		{"TenthsOverUnit", core.Range{Min: 0, Max: 1, Step: 0.1}, 11},
		{"SymmetricTwenty", core.Range{Min: -10, Max: 10, Step: 0.5}, 41},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.r.Validate())
			assert.Equal(t, tc.want, tc.r.Steps())
		})
	}
}

// TestRange_At verifies positional sampling and the right-edge clamp.
func TestRange_At(t *testing.T) {
	r := core.Range{Min: 0, Max: 1, Step: 0.3}
	require.NoError(t, r.Validate())

	assert.Equal(t, 0.0, r.At(0))
	assert.InDelta(t, 0.3, r.At(1), 1e-15)
	assert.InDelta(t, 0.9, r.At(3), 1e-15)
	assert.Equal(t, 1.0, r.At(4), "overshoot must clamp to Max")
}

// TestRange_WalkCoversBothEdges is the iteration contract: walking
// indices 0..Steps()-1 starts at Min, ends exactly at Max, and never
// emits a duplicate position.
func TestRange_WalkCoversBothEdges(t *testing.T) {
	ranges := []core.Range{
		{Min: 0, Max: 1, Step: 0.1},
		{Min: -2, Max: 2, Step: 0.7},
		{Min: 1, Max: 1, Step: 5},
		{Min: -math.Pi, Max: math.Pi, Step: 0.01},
	}
	for _, r := range ranges {
		require.NoError(t, r.Validate())

		n := r.Steps()
		require.GreaterOrEqual(t, n, 1)
		assert.Equal(t, r.Min, r.At(0), "walk starts at Min")
		assert.Equal(t, r.Max, r.At(n-1), "walk ends at Max")
		for i := 1; i < n; i++ {
			assert.Greater(t, r.At(i), r.At(i-1),
				"positions must be strictly increasing (range %+v, i=%d)", r, i)
		}
	}
}
