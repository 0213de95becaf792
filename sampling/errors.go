// Package sampling - sentinel errors for all sampling operations.
package sampling

import "errors"

var (
	// ErrNilSampler rejects a nil draw source.
	ErrNilSampler = errors.New("sampling: sampler must not be nil")

	// ErrBadSize rejects size, sampleSize, or numSamples below 1
	// (DensityPoints needs at least 2 grid points).
	ErrBadSize = errors.New("sampling: size must be at least the operation's minimum")

	// ErrEmptyPopulation rejects resampling from an empty population.
	ErrEmptyPopulation = errors.New("sampling: population must not be empty")

	// ErrBadBins rejects histogram bin counts below 1.
	ErrBadBins = errors.New("sampling: bins must be at least 1")

	// ErrBadBounds rejects non-finite bounds or min >= max.
	ErrBadBounds = errors.New("sampling: bounds must be finite with min < max")

	// ErrNoData signals that no usable values were supplied and no
	// explicit bounds rescue the call.
	ErrNoData = errors.New("sampling: data must contain at least one finite value")
)
