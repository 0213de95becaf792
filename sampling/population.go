// Package sampling - population generation and resampled means.
package sampling

import (
	"github.com/katalvlaran/mathviz/dist"
)

// Population draws size independent variates from s.
//
// Randomness comes from the configured stream (WithSeed / WithRand);
// with no options the fixed default stream is used, so repeated calls
// with the same arguments produce the same population.
//
// Returns ErrNilSampler for a nil source and ErrBadSize for size < 1.
func Population(s dist.Sampler, size int, opts ...Option) ([]float64, error) {
	if s == nil {
		return nil, ErrNilSampler
	}
	if size < 1 {
		return nil, ErrBadSize
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([]float64, size)
	for i := range out {
		out[i] = s.Rand(cfg.rng)
	}

	return out, nil
}

// SampleMeans resamples population with replacement numSamples times,
// sampleSize values per resample, and returns the mean of each
// resample. Whatever shape the population has, the means concentrate
// around its mean with spread σ/√sampleSize.
//
// Each resample runs on its own substream derived from the configured
// RNG, so raising numSamples extends the result without changing the
// means already produced for lower indices.
//
// Returns ErrEmptyPopulation for an empty population and ErrBadSize
// when sampleSize or numSamples is below 1.
func SampleMeans(population []float64, sampleSize, numSamples int, opts ...Option) ([]float64, error) {
	if len(population) == 0 {
		return nil, ErrEmptyPopulation
	}
	if sampleSize < 1 || numSamples < 1 {
		return nil, ErrBadSize
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(population)
	means := make([]float64, numSamples)
	for m := range means {
		rng := deriveRNG(cfg.rng, uint64(m))

		var sum float64
		for j := 0; j < sampleSize; j++ {
			sum += population[rng.Intn(n)]
		}
		means[m] = sum / float64(sampleSize)
	}

	return means, nil
}
