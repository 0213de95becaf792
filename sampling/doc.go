// Package sampling turns distribution draws into populations,
// resampled means, and histogram-ready points.
//
// What:
//
//   - Population draws size independent variates from any
//     dist.Sampler.
//   - SampleMeans resamples a population with replacement and averages
//     each resample: the central-limit-theorem engine. Means of
//     samples of size m spread as σ/√m regardless of the population's
//     own shape.
//   - Histogram bins values into exactly `bins` (center, count)
//     points; Describe and DensityPoints summarize a data set and
//     overlay its kernel density curve.
//
// Determinism:
//
//   - Every random operation reads from one injectable *rand.Rand.
//     Defaults come from a fixed seed (WithSeed(0) and no option at
//     all both mean the same stable stream), so identical inputs
//     reproduce identical outputs on every platform. There are no
//     time-based sources.
//   - SampleMeans gives each resample its own derived substream, so
//     resample r never depends on how draws landed in resample r-1.
//
// Complexity:
//
//   - Population:    O(size) draws.
//   - SampleMeans:   O(numSamples·sampleSize).
//   - Histogram:     O(len(data) + bins).
//   - Describe:      O(n log n) for the order statistics.
//   - DensityPoints: O(n·len(data)) kernel evaluations.
//
// Errors:
//
//   - ErrNilSampler:      Population given a nil source.
//   - ErrBadSize:         a count parameter below its minimum.
//   - ErrEmptyPopulation: SampleMeans given nothing to resample.
//   - ErrBadBins:         Histogram bin count < 1.
//   - ErrBadBounds:       explicit bounds non-finite or min >= max.
//   - ErrNoData:          no usable values and no explicit bounds.
//
// Option constructors panic on impossible arguments (nil RNG); the
// operations themselves only ever return sentinel errors.
package sampling
