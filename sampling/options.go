// SPDX-License-Identifier: MIT
// Package: mathviz/sampling
//
// options.go — functional options shared by the sampling operations.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on impossible inputs
//     (nil RNG); data-dependent values such as histogram bounds are
//     validated by the operation and reported as sentinel errors.
//   • Omitting every option is fully deterministic: the default RNG
//     comes from the fixed seed policy in rng.go.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible experiments; seed 0 means the
//     fixed default stream, not the clock.
//   • WithRand shares one stream across calls: draws continue where
//     the previous operation stopped instead of restarting.
//   • WithBounds pins histogram axes, e.g. to keep bins comparable
//     across animation frames of a growing sample.
package sampling

import "math/rand"

// Option customizes a sampling call.
type Option func(*config)

type config struct {
	rng *rand.Rand

	hasBounds bool
	min, max  float64
}

func defaultConfig() config {
	return config{rng: rngFromSeed(0)}
}

// WithSeed reseeds the operation's RNG. Seed 0 selects the same fixed
// default stream as passing no option at all.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand injects a caller-owned RNG, typically to continue one
// stream across several operations. Panics on nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		// Fail fast: option constructors validate and panic.
		panic("sampling: WithRand(nil): rng must not be nil")
	}
	return func(c *config) {
		c.rng = rng
	}
}

// WithBounds fixes the histogram range instead of deriving it from the
// data extrema. Validation happens in Histogram, which reports
// ErrBadBounds for non-finite bounds or min >= max.
func WithBounds(min, max float64) Option {
	return func(c *config) {
		c.hasBounds = true
		c.min, c.max = min, max
	}
}
