package sampling_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathviz/dist"
	"github.com/katalvlaran/mathviz/sampling"
)

// TestPopulation_Validation rejects nil samplers and non-positive
// sizes with sentinels.
func TestPopulation_Validation(t *testing.T) {
	pop, err := sampling.Population(nil, 10)
	assert.Nil(t, pop)
	assert.ErrorIs(t, err, sampling.ErrNilSampler)

	for _, size := range []int{0, -3} {
		pop, err = sampling.Population(dist.Uniform{Min: 0, Max: 1}, size)
		assert.Nil(t, pop)
		assert.ErrorIs(t, err, sampling.ErrBadSize, "size=%d", size)
	}
}

// TestPopulation_Determinism reproduces the same draws for the same
// seed, including the seed-0 default policy.
func TestPopulation_Determinism(t *testing.T) {
	n := dist.Normal{Mu: 5, Sigma: 2}

	a, err := sampling.Population(n, 1000, sampling.WithSeed(42))
	require.NoError(t, err)
	require.Len(t, a, 1000)

	b, err := sampling.Population(n, 1000, sampling.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := sampling.Population(n, 1000, sampling.WithSeed(43))
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seeds diverge")

	def, err := sampling.Population(n, 1000)
	require.NoError(t, err)
	zero, err := sampling.Population(n, 1000, sampling.WithSeed(0))
	require.NoError(t, err)
	assert.Equal(t, def, zero, "no option and seed 0 share one stream")
}

// TestPopulation_SharedStreamContinues shows WithRand threading one
// stream across calls: two halves concatenate to one seeded run.
func TestPopulation_SharedStreamContinues(t *testing.T) {
	u := dist.Uniform{Min: 0, Max: 1}

	rng := rand.New(rand.NewSource(7))
	first, err := sampling.Population(u, 50, sampling.WithRand(rng))
	require.NoError(t, err)
	second, err := sampling.Population(u, 50, sampling.WithRand(rng))
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "the stream advances between calls")

	whole, err := sampling.Population(u, 100, sampling.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, whole[:50], first)
	assert.Equal(t, whole[50:], second)
}

// TestPopulation_EmpiricalMoments draws a large exponential population
// and checks it against the family's closed-form moments.
func TestPopulation_EmpiricalMoments(t *testing.T) {
	e := dist.Exponential{Rate: 2}

	pop, err := sampling.Population(e, 100_000, sampling.WithSeed(5))
	require.NoError(t, err)

	mean, variance := moments(pop)
	assert.InDelta(t, e.Mean(), mean, 0.02)
	assert.InDelta(t, e.Variance(), variance, 0.025)
}

// TestWithRand_NilPanics keeps the fail-fast option contract.
func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { sampling.WithRand(nil) })
}

// TestSampleMeans_Validation covers the empty-population and bad-size
// sentinels, population checked first.
func TestSampleMeans_Validation(t *testing.T) {
	means, err := sampling.SampleMeans(nil, 0, 0)
	assert.Nil(t, means)
	assert.ErrorIs(t, err, sampling.ErrEmptyPopulation)

	pop := []float64{1, 2, 3}
	cases := []struct{ sampleSize, numSamples int }{
		{0, 5},
		{-1, 5},
		{5, 0},
		{5, -2},
	}
	for _, tc := range cases {
		means, err = sampling.SampleMeans(pop, tc.sampleSize, tc.numSamples)
		assert.Nil(t, means)
		assert.ErrorIs(t, err, sampling.ErrBadSize, "sampleSize=%d numSamples=%d", tc.sampleSize, tc.numSamples)
	}
}

// TestSampleMeans_ConstantPopulation averages a constant to itself,
// exactly.
func TestSampleMeans_ConstantPopulation(t *testing.T) {
	means, err := sampling.SampleMeans([]float64{4, 4, 4}, 30, 50)
	require.NoError(t, err)
	require.Len(t, means, 50)

	for i, m := range means {
		assert.Equal(t, 4.0, m, "mean %d", i)
	}
}

// TestSampleMeans_SingleDrawMeans with sampleSize 1 must reproduce
// population values verbatim.
func TestSampleMeans_SingleDrawMeans(t *testing.T) {
	pop := []float64{3, 7}

	means, err := sampling.SampleMeans(pop, 1, 200, sampling.WithSeed(2))
	require.NoError(t, err)

	for i, m := range means {
		assert.True(t, m == 3 || m == 7, "mean %d = %v", i, m)
	}
}

// TestSampleMeans_PrefixStable keeps early resamples identical when
// more are requested: each resample runs on its own substream.
func TestSampleMeans_PrefixStable(t *testing.T) {
	pop := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	short, err := sampling.SampleMeans(pop, 5, 10, sampling.WithSeed(3))
	require.NoError(t, err)
	long, err := sampling.SampleMeans(pop, 5, 25, sampling.WithSeed(3))
	require.NoError(t, err)

	assert.Equal(t, short, long[:10])
}

// TestSampleMeans_CentralLimitTheorem resamples a skewed population
// and checks that the means concentrate at the population mean with
// spread σ/√sampleSize.
func TestSampleMeans_CentralLimitTheorem(t *testing.T) {
	pop, err := sampling.Population(dist.Exponential{Rate: 1}, 20_000, sampling.WithSeed(11))
	require.NoError(t, err)
	popMean, popVar := moments(pop)

	const sampleSize, numSamples = 30, 2000
	means, err := sampling.SampleMeans(pop, sampleSize, numSamples, sampling.WithSeed(99))
	require.NoError(t, err)
	require.Len(t, means, numSamples)

	gotMean, gotVar := moments(means)
	assert.InDelta(t, popMean, gotMean, 0.05, "means center on the population mean")

	wantSD := math.Sqrt(popVar) / math.Sqrt(sampleSize)
	assert.InDelta(t, wantSD, math.Sqrt(gotVar), 0.15*wantSD, "spread shrinks as σ/√m")
}

// moments returns the empirical mean and (population) variance of xs.
func moments(xs []float64) (mean, variance float64) {
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	variance /= float64(len(xs))

	return mean, variance
}
