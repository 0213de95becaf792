// Package signal - the direct discrete Fourier transform.
package signal

import (
	"math"
	"math/cmplx"
)

// DFT computes the full N-bin spectrum of a real signal:
//
//	X[k] = Σ_i x[i]·e^(-2πi·k·i/N), k = 0..N-1
//
// The textbook O(N²) double loop, deliberately not an FFT: inputs stay
// in the hundreds of samples, where clarity beats asymptotics. All N
// bins are returned; for a real signal the upper half mirrors the
// lower. An empty input yields a nil spectrum.
func DFT(samples []float64) []complex128 {
	n := len(samples)
	if n == 0 {
		return nil
	}

	spectrum := make([]complex128, n)
	for k := 0; k < n; k++ {
		var re, im float64
		for i, x := range samples {
			angle := -2 * math.Pi * float64(k) * float64(i) / float64(n)
			re += x * math.Cos(angle)
			im += x * math.Sin(angle)
		}
		spectrum[k] = complex(re, im)
	}

	return spectrum
}

// IDFT inverts DFT back into the time domain:
//
//	x[i] = (1/N)·Σ_k X[k]·e^(+2πi·k·i/N)
//
// Only the real part is returned; for spectra of real signals the
// imaginary residue is floating-point noise.
func IDFT(spectrum []complex128) []float64 {
	n := len(spectrum)
	if n == 0 {
		return nil
	}

	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		var re float64
		for k, c := range spectrum {
			angle := 2 * math.Pi * float64(k) * float64(i) / float64(n)
			re += real(c)*math.Cos(angle) - imag(c)*math.Sin(angle)
		}
		samples[i] = re / float64(n)
	}

	return samples
}

// Magnitudes reduces a spectrum to per-bin magnitudes √(re²+im²).
func Magnitudes(spectrum []complex128) []float64 {
	if len(spectrum) == 0 {
		return nil
	}

	mags := make([]float64, len(spectrum))
	for k, c := range spectrum {
		mags[k] = cmplx.Abs(c)
	}

	return mags
}

// BinFrequency maps spectrum bin k to its frequency k·rate/n for a
// signal of n samples captured at sampleRate. NaN when n < 1.
func BinFrequency(k, n int, sampleRate float64) float64 {
	if n < 1 {
		return math.NaN()
	}

	return float64(k) * sampleRate / float64(n)
}
