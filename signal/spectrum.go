// Package signal - spectrum and time-domain plot helpers.
package signal

import (
	"math/cmplx"

	"github.com/katalvlaran/mathviz/core"
)

// SpectrumPoints turns a spectrum into plot points, one per bin:
// x = k·sampleRate/n, y = |X[k]|. The full spectrum is emitted, the
// mirrored upper half included, so callers see the transform exactly
// as computed. Nil for an empty spectrum.
func SpectrumPoints(spectrum []complex128, sampleRate float64) []core.Point {
	n := len(spectrum)
	if n == 0 {
		return nil
	}

	points := make([]core.Point, n)
	for k, c := range spectrum {
		points[k] = core.Pt(BinFrequency(k, n, sampleRate), cmplx.Abs(c))
	}

	return points
}

// TimePoints pairs samples with their normalized time t = i/n for
// plotting a generated waveform over [0, 1). Nil for empty input.
func TimePoints(samples []float64) []core.Point {
	n := len(samples)
	if n == 0 {
		return nil
	}

	points := make([]core.Point, n)
	for i, x := range samples {
		points[i] = core.Pt(float64(i)/float64(n), x)
	}

	return points
}

// DominantBin returns the index of the strongest bin in the
// non-redundant half 0..n/2 of the spectrum. Ties keep the lowest
// bin, so a constant signal reports bin 0. Empty spectrum: -1.
func DominantBin(spectrum []complex128) int {
	n := len(spectrum)
	if n == 0 {
		return -1
	}

	best, bestPower := 0, power(spectrum[0])
	for k := 1; k <= n/2; k++ {
		if p := power(spectrum[k]); p > bestPower {
			best, bestPower = k, p
		}
	}

	return best
}

// power is |c|² without the square root; ordering matches cmplx.Abs.
func power(c complex128) float64 {
	re, im := real(c), imag(c)
	return re*re + im*im
}
