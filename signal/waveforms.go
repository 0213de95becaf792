// Package signal - time-domain waveform generators.
//
// Shared conventions: n samples at t = i/n over one unit of time;
// freq in cycles per unit interval; zero-mean output. The single
// shapes peak at ±amp; the harmonic sum peaks below Σ amp/h.
package signal

import "math"

// validateWave applies the common generator input rules.
func validateWave(freq, amp float64, n int) error {
	if n < 1 {
		return ErrBadSampleCount
	}
	if math.IsNaN(freq) || math.IsInf(freq, 0) || freq <= 0 {
		return ErrBadFrequency
	}
	if math.IsNaN(amp) || math.IsInf(amp, 0) || amp < 0 {
		return ErrBadAmplitude
	}

	return nil
}

// SquareWave samples amp·sgn(sin(2πft)). The sign convention puts
// sin == 0 on the positive rail, so the very first sample is +amp.
func SquareWave(freq, amp float64, n int) ([]float64, error) {
	if err := validateWave(freq, amp, n); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(n)
		if math.Sin(2*math.Pi*freq*t) < 0 {
			out[i] = -amp
		} else {
			out[i] = amp
		}
	}

	return out, nil
}

// TriangleWave samples (2·amp/π)·asin(sin(2πft)), the linear ramp
// form of the triangle with peaks exactly at ±amp.
func TriangleWave(freq, amp float64, n int) ([]float64, error) {
	if err := validateWave(freq, amp, n); err != nil {
		return nil, err
	}

	scale := 2 * amp / math.Pi
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(n)
		out[i] = scale * math.Asin(math.Sin(2*math.Pi*freq*t))
	}

	return out, nil
}

// SawtoothWave samples 2·amp·(ft - floor(ft + ½)): a centered ramp
// rising from -amp to +amp once per cycle, crossing zero at t = 0.
func SawtoothWave(freq, amp float64, n int) ([]float64, error) {
	if err := validateWave(freq, amp, n); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		ph := freq * float64(i) / float64(n)
		out[i] = 2 * amp * (ph - math.Floor(ph+0.5))
	}

	return out, nil
}

// HarmonicSeries sums harmonics sine terms at frequencies base·h with
// amplitudes amp/h, h = 1..harmonics. With enough terms the sum
// approaches a sawtooth; with one term it is a plain sine.
func HarmonicSeries(baseFreq float64, harmonics int, amp float64, n int) ([]float64, error) {
	if err := validateWave(baseFreq, amp, n); err != nil {
		return nil, err
	}
	if harmonics < 1 {
		return nil, ErrBadHarmonics
	}

	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(n)

		sum := 0.0
		for h := 1; h <= harmonics; h++ {
			sum += amp / float64(h) * math.Sin(2*math.Pi*baseFreq*float64(h)*t)
		}
		out[i] = sum
	}

	return out, nil
}
