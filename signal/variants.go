// Package signal - one variant type per waveform shape.
//
// The variants let callers hold "a signal" as a value and generate
// samples on demand; dispatch runs through the Source interface, not
// through shape names.
package signal

// Source is a generatable signal shape.
type Source interface {
	// Generate produces n samples over one unit of time.
	Generate(n int) ([]float64, error)
}

// Square is a rectangular wave with equal half-cycles.
type Square struct {
	Freq float64
	Amp  float64
}

func (s Square) Generate(n int) ([]float64, error) { return SquareWave(s.Freq, s.Amp, n) }

// Triangle is a linear ramp wave.
type Triangle struct {
	Freq float64
	Amp  float64
}

func (t Triangle) Generate(n int) ([]float64, error) { return TriangleWave(t.Freq, t.Amp, n) }

// Sawtooth is a centered rising ramp wave.
type Sawtooth struct {
	Freq float64
	Amp  float64
}

func (s Sawtooth) Generate(n int) ([]float64, error) { return SawtoothWave(s.Freq, s.Amp, n) }

// Harmonic is the 1/h-decay sine sum built on a base frequency.
type Harmonic struct {
	Freq      float64
	Amp       float64
	Harmonics int
}

func (h Harmonic) Generate(n int) ([]float64, error) {
	return HarmonicSeries(h.Freq, h.Harmonics, h.Amp, n)
}
