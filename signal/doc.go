// Package signal generates classic periodic waveforms and analyzes
// them with a direct discrete Fourier transform.
//
// What:
//
//   - Generators: SquareWave, TriangleWave, SawtoothWave, and
//     HarmonicSeries (the 1/h-decay sine sum). Each produces n evenly
//     spaced samples over one normalized unit of time, t = i/n, so
//     frequency is in cycles per unit interval rather than hertz.
//     All shapes are zero-mean; the single-shape generators peak at
//     ±amp, the harmonic sum below Σ amp/h.
//   - Source variants: Square, Triangle, Sawtooth, Harmonic carry the
//     shape parameters as fields and Generate(n) samples on demand,
//     so callers pass "a signal" without switching on names.
//   - DFT computes the full N-bin spectrum with the textbook O(N²)
//     sum; IDFT inverts it. Magnitudes, BinFrequency, SpectrumPoints,
//     TimePoints, and DominantBin derive the plotted views.
//
// Why:
//
//   - Show how timbre lives in the spectrum: square vs. sawtooth at
//     the same pitch, harmonic count vs. waveform sharpness.
//   - The naive transform keeps every term visible; nothing hides in
//     butterfly reorderings. Sample counts stay around ≤1000, where
//     O(N²) is instant.
//
// Complexity:
//
//   - Generators: O(n) time and space (HarmonicSeries O(n·h)).
//   - DFT/IDFT:   O(N²) time, O(N) space. Deliberately not an FFT.
//
// Errors:
//
//   - ErrBadSampleCount: n < 1.
//   - ErrBadFrequency:   frequency not positive and finite.
//   - ErrBadAmplitude:   amplitude negative or not finite.
//   - ErrBadHarmonics:   harmonic count < 1.
//
// The transform-side helpers are total: an empty signal produces an
// empty spectrum, and DominantBin reports -1 when there are no bins.
package signal
