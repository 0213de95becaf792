// Package mathviz is your numeric playground for visualizing mathematics:
// parse a curve from text, differentiate it, tabulate probability families,
// decompose waveforms, and watch the central limit theorem take shape.
//
// 🚀 What is mathviz?
//
//	A small, deterministic library that brings together:
//		• Expressions: one-variable curves parsed from plain text ("x^2 - 3*x")
//		• Calculus: symmetric-difference derivatives & tangent lines
//		• Probability: Normal, Binomial, Poisson, Exponential, Uniform families
//		• Signals: square, triangle, sawtooth & harmonic generators + naive DFT
//		• Statistics: seeded populations, sample means, histograms, KDE curves
//
// ✨ Why choose mathviz?
//
//   - Teaching-first – the formulas stay visible: the O(n²) transform and the
//     Abramowitz–Stegun normal CDF read like the textbook
//   - Deterministic – every random path is seeded and injectable; the same
//     inputs draw the same picture on every platform
//   - Explicit errors – sentinel errors for bad input; panics reserved for
//     impossible configuration
//   - Plot-ready – every pipeline ends in []core.Point, straight into the
//     chart of your choice
//
// Under the hood, everything is organized under six subpackages:
//
//	calculus/ — numeric derivative, tangent lines & curve sampling
//	core/     — Point, Range, Func: the contract every package speaks
//	dist/     — the five families with PDF/CDF tables, samplers & dispatch
//	expr/     — recursive-descent parser turning text into an evaluable Func
//	sampling/ — Population, SampleMeans, Histogram, Describe, DensityPoints
//	signal/   — waveform generators, DFT/IDFT & spectrum views
//
// Quick ASCII example:
//
//	  ***
//	 *   *
//	─*────*────────*──▶ t
//	       *      *
//	        ******
//
//	represents one period of a sine; the DFT in signal/ hands back the
//	single harmonic it contains, as points ready to plot.
//
// Next up: symbolic simplification, windowed spectra, and adaptive KDE
// bandwidths. Dive into README.md for full examples and the runnable
// demos under examples/.
//
//	go get github.com/katalvlaran/mathviz
package mathviz
