// Package signal - sentinel errors shared by all generators.
package signal

import "errors"

var (
	// ErrBadSampleCount rejects sample counts below one.
	ErrBadSampleCount = errors.New("signal: sample count must be at least 1")

	// ErrBadFrequency rejects non-positive or non-finite frequencies.
	ErrBadFrequency = errors.New("signal: frequency must be positive and finite")

	// ErrBadAmplitude rejects negative or non-finite amplitudes.
	ErrBadAmplitude = errors.New("signal: amplitude must be non-negative and finite")

	// ErrBadHarmonics rejects harmonic counts below one.
	ErrBadHarmonics = errors.New("signal: harmonics must be at least 1")
)
