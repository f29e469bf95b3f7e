// Package signal provides an ordered buffer of real-valued samples taken at a
// fixed sample rate, the kind of container a DSP front-end hands to the stats
// package for summarization.
package signal

import (
	"iter"
	"slices"
	"time"

	"golang.org/x/exp/constraints"
)

// Signal is an ordered sample buffer with an associated sample rate in Hz.
// The zero value is an empty signal with an unknown (zero) rate.
type Signal[F constraints.Float] struct {
	samples []F
	rate    int
}

// New creates a signal with the given sample rate from a copy of samples.
func New[F constraints.Float](sampleRate int, samples []F) *Signal[F] {
	return &Signal[F]{
		samples: slices.Clone(samples),
		rate:    sampleRate,
	}
}

// FromDuration creates an empty signal with capacity for d worth of samples
// at the given rate.
func FromDuration[F constraints.Float](sampleRate int, d time.Duration) *Signal[F] {
	n := int(d.Seconds() * float64(sampleRate))

	return &Signal[F]{
		samples: make([]F, 0, max(n, 0)),
		rate:    sampleRate,
	}
}

// SampleRate returns the sample rate in Hz.
func (s *Signal[F]) SampleRate() int {
	return s.rate
}

// Len returns the number of samples in the buffer.
func (s *Signal[F]) Len() int {
	return len(s.samples)
}

// At returns the i-th sample. It panics if i is out of range.
func (s *Signal[F]) At(i int) F {
	return s.samples[i]
}

// Samples returns the backing sample slice. The slice is owned by the
// signal; callers must not mutate it.
func (s *Signal[F]) Samples() []F {
	return s.samples
}

// Append adds samples to the end of the buffer.
func (s *Signal[F]) Append(values ...F) {
	s.samples = append(s.samples, values...)
}

// Duration returns the time span covered by the buffer, or 0 when the
// sample rate is unknown.
func (s *Signal[F]) Duration() time.Duration {
	if s.rate <= 0 {
		return 0
	}

	return time.Duration(float64(len(s.samples)) / float64(s.rate) * float64(time.Second))
}

// All returns a re-iterable forward iterator over the samples, oldest first.
// It satisfies the stats package's Source contract.
func (s *Signal[F]) All() iter.Seq[F] {
	return slices.Values(s.samples)
}
