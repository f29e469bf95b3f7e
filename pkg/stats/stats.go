// Package stats provides descriptive statistics over generic floating-point
// sample sequences: arithmetic mean, variance, and standard deviation, plus
// order statistics (min, max, percentiles).
//
// Variance uses the naive two-pass formula: the mean is computed in a first
// pass, the sum of squared deviations in a second, and the sum is divided by
// N−1 (Sample weighting, Bessel's correction) or N (Population weighting).
// There is no Welford-style stabilization; callers with large-magnitude or
// very long inputs must pre-condition their data.
//
// Degenerate input sizes are not guarded: the division proceeds and yields
// NaN or an infinity per IEEE-754 arithmetic. Callers that want an explicit
// error instead should use the Checked variants.
package stats

import (
	"iter"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Source is a read-only forward-iterable supplier of samples, such as a
// signal buffer. The returned sequence must be re-iterable: variance makes
// two passes over it.
type Source[F constraints.Float] interface {
	All() iter.Seq[F]
}

// MeanSeq returns the arithmetic mean of the samples yielded by seq.
// An empty sequence divides zero by zero and returns NaN.
func MeanSeq[F constraints.Float](seq iter.Seq[F]) F {
	var (
		sum F
		n   int
	)

	for v := range seq {
		sum += v
		n++
	}

	return sum / F(n)
}

// VarianceSeq returns the variance of the samples yielded by seq, using the
// divisor selected by w. seq must be re-iterable; a single-use iterator would
// be consumed by the mean pass.
func VarianceSeq[F constraints.Float](seq iter.Seq[F], w Weighting) F {
	mu := MeanSeq(seq)

	var (
		sumSq F
		n     int
	)

	for v := range seq {
		diff := v - mu
		sumSq += diff * diff
		n++
	}

	if w == Population {
		return sumSq / F(n)
	}

	return sumSq / F(n-1)
}

// StdDevSeq returns the non-negative square root of VarianceSeq(seq, w).
func StdDevSeq[F constraints.Float](seq iter.Seq[F], w Weighting) F {
	return F(math.Sqrt(float64(VarianceSeq(seq, w))))
}

// Mean returns the arithmetic mean of samples.
func Mean[F constraints.Float](samples []F) F {
	return MeanSeq(slices.Values(samples))
}

// Variance returns the variance of samples using the divisor selected by w.
func Variance[F constraints.Float](samples []F, w Weighting) F {
	return VarianceSeq(slices.Values(samples), w)
}

// StdDev returns the standard deviation of samples using the divisor
// selected by w.
func StdDev[F constraints.Float](samples []F, w Weighting) F {
	return StdDevSeq(slices.Values(samples), w)
}

// MeanOf returns the arithmetic mean of the samples supplied by src.
func MeanOf[F constraints.Float](src Source[F]) F {
	return MeanSeq(src.All())
}

// VarianceOf returns the variance of the samples supplied by src.
func VarianceOf[F constraints.Float](src Source[F], w Weighting) F {
	return VarianceSeq(src.All(), w)
}

// StdDevOf returns the standard deviation of the samples supplied by src.
func StdDevOf[F constraints.Float](src Source[F], w Weighting) F {
	return StdDevSeq(src.All(), w)
}
