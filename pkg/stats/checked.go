package stats

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrTooFewSamples is returned by the Checked variants when the input is too
// short for the requested statistic.
var ErrTooFewSamples = errors.New("stats: too few samples")

// MeanChecked is Mean with an explicit error for empty input.
func MeanChecked[F constraints.Float](samples []F) (F, error) {
	if len(samples) == 0 {
		return 0, fmt.Errorf("%w: mean requires at least 1, got 0", ErrTooFewSamples)
	}

	return Mean(samples), nil
}

// VarianceChecked is Variance with an explicit error when len(samples) is
// below w.MinSamples().
func VarianceChecked[F constraints.Float](samples []F, w Weighting) (F, error) {
	if len(samples) < w.MinSamples() {
		return 0, fmt.Errorf("%w: %s variance requires at least %d, got %d",
			ErrTooFewSamples, w, w.MinSamples(), len(samples))
	}

	return Variance(samples, w), nil
}

// StdDevChecked is StdDev with an explicit error when len(samples) is below
// w.MinSamples().
func StdDevChecked[F constraints.Float](samples []F, w Weighting) (F, error) {
	if len(samples) < w.MinSamples() {
		return 0, fmt.Errorf("%w: %s standard deviation requires at least %d, got %d",
			ErrTooFewSamples, w, w.MinSamples(), len(samples))
	}

	return StdDev(samples, w), nil
}
