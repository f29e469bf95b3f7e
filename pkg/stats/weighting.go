package stats

import "errors"

// Weighting selects the variance divisor.
type Weighting int

// Weighting constants. Sample is the zero value and the conventional default.
const (
	// Sample divides by N−1 (Bessel's correction), for unbiased estimation
	// from a subset of a population.
	Sample Weighting = iota

	// Population divides by N, for the exact variance of a complete
	// population.
	Population
)

// ErrInvalidWeighting is returned when parsing an unknown weighting string.
var ErrInvalidWeighting = errors.New("stats: invalid weighting")

// ParseWeighting converts a string to a Weighting value.
func ParseWeighting(s string) (Weighting, error) {
	switch s {
	case "sample":
		return Sample, nil
	case "population":
		return Population, nil
	default:
		return Sample, ErrInvalidWeighting
	}
}

// String returns the parseable name of the weighting.
func (w Weighting) String() string {
	if w == Population {
		return "population"
	}

	return "sample"
}

// MinSamples returns the smallest sequence length for which the variance
// divisor is positive: 2 for Sample, 1 for Population.
func (w Weighting) MinSamples() int {
	if w == Population {
		return 1
	}

	return 2
}
