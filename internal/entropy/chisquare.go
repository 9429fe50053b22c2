package entropy

import "math"

// chiSquare returns the chi-square goodness-of-fit statistic of the
// observed counts against a uniform distribution over the alphabet.
// An empty table yields 0 rather than dividing by a zero expectation.
func chiSquare(t *FrequencyTable) float64 {
	if t.Total == 0 {
		return 0
	}
	expected := float64(t.Total) / float64(len(t.Counts))
	var chi float64
	for _, count := range t.Counts {
		diff := float64(count) - expected
		chi += diff * diff / expected
	}
	return chi
}

// chiSquarePValue approximates the probability that a random sample would
// exceed the observed chi-square statistic, via the normal approximation
// z = sqrt(chi - dof). The approximation has no resolution below the
// degrees of freedom; there z is clamped to 0, giving p = 0.5, the floor
// of the one-sided exceedance probability. Undefined when the table held
// no samples.
func chiSquarePValue(chi float64, degreesOfFreedom int, samples uint64) Estimate {
	if samples == 0 {
		return Estimate{}
	}
	var z float64
	if d := chi - float64(degreesOfFreedom); d > 0 {
		z = math.Sqrt(d)
	}
	return Estimate{Value: 1 - normCDF(z), Defined: true}
}

// normCDF is the standard normal CDF, via the complementary error
// function.
func normCDF(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}
