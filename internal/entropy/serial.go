package entropy

import "math"

// serialCorrelation returns the lag-1 Pearson correlation between
// consecutive byte values. Sums are accumulated in uint64; the largest
// term, sumXY, stays below 2^64 for buffers up to ~4.5e14 bytes.
// Undefined when the buffer has fewer than two bytes or either variance
// term is zero (all values equal).
func serialCorrelation(data []byte) Estimate {
	if len(data) < 2 {
		return Estimate{}
	}

	var sumX, sumY, sumXY, sumX2, sumY2 uint64
	for i := 1; i < len(data); i++ {
		x := uint64(data[i-1])
		y := uint64(data[i])
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
		sumY2 += y * y
	}

	n := float64(len(data) - 1)
	varX := n*float64(sumX2) - float64(sumX)*float64(sumX)
	varY := n*float64(sumY2) - float64(sumY)*float64(sumY)
	if varX <= 0 || varY <= 0 {
		return Estimate{}
	}

	coeff := (n*float64(sumXY) - float64(sumX)*float64(sumY)) / math.Sqrt(varX*varY)
	return Estimate{Value: coeff, Defined: true}
}
