package entropy

import "math"

// The pi estimator reads non-overlapping 6-byte groups as (x, y)
// coordinates in a square of side 2^24 and counts points inside the
// inscribed quarter-circle. x*x + y*y peaks just below 2^49, well within
// uint64.
const radiusSquared = uint64(1) << 48

// monteCarloPi estimates pi from the buffer's 6-byte groups. Each group
// forms two big-endian 24-bit coordinates. Trailing bytes that do not
// fill a group are discarded; with no complete group the estimate is
// undefined.
func monteCarloPi(data []byte) Estimate {
	groups := len(data) / 6
	if groups == 0 {
		return Estimate{}
	}

	var hits uint64
	for i := 0; i+6 <= len(data); i += 6 {
		x := uint64(data[i])<<16 | uint64(data[i+1])<<8 | uint64(data[i+2])
		y := uint64(data[i+3])<<16 | uint64(data[i+4])<<8 | uint64(data[i+5])
		if x*x+y*y < radiusSquared {
			hits++
		}
	}

	return Estimate{Value: 4 * float64(hits) / float64(groups), Defined: true}
}

// piErrorPercent is the relative error of an estimate against pi.
func piErrorPercent(estimate float64) float64 {
	return math.Abs(estimate-math.Pi) / math.Pi * 100
}
