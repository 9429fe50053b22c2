package entropy

import "math"

// shannonEntropy returns the Shannon entropy of the tabulated symbol
// distribution in bits per symbol. Symbols that never occur contribute
// nothing; an empty table has entropy 0.
func shannonEntropy(t *FrequencyTable) float64 {
	var entropy float64
	for symbol := range t.Counts {
		f := t.Fraction(symbol)
		if f > 0 {
			entropy -= f * math.Log2(f)
		}
	}
	return entropy
}

// compressionPercent models the size reduction an optimal entropy coder
// could achieve, relative to the mode's maximum entropy.
func compressionPercent(entropy float64, mode Mode) float64 {
	return 100 * (1 - entropy/mode.MaxEntropy())
}
