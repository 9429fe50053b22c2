// Package entropy computes statistical randomness metrics over a byte
// sequence: Shannon entropy, chi-square goodness-of-fit against a uniform
// distribution, arithmetic mean, a Monte Carlo estimate of pi, and the
// lag-1 serial correlation coefficient.
//
// The unit of analysis is either whole bytes (256-symbol alphabet) or
// individual bits (2-symbol alphabet, eight symbols per byte, extracted
// least-significant bit first).
//
// Basic Usage:
//
//	a := entropy.NewAnalyzer(data, entropy.WithMode(entropy.ModeBit))
//	result := a.Calculate()
//	fmt.Printf("%.6f bits per %s\n", result.Entropy, result.Mode)
//
// Metrics that are undefined for the given input (the serial correlation
// of a constant buffer, the pi estimate of fewer than six bytes) are
// reported as Estimate values with Defined set to false, never as NaN or
// a numeric sentinel.
package entropy
