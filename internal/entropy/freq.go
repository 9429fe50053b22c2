package entropy

// Mode selects the unit of analysis.
type Mode int

const (
	// ModeByte counts each input byte as one symbol (alphabet size 256).
	ModeByte Mode = iota
	// ModeBit counts each bit as one symbol (alphabet size 2). Bits are
	// extracted least-significant first within each byte.
	ModeBit
)

// AlphabetSize returns the number of distinct symbol values for the mode.
func (m Mode) AlphabetSize() int {
	if m == ModeBit {
		return 2
	}
	return 256
}

// MaxEntropy returns the entropy of a perfectly uniform source in bits
// per symbol: 1.0 for bits, 8.0 for bytes.
func (m Mode) MaxEntropy() float64 {
	if m == ModeBit {
		return 1.0
	}
	return 8.0
}

func (m Mode) String() string {
	if m == ModeBit {
		return "bit"
	}
	return "byte"
}

// FrequencyTable holds per-symbol occurrence counts over a buffer.
// Counts has one entry per symbol value and sums exactly to Total.
type FrequencyTable struct {
	Counts []uint64
	Total  uint64
}

// Tabulate counts symbol occurrences in data under the given mode in a
// single pass. An empty buffer yields a table with Total == 0.
func Tabulate(data []byte, mode Mode) *FrequencyTable {
	t := &FrequencyTable{Counts: make([]uint64, mode.AlphabetSize())}

	if mode == ModeBit {
		for _, b := range data {
			for bit := 0; bit < 8; bit++ {
				t.Counts[(b>>bit)&1]++
			}
		}
		t.Total = 8 * uint64(len(data))
		return t
	}

	for _, b := range data {
		t.Counts[b]++
	}
	t.Total = uint64(len(data))
	return t
}

// Fraction returns the observed probability of the given symbol value,
// or 0 when the table is empty.
func (t *FrequencyTable) Fraction(symbol int) float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Counts[symbol]) / float64(t.Total)
}
