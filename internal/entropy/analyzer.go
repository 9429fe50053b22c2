package entropy

// Estimate is a metric outcome that may be undefined on degenerate
// input. When Defined is false, Value is meaningless and callers must
// render an explicit "undefined" state instead.
type Estimate struct {
	Value   float64
	Defined bool
}

// Result is an immutable snapshot of one Calculate invocation. All five
// metrics are computed together; there is no partially filled Result.
type Result struct {
	// Mode is the unit of analysis the metrics were computed under.
	Mode Mode

	// Bytes is the raw buffer length.
	Bytes int

	// Samples is the number of symbols analyzed: Bytes in byte mode,
	// 8*Bytes in bit mode.
	Samples uint64

	// Entropy is the Shannon entropy in bits per symbol.
	Entropy float64

	// CompressionPercent is the size reduction an optimal entropy coder
	// could achieve.
	CompressionPercent float64

	// ChiSquare is the goodness-of-fit statistic against a uniform
	// distribution, with DegreesOfFreedom = alphabet size - 1.
	ChiSquare        float64
	DegreesOfFreedom int

	// PValue is the approximate probability that a random sample would
	// exceed ChiSquare. Undefined on empty input.
	PValue Estimate

	// Mean is the arithmetic mean of the raw byte values, regardless of
	// mode. Undefined on empty input.
	Mean Estimate

	// PiEstimate is the Monte Carlo estimate of pi. Undefined when the
	// buffer holds no complete 6-byte group.
	PiEstimate Estimate

	// SerialCorrelation is the lag-1 correlation between consecutive
	// bytes. Undefined for constant buffers and buffers shorter than 2.
	SerialCorrelation Estimate
}

// PiErrorPercent returns the relative error of PiEstimate against pi,
// undefined whenever the estimate itself is.
func (r *Result) PiErrorPercent() Estimate {
	if !r.PiEstimate.Defined {
		return Estimate{}
	}
	return Estimate{Value: piErrorPercent(r.PiEstimate.Value), Defined: true}
}

// Analyzer owns a byte buffer for the duration of an analysis. The
// buffer must not be modified externally after construction.
type Analyzer struct {
	data []byte
	mode Mode
}

// Option configures an Analyzer at construction.
type Option func(*Analyzer)

// WithMode sets the unit of analysis. The default is ModeByte.
func WithMode(mode Mode) Option {
	return func(a *Analyzer) {
		a.mode = mode
	}
}

// WithFoldCase lowercases ASCII letters in the buffer before any metric
// reads it. The fold happens once, in place, during NewAnalyzer.
func WithFoldCase() Option {
	return func(a *Analyzer) {
		foldCase(a.data)
	}
}

// NewAnalyzer takes ownership of data and applies the given options.
func NewAnalyzer(data []byte, opts ...Option) *Analyzer {
	a := &Analyzer{data: data, mode: ModeByte}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Calculate runs all five metrics over the buffer and returns their
// snapshot. Repeated calls on the same Analyzer return identical
// results.
func (a *Analyzer) Calculate() *Result {
	table := Tabulate(a.data, a.mode)

	r := &Result{
		Mode:             a.mode,
		Bytes:            len(a.data),
		Samples:          table.Total,
		DegreesOfFreedom: a.mode.AlphabetSize() - 1,
	}
	r.Entropy = shannonEntropy(table)
	r.CompressionPercent = compressionPercent(r.Entropy, a.mode)
	r.ChiSquare = chiSquare(table)
	r.PValue = chiSquarePValue(r.ChiSquare, r.DegreesOfFreedom, table.Total)
	r.Mean = mean(a.data)
	r.PiEstimate = monteCarloPi(a.data)
	r.SerialCorrelation = serialCorrelation(a.data)
	return r
}

// FrequencyTable tabulates the analyzer's buffer under its mode, for
// reporting layers that render the full occurrence table.
func (a *Analyzer) FrequencyTable() *FrequencyTable {
	return Tabulate(a.data, a.mode)
}

// mean averages the raw byte values. Undefined on an empty buffer.
func mean(data []byte) Estimate {
	if len(data) == 0 {
		return Estimate{}
	}
	var sum float64
	for _, b := range data {
		sum += float64(b)
	}
	return Estimate{Value: sum / float64(len(data)), Defined: true}
}

// foldCase lowercases ASCII A-Z in place. Only unaccented ASCII letters
// fold, matching tolower under the C locale.
func foldCase(data []byte) {
	for i, b := range data {
		if b >= 'A' && b <= 'Z' {
			data[i] = b + ('a' - 'A')
		}
	}
}
