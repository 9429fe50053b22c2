package output

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/wesleyorama2/entro/internal/entropy"
)

// Formatter renders analysis results as the classic human-readable
// randomness report.
type Formatter struct {
	NoColor bool

	scheme *ColorScheme
}

// NewFormatter creates a new text formatter with the given options
func NewFormatter(noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{NoColor: noColor, scheme: scheme}
}

// FormatReport renders the metric report. When table is non-nil the
// per-symbol occurrence table is printed ahead of the report.
func (f *Formatter) FormatReport(r *entropy.Result, table *entropy.FrequencyTable) (string, error) {
	var buf strings.Builder

	if table != nil {
		f.writeTable(&buf, r.Mode, table)
	}

	unit := r.Mode.String()
	buf.WriteString(fmt.Sprintf("Entropy = %s bits per %s.\n\n",
		f.scheme.Value.Sprintf("%f", r.Entropy), unit))

	buf.WriteString(fmt.Sprintf("Optimum compression would reduce the size\nof this %d %s file by %s percent.\n\n",
		r.Samples, unit, f.scheme.Value.Sprintf("%d", int(r.CompressionPercent))))

	buf.WriteString(fmt.Sprintf("Chi square distribution for %d samples is %s, and randomly\n",
		r.Samples, f.scheme.Value.Sprintf("%.2f", r.ChiSquare)))
	buf.WriteString(f.pValueSentence(r.PValue))

	if r.Mean.Defined {
		baseline := 127.5
		if r.Mode == entropy.ModeBit {
			baseline = 0.5
		}
		buf.WriteString(fmt.Sprintf("Arithmetic mean value of data bytes is %s (%.1f = random).\n",
			f.scheme.Value.Sprintf("%.4f", r.Mean.Value), baseline))
	} else {
		buf.WriteString(fmt.Sprintf("Arithmetic mean value of data bytes is %s (empty input).\n",
			f.scheme.Undefined.Sprint("undefined")))
	}

	if r.PiEstimate.Defined {
		buf.WriteString(fmt.Sprintf("Monte Carlo value for Pi is %s (error %.2f percent).\n",
			f.scheme.Value.Sprintf("%f", r.PiEstimate.Value), r.PiErrorPercent().Value))
	} else {
		buf.WriteString(fmt.Sprintf("Monte Carlo value for Pi is %s (need at least 6 bytes).\n",
			f.scheme.Undefined.Sprint("undefined")))
	}

	if r.SerialCorrelation.Defined {
		buf.WriteString(fmt.Sprintf("Serial correlation coefficient is %s (totally uncorrelated = 0.0).\n",
			f.scheme.Value.Sprintf("%f", r.SerialCorrelation.Value)))
	} else {
		buf.WriteString(fmt.Sprintf("Serial correlation coefficient is %s (all values equal!).\n",
			f.scheme.Undefined.Sprint("undefined")))
	}

	return buf.String(), nil
}

// pValueSentence applies the classic banding for extreme p-values so a
// report never claims an exact probability the approximation cannot
// resolve.
func (f *Formatter) pValueSentence(p entropy.Estimate) string {
	switch {
	case !p.Defined:
		return "would exceed this value an indeterminate fraction of the times (no samples).\n\n"
	case p.Value < 0.0001:
		return "would exceed this value less than 0.01 percent of the times.\n\n"
	case p.Value > 0.9999:
		return "would exceed this value more than 99.99 percent of the times.\n\n"
	default:
		return fmt.Sprintf("would exceed this value %.2f percent of the times.\n\n", p.Value*100)
	}
}

func (f *Formatter) writeTable(buf *strings.Builder, mode entropy.Mode, table *entropy.FrequencyTable) {
	for symbol, count := range table.Counts {
		if mode == entropy.ModeByte {
			buf.WriteString(fmt.Sprintf("Value: %d Char: %s Occurrences: %d Fraction: %f\n",
				symbol, printableChar(symbol), count, table.Fraction(symbol)))
		} else {
			buf.WriteString(fmt.Sprintf("Value: %d Occurrences: %d Fraction: %f\n",
				symbol, count, table.Fraction(symbol)))
		}
	}
	buf.WriteString(fmt.Sprintf("\nTotal: %d 1.0\n\n", table.Total))
}

// printableChar shows printable ASCII values next to their codes in the
// occurrence table.
func printableChar(symbol int) string {
	if symbol < 128 && unicode.IsPrint(rune(symbol)) {
		return string(rune(symbol))
	}
	return " "
}
