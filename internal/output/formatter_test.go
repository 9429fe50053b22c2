package output

import (
	"strings"
	"testing"

	"github.com/wesleyorama2/entro/internal/entropy"
)

func analyzerResult(t *testing.T, data []byte, opts ...entropy.Option) *entropy.Result {
	t.Helper()
	return entropy.NewAnalyzer(data, opts...).Calculate()
}

func TestFormatReportText(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	formatter := NewFormatter(true) // no color

	report, err := formatter.FormatReport(analyzerResult(t, data), nil)
	if err != nil {
		t.Fatalf("FormatReport failed: %v", err)
	}

	expectedParts := []string{
		"Entropy = 8.000000 bits per byte.",
		"of this 256 byte file by 0 percent.",
		"Chi square distribution for 256 samples is 0.00",
		"Arithmetic mean value of data bytes is 127.5000 (127.5 = random).",
		"Monte Carlo value for Pi is",
		"Serial correlation coefficient is",
	}
	for _, part := range expectedParts {
		if !strings.Contains(report, part) {
			t.Errorf("expected report to contain %q, got:\n%s", part, report)
		}
	}
}

func TestFormatReportUndefinedStates(t *testing.T) {
	formatter := NewFormatter(true)

	report, err := formatter.FormatReport(analyzerResult(t, nil), nil)
	if err != nil {
		t.Fatalf("FormatReport failed: %v", err)
	}

	expectedParts := []string{
		"Entropy = 0.000000 bits per byte.",
		"Arithmetic mean value of data bytes is undefined (empty input).",
		"Monte Carlo value for Pi is undefined (need at least 6 bytes).",
		"Serial correlation coefficient is undefined (all values equal!).",
	}
	for _, part := range expectedParts {
		if !strings.Contains(report, part) {
			t.Errorf("expected report to contain %q, got:\n%s", part, report)
		}
	}
	if strings.Contains(report, "NaN") {
		t.Error("report must never contain NaN")
	}
}

func TestFormatReportConstantBufferWording(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = 'x'
	}
	formatter := NewFormatter(true)

	report, err := formatter.FormatReport(analyzerResult(t, data), nil)
	if err != nil {
		t.Fatalf("FormatReport failed: %v", err)
	}

	if !strings.Contains(report, "Serial correlation coefficient is undefined (all values equal!).") {
		t.Errorf("expected undefined correlation wording, got:\n%s", report)
	}
	// A constant buffer has a hugely skewed chi-square.
	if !strings.Contains(report, "less than 0.01 percent of the times.") {
		t.Errorf("expected extreme p-value banding, got:\n%s", report)
	}
}

func TestFormatReportBitModeUnits(t *testing.T) {
	data := make([]byte, 100)
	formatter := NewFormatter(true)

	report, err := formatter.FormatReport(analyzerResult(t, data, entropy.WithMode(entropy.ModeBit)), nil)
	if err != nil {
		t.Fatalf("FormatReport failed: %v", err)
	}

	if !strings.Contains(report, "bits per bit.") {
		t.Errorf("expected bit units, got:\n%s", report)
	}
	if !strings.Contains(report, "of this 800 bit file") {
		t.Errorf("expected bit sample count, got:\n%s", report)
	}
	if !strings.Contains(report, "(0.5 = random)") {
		t.Errorf("expected bit-mode mean baseline, got:\n%s", report)
	}
}

func TestFormatReportWithTable(t *testing.T) {
	data := []byte{'A', 'A', 'B', 0x00}
	a := entropy.NewAnalyzer(data)
	formatter := NewFormatter(true)

	report, err := formatter.FormatReport(a.Calculate(), a.FrequencyTable())
	if err != nil {
		t.Fatalf("FormatReport failed: %v", err)
	}

	expectedParts := []string{
		"Value: 65 Char: A Occurrences: 2 Fraction: 0.500000",
		"Value: 66 Char: B Occurrences: 1 Fraction: 0.250000",
		"Total: 4 1.0",
	}
	for _, part := range expectedParts {
		if !strings.Contains(report, part) {
			t.Errorf("expected report to contain %q, got:\n%s", part, report)
		}
	}
}

func TestPValueBanding(t *testing.T) {
	formatter := NewFormatter(true)

	tests := []struct {
		name string
		p    entropy.Estimate
		want string
	}{
		{"extreme low", entropy.Estimate{Value: 0.00005, Defined: true}, "less than 0.01 percent"},
		{"extreme high", entropy.Estimate{Value: 0.99995, Defined: true}, "more than 99.99 percent"},
		{"mid range", entropy.Estimate{Value: 0.5865, Defined: true}, "58.65 percent"},
		{"undefined", entropy.Estimate{}, "indeterminate"},
	}
	for _, tt := range tests {
		got := formatter.pValueSentence(tt.p)
		if !strings.Contains(got, tt.want) {
			t.Errorf("%s: expected %q in %q", tt.name, tt.want, got)
		}
	}
}
