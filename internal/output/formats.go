package output

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/entro/internal/entropy"
)

// OutputFormat represents the available output formats
type OutputFormat string

const (
	// FormatText is the default human-readable report
	FormatText OutputFormat = "text"
	// FormatJSON outputs the report in JSON format
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs the report in YAML format
	FormatYAML OutputFormat = "yaml"
	// FormatCSV outputs the terse machine-parsable row format
	FormatCSV OutputFormat = "csv"
)

// ParseFormat converts a format name into an OutputFormat.
func ParseFormat(name string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(name)); f {
	case FormatText, FormatJSON, FormatYAML, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected text, json, yaml, or csv)", name)
	}
}

// FormatProvider is an interface for the different report formatters.
// A nil table means the caller did not request the occurrence table.
type FormatProvider interface {
	FormatReport(r *entropy.Result, table *entropy.FrequencyTable) (string, error)
}

// GetFormatter returns the formatter for the given output format
func GetFormatter(format OutputFormat, noColor bool) FormatProvider {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatCSV:
		return &CSVFormatter{}
	default:
		return NewFormatter(noColor)
	}
}

// ReportData is the serializable form of an analysis result. Metrics
// that are undefined for the input are nil and render as null/omitted,
// never as a sentinel number.
type ReportData struct {
	Unit               string          `json:"unit" yaml:"unit"`
	Bytes              int             `json:"bytes" yaml:"bytes"`
	Samples            uint64          `json:"samples" yaml:"samples"`
	Entropy            float64         `json:"entropy" yaml:"entropy"`
	CompressionPercent float64         `json:"compressionPercent" yaml:"compressionPercent"`
	ChiSquare          float64         `json:"chiSquare" yaml:"chiSquare"`
	DegreesOfFreedom   int             `json:"degreesOfFreedom" yaml:"degreesOfFreedom"`
	PValue             *float64        `json:"pValue,omitempty" yaml:"pValue,omitempty"`
	Mean               *float64        `json:"mean,omitempty" yaml:"mean,omitempty"`
	PiEstimate         *float64        `json:"piEstimate,omitempty" yaml:"piEstimate,omitempty"`
	PiErrorPercent     *float64        `json:"piErrorPercent,omitempty" yaml:"piErrorPercent,omitempty"`
	SerialCorrelation  *float64        `json:"serialCorrelation,omitempty" yaml:"serialCorrelation,omitempty"`
	Frequencies        []FrequencyData `json:"frequencies,omitempty" yaml:"frequencies,omitempty"`
}

// FrequencyData is one row of the occurrence table.
type FrequencyData struct {
	Value       int     `json:"value" yaml:"value"`
	Char        string  `json:"char,omitempty" yaml:"char,omitempty"`
	Occurrences uint64  `json:"occurrences" yaml:"occurrences"`
	Fraction    float64 `json:"fraction" yaml:"fraction"`
}

// NewReportData converts a result (and optional occurrence table) into
// its serializable form.
func NewReportData(r *entropy.Result, table *entropy.FrequencyTable) *ReportData {
	data := &ReportData{
		Unit:               r.Mode.String(),
		Bytes:              r.Bytes,
		Samples:            r.Samples,
		Entropy:            r.Entropy,
		CompressionPercent: r.CompressionPercent,
		ChiSquare:          r.ChiSquare,
		DegreesOfFreedom:   r.DegreesOfFreedom,
		PValue:             optional(r.PValue),
		Mean:               optional(r.Mean),
		PiEstimate:         optional(r.PiEstimate),
		PiErrorPercent:     optional(r.PiErrorPercent()),
		SerialCorrelation:  optional(r.SerialCorrelation),
	}

	if table != nil {
		data.Frequencies = make([]FrequencyData, len(table.Counts))
		for symbol := range table.Counts {
			row := FrequencyData{
				Value:       symbol,
				Occurrences: table.Counts[symbol],
				Fraction:    table.Fraction(symbol),
			}
			if r.Mode == entropy.ModeByte {
				row.Char = strings.TrimSpace(printableChar(symbol))
			}
			data.Frequencies[symbol] = row
		}
	}

	return data
}

func optional(e entropy.Estimate) *float64 {
	if !e.Defined {
		return nil
	}
	v := e.Value
	return &v
}

// JSONFormatter outputs the report in JSON format
type JSONFormatter struct{}

// FormatReport marshals the report as indented JSON.
func (f *JSONFormatter) FormatReport(r *entropy.Result, table *entropy.FrequencyTable) (string, error) {
	out, err := json.MarshalIndent(NewReportData(r, table), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}
	return string(out) + "\n", nil
}

// YAMLFormatter outputs the report in YAML format
type YAMLFormatter struct{}

// FormatReport marshals the report as YAML.
func (f *YAMLFormatter) FormatReport(r *entropy.Result, table *entropy.FrequencyTable) (string, error) {
	out, err := yaml.Marshal(NewReportData(r, table))
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}
	return string(out), nil
}

// CSVFormatter outputs the terse row format: a `0,` header row and `1,`
// data row for the metrics, followed by `2,`/`3,` rows for the
// occurrence table when requested. Undefined metrics are empty fields.
type CSVFormatter struct{}

// FormatReport renders the terse rows.
func (f *CSVFormatter) FormatReport(r *entropy.Result, table *entropy.FrequencyTable) (string, error) {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("0,File-%ss,Entropy,Chi-square,Mean,Monte-Carlo-Pi,Serial-Correlation\n", r.Mode))
	buf.WriteString(fmt.Sprintf("1,%d,%s,%s,%s,%s,%s\n",
		r.Samples,
		formatFloat(r.Entropy),
		formatFloat(r.ChiSquare),
		csvFloat(r.Mean),
		csvFloat(r.PiEstimate),
		csvFloat(r.SerialCorrelation)))

	if table != nil {
		buf.WriteString("2,Value,Occurrences,Fraction\n")
		for symbol, count := range table.Counts {
			buf.WriteString(fmt.Sprintf("3,%d,%d,%s\n",
				symbol, count, formatFloat(table.Fraction(symbol))))
		}
	}

	return buf.String(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func csvFloat(e entropy.Estimate) string {
	if !e.Defined {
		return ""
	}
	return formatFloat(e.Value)
}
