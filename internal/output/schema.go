package output

import (
	"github.com/wesleyorama2/entro/pkg/jsonschema"
)

// ReportSchema is the JSON Schema every JSON report conforms to.
// Consumers can validate third-party or archived reports against it.
const ReportSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["unit", "bytes", "samples", "entropy", "compressionPercent", "chiSquare", "degreesOfFreedom"],
  "additionalProperties": false,
  "properties": {
    "unit": { "type": "string", "enum": ["byte", "bit"] },
    "bytes": { "type": "integer", "minimum": 0 },
    "samples": { "type": "integer", "minimum": 0 },
    "entropy": { "type": "number", "minimum": 0, "maximum": 8 },
    "compressionPercent": { "type": "number", "maximum": 100 },
    "chiSquare": { "type": "number", "minimum": 0 },
    "degreesOfFreedom": { "type": "integer", "enum": [1, 255] },
    "pValue": { "type": "number", "minimum": 0, "maximum": 1 },
    "mean": { "type": "number", "minimum": 0, "maximum": 255 },
    "piEstimate": { "type": "number", "minimum": 0, "maximum": 4 },
    "piErrorPercent": { "type": "number", "minimum": 0 },
    "serialCorrelation": { "type": "number", "minimum": -1, "maximum": 1 },
    "frequencies": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["value", "occurrences", "fraction"],
        "additionalProperties": false,
        "properties": {
          "value": { "type": "integer", "minimum": 0, "maximum": 255 },
          "char": { "type": "string" },
          "occurrences": { "type": "integer", "minimum": 0 },
          "fraction": { "type": "number", "minimum": 0, "maximum": 1 }
        }
      }
    }
  }
}`

// ValidateReport checks a JSON report against ReportSchema.
func ValidateReport(jsonStr string) error {
	v, err := jsonschema.NewValidator(ReportSchema)
	if err != nil {
		return err
	}
	return v.Validate(jsonStr)
}
