// Package jsonschema wraps JSON Schema compilation and validation for
// report documents.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator holds a compiled JSON Schema for repeated validation.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the given schema document.
func NewValidator(schemaStr string) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schemaStr)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate checks a JSON document against the compiled schema. It
// returns nil when the document conforms; a validation failure is
// returned as an error describing the violated constraints.
func (v *Validator) Validate(jsonStr string) error {
	var doc interface{}
	if err := json.Unmarshal([]byte(jsonStr), &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("schema violation: %w", err)
	}
	return nil
}

// Validate is a convenience for one-shot validation of a JSON document
// against a schema document. It reports whether the JSON conforms; the
// error is non-nil only when the schema or JSON cannot be parsed.
func Validate(jsonStr, schemaStr string) (bool, error) {
	v, err := NewValidator(schemaStr)
	if err != nil {
		return false, err
	}
	var doc interface{}
	if err := json.Unmarshal([]byte(jsonStr), &doc); err != nil {
		return false, fmt.Errorf("invalid JSON: %w", err)
	}
	return v.schema.Validate(doc) == nil, nil
}
