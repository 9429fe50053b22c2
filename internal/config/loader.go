// Package config loads optional YAML defaults for the analyzer CLI.
// Values act as flag defaults; flags given on the command line win.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/entro/internal/output"
)

// Config represents the defaults file structure.
type Config struct {
	// Format is the default output format (text, json, yaml, csv)
	Format string `yaml:"format,omitempty"`

	// Bits analyzes the input as a stream of bits instead of bytes
	Bits bool `yaml:"bits,omitempty"`

	// FoldCase lowercases ASCII letters before analysis
	FoldCase bool `yaml:"foldCase,omitempty"`

	// Counts includes the per-symbol occurrence table in the report
	Counts bool `yaml:"counts,omitempty"`

	// NoColor disables colored text output
	NoColor bool `yaml:"noColor,omitempty"`
}

// Load reads and validates a defaults file. Unknown keys are rejected
// so a typo cannot silently fall back to defaults.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks field values against their allowed ranges.
func (c *Config) Validate() error {
	if c.Format == "" {
		return nil
	}
	_, err := output.ParseFormat(c.Format)
	return err
}
