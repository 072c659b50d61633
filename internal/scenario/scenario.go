// Package scenario loads the input values for a run from a YAML file.
// Without a scenario file, runs use the built-in stock example.
package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes the coefficients and root texts for one run.
type Scenario struct {
	// Name identifies the scenario in output and in the run ledger.
	Name string `yaml:"name"`

	// A and B are the known quadratic coefficients. The constant c is
	// never an input; it is always derived from the roots.
	A int `yaml:"a"`
	B int `yaml:"b"`

	// Roots are the two root values as decimal text. They are encoded
	// before persistence and parsed as floats only at derivation time.
	Roots Roots `yaml:"roots"`
}

// Roots holds the plain-text root values.
type Roots struct {
	Alpha string `yaml:"alpha"`
	Beta  string `yaml:"beta"`
}

// Default returns the built-in stock example: a=2, b=-7, roots "2" and "5".
// These values are intentionally kept even though they are algebraically
// inconsistent (alpha+beta is 7 while -b/a is 3.5); the run reports the
// discrepancy rather than hiding it.
func Default() *Scenario {
	return &Scenario{
		Name: "stock-example",
		A:    2,
		B:    -7,
		Roots: Roots{
			Alpha: "2",
			Beta:  "5",
		},
	}
}

// Load reads and validates a scenario from a YAML file.
// Unknown fields are rejected to catch typos early.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks structural requirements on the scenario.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.A == 0 {
		return fmt.Errorf("coefficient a must be non-zero")
	}
	if s.Roots.Alpha == "" {
		return fmt.Errorf("roots.alpha is required")
	}
	if s.Roots.Beta == "" {
		return fmt.Errorf("roots.beta is required")
	}
	return nil
}
