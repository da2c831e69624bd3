package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the complete description of both fixture documents.
type Config struct {
	Polynomial PolyConfig `yaml:"polynomial"`
	Trig       TrigConfig `yaml:"trig"`
}

// Header is the banner and using block at the top of a generated document.
// Each entry of Comments becomes one /* ... */ block, one line per element.
type Header struct {
	Comments [][]string `yaml:"comments"`
	Usings   []string   `yaml:"usings"`
}

type PolyConfig struct {
	Output    string          `yaml:"output"`
	Namespace string          `yaml:"namespace"`
	Seed      int64           `yaml:"seed"`
	RNG       string          `yaml:"rng"` // java or pcg
	Header    Header          `yaml:"header"`
	Blocks    []PolyBlockSpec `yaml:"blocks"`
}

type TrigConfig struct {
	Output    string          `yaml:"output"`
	Namespace string          `yaml:"namespace"`
	Precision string          `yaml:"precision"` // literal passed to PrecisionErrorCommon.Set
	Header    Header          `yaml:"header"`
	Blocks    []TrigBlockSpec `yaml:"blocks"`
}

var generatedBanner = []string{
	"This file was auto-generated by fixturegen",
	"Do not modify it; modify the fixturegen configuration and rerun it instead.",
}

var defaultUsings = []string{
	"AngouriMath",
	"Microsoft.VisualStudio.TestTools.UnitTesting",
}

// DefaultConfig returns the tables the fixtures in the math library were generated from.
func DefaultConfig() *Config {
	return &Config{
		Polynomial: PolyConfig{
			Output:    "./../Algebra/SolveTest/SolverNumericalTests.cs",
			Namespace: "UnitTests.Algebra.PolynomialSolverTests",
			Seed:      44,
			RNG:       rngJava,
			Header: Header{
				Comments: [][]string{generatedBanner},
				Usings:   defaultUsings,
			},
			Blocks: []PolyBlockSpec{
				{Name: "ClassRealCardanoNumericRoots", Iterations: 20, Degree: 3},
				{Name: "ClassComplexCardanoNumericRoots", Iterations: 30, Degree: 3, Complex: true},
				{Name: "ClassRealFerrariNumericRoots", Iterations: 12, Degree: 4},
				{Name: "ClassComplexFerrariNumericRoots", Iterations: 8, Degree: 4, Complex: true},
			},
		},
		Trig: TrigConfig{
			Output:    "./../Core/TableTrigConstTest.cs",
			Namespace: "UnitTests.Core.TrigTableConstTest",
			Precision: "1e-8m",
			Header: Header{
				Comments: [][]string{
					generatedBanner,
					{
						"It's super important to test all following cases because they test replacements for Trigonometric functions",
						"so if one is wrong your result might be wrong at all",
					},
				},
				Usings: defaultUsings,
			},
			Blocks: []TrigBlockSpec{
				// 2*pi/9 simplifies to an expression that is ambiguous due to cubic roots
				{Function: "Sin", Exclude: []int{9}},
				{Function: "Cos"},
				{Function: "Tan", Exclude: []int{4}},
				{Function: "Cotan", Exclude: []int{1, 2, 4}},
			},
		},
	}
}

// LoadConfig overlays the YAML file at path onto DefaultConfig.
// An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	if err := decodeConfig(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// decodeConfig overlays YAML onto cfg, rejecting keys cfg does not have.
func decodeConfig(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// precisionRE matches a numeric literal with an optional type suffix, e.g. 1e-8m.
var precisionRE = regexp.MustCompile(`^[0-9.eE+-]+[mMdDfF]?$`)

// isQualifiedName reports whether s is a dot-separated sequence of identifiers.
func isQualifiedName(s string) bool {
	for _, part := range strings.Split(s, ".") {
		if !isIdentifier(part) {
			return false
		}
	}
	return true
}

func validateHeader(doc string, h Header) error {
	for _, u := range h.Usings {
		if !isQualifiedName(u) {
			return &ValidationError{Field: doc + " using", Reason: fmt.Sprintf("%q is not a qualified name", u)}
		}
	}
	for _, c := range h.Comments {
		for _, line := range c {
			if strings.Contains(line, "*/") || strings.ContainsAny(line, "\r\n") {
				return &ValidationError{Field: doc + " comment", Reason: fmt.Sprintf("%q cannot appear in a banner line", line)}
			}
		}
	}
	return nil
}

// Validate checks every block before anything is rendered or written.
func (c *Config) Validate() error {
	if _, err := newSource(c.Polynomial.RNG, c.Polynomial.Seed); err != nil {
		return err
	}
	if !isQualifiedName(c.Polynomial.Namespace) {
		return &ValidationError{Field: "polynomial namespace", Reason: fmt.Sprintf("%q is not a qualified name", c.Polynomial.Namespace)}
	}
	if err := validateHeader("polynomial", c.Polynomial.Header); err != nil {
		return err
	}
	for _, b := range c.Polynomial.Blocks {
		if err := b.validate(); err != nil {
			return err
		}
	}
	if !isQualifiedName(c.Trig.Namespace) {
		return &ValidationError{Field: "trig namespace", Reason: fmt.Sprintf("%q is not a qualified name", c.Trig.Namespace)}
	}
	if err := validateHeader("trig", c.Trig.Header); err != nil {
		return err
	}
	if !precisionRE.MatchString(c.Trig.Precision) {
		return &ValidationError{Field: "trig precision", Reason: fmt.Sprintf("%q is not a numeric literal", c.Trig.Precision)}
	}
	for _, b := range c.Trig.Blocks {
		if err := b.validate(); err != nil {
			return err
		}
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
