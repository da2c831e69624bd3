package main

import (
	"fmt"
	"unicode"
)

// rootBound is the exclusive upper bound of every drawn root component.
const rootBound = 10

// PolyBlockSpec describes one generated class of polynomial-root tests.
type PolyBlockSpec struct {
	Name       string `yaml:"name"`
	Iterations int    `yaml:"iterations"`
	Degree     int    `yaml:"degree"`
	Complex    bool   `yaml:"complex"`
}

// Factor is a single linear factor (x - (Real + i*Imag)).
type Factor struct {
	Real    int
	Imag    int
	Complex bool
}

// PolyCase is one test method: the product of its factors is expanded and solved.
type PolyCase struct {
	Index   int // 1-based
	Degree  int
	Factors []Factor
}

// PolyBlock is the pre-render form of a polynomial test class.
type PolyBlock struct {
	Name  string
	Cases []PolyCase
}

func (s PolyBlockSpec) validate() error {
	if !isIdentifier(s.Name) {
		return &ValidationError{Field: "polynomial block name", Reason: fmt.Sprintf("%q is not an identifier", s.Name)}
	}
	if s.Iterations < 1 {
		return &ValidationError{Field: "iterations", Reason: fmt.Sprintf("block %s: must be positive, got %d", s.Name, s.Iterations)}
	}
	if s.Degree < 1 {
		return &ValidationError{Field: "degree", Reason: fmt.Sprintf("block %s: must be positive, got %d", s.Name, s.Degree)}
	}
	return nil
}

// buildPolyBlock draws the factors of every case from src.
// Draw order is real then imaginary part per factor, factors left to right, cases in order.
func buildPolyBlock(spec PolyBlockSpec, src intSource) (*PolyBlock, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	block := &PolyBlock{
		Name:  spec.Name,
		Cases: make([]PolyCase, 0, spec.Iterations),
	}
	for i := 0; i < spec.Iterations; i++ {
		c := PolyCase{
			Index:   i + 1,
			Degree:  spec.Degree,
			Factors: make([]Factor, spec.Degree),
		}
		for j := range c.Factors {
			f := Factor{Real: src.Intn(rootBound), Complex: spec.Complex}
			if spec.Complex {
				f.Imag = src.Intn(rootBound)
			}
			c.Factors[j] = f
		}
		block.Cases = append(block.Cases, c)
	}
	return block, nil
}

// isIdentifier reports whether s can name a class or method in the generated source.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		ok := unicode.IsLetter(c) || c == '_'
		if i > 0 {
			ok = ok || unicode.IsDigit(c)
		}
		if !ok {
			return false
		}
	}
	return true
}
