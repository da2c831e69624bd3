package main

import (
	"fmt"
	"slices"
)

// maxDenominator is the largest i for which 2*pi/i is tested.
const maxDenominator = 29

// TrigBlockSpec describes one generated class of trig-table tests.
// Exclude lists denominators whose table value is ambiguous or undefined for Function.
type TrigBlockSpec struct {
	Function string `yaml:"function"`
	Exclude  []int  `yaml:"exclude,flow,omitempty"`
}

// TrigCase is one test method comparing Function(2*pi/Denominator) before and after simplification.
type TrigCase struct {
	Denominator int
}

// TrigBlock is the pre-render form of a trig-table test class.
type TrigBlock struct {
	Function  string
	Tolerance string
	Cases     []TrigCase
}

func (s TrigBlockSpec) validate() error {
	if !isIdentifier(s.Function) {
		return &ValidationError{Field: "trig function", Reason: fmt.Sprintf("%q is not an identifier", s.Function)}
	}
	return nil
}

func buildTrigBlock(spec TrigBlockSpec, tolerance string) (*TrigBlock, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	block := &TrigBlock{
		Function:  spec.Function,
		Tolerance: tolerance,
	}
	for i := 1; i <= maxDenominator; i++ {
		if slices.Contains(spec.Exclude, i) {
			continue
		}
		block.Cases = append(block.Cases, TrigCase{Denominator: i})
	}
	return block, nil
}
