package services

import (
	"github.com/stockcast/stockcast/pkg/domain/entities"
)

// Calculator computes demand statistics and replenishment quantities under
// a fixed planning policy. Every method is a pure function of its arguments
// and the policy: no state is kept between calls, and bad domain input
// degrades to a documented safe default instead of an error.
type Calculator struct {
	policy entities.Policy
}

// NewCalculator creates a calculator with the default planning policy
func NewCalculator() *Calculator {
	return NewCalculatorWithPolicy(entities.DefaultPolicy())
}

// NewCalculatorWithPolicy creates a calculator with a custom policy
func NewCalculatorWithPolicy(policy entities.Policy) *Calculator {
	return &Calculator{policy: policy}
}

// Policy returns the planning policy this calculator was built with
func (c *Calculator) Policy() entities.Policy {
	return c.policy
}
