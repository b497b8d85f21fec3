package entities

import "fmt"

// Default policy values. The risk multiplier and variability tiers are
// fixed planning conventions, not values derived from data; they live here
// so tuning them never touches classification or formula code.
const (
	DefaultMediumRiskMultiplier = 1.5
	DefaultHighVariability      = 3.0
	DefaultModerateVariability  = 1.0
	DefaultZScore               = 1.65 // ~95% service level
	DefaultOrderCost            = 100.0
	DefaultHoldingCost          = 10.0 // per unit per year
	DefaultBusinessDaysPerYear  = 250.0
)

// Policy holds the tunable planning constants used by the calculators
type Policy struct {
	// MediumRiskMultiplier widens the lead-time window that classifies as
	// medium stockout risk (days < multiplier x lead time)
	MediumRiskMultiplier float64

	// HighVariability and ModerateVariability are the stdDev tiers used by
	// insight narration
	HighVariability     float64
	ModerateVariability float64

	// ZScore is the service-level factor applied to safety stock
	ZScore float64

	// OrderCost and HoldingCost are the EOQ cost parameters
	OrderCost   float64
	HoldingCost float64

	// BusinessDaysPerYear annualizes average daily demand for EOQ
	BusinessDaysPerYear float64
}

// DefaultPolicy returns the standard planning policy
func DefaultPolicy() Policy {
	return Policy{
		MediumRiskMultiplier: DefaultMediumRiskMultiplier,
		HighVariability:      DefaultHighVariability,
		ModerateVariability:  DefaultModerateVariability,
		ZScore:               DefaultZScore,
		OrderCost:            DefaultOrderCost,
		HoldingCost:          DefaultHoldingCost,
		BusinessDaysPerYear:  DefaultBusinessDaysPerYear,
	}
}

// Validate checks that the policy constants are internally consistent
func (p Policy) Validate() error {
	if p.MediumRiskMultiplier < 1 {
		return fmt.Errorf("medium risk multiplier must be >= 1, got %g", p.MediumRiskMultiplier)
	}
	if p.ModerateVariability < 0 {
		return fmt.Errorf("moderate variability threshold cannot be negative, got %g", p.ModerateVariability)
	}
	if p.HighVariability < p.ModerateVariability {
		return fmt.Errorf("high variability threshold %g cannot be below moderate threshold %g",
			p.HighVariability, p.ModerateVariability)
	}
	if p.ZScore < 0 {
		return fmt.Errorf("z-score cannot be negative, got %g", p.ZScore)
	}
	if p.OrderCost <= 0 {
		return fmt.Errorf("order cost must be positive, got %g", p.OrderCost)
	}
	if p.HoldingCost <= 0 {
		return fmt.Errorf("holding cost must be positive, got %g", p.HoldingCost)
	}
	if p.BusinessDaysPerYear <= 0 {
		return fmt.Errorf("business days per year must be positive, got %g", p.BusinessDaysPerYear)
	}
	return nil
}
