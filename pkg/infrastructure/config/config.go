package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stockcast/stockcast/pkg/domain/entities"
)

// policyFile mirrors entities.Policy with YAML tags. Fields are pointers so
// an omitted key keeps its default instead of overriding it with zero.
type policyFile struct {
	MediumRiskMultiplier *float64 `yaml:"medium_risk_multiplier"`
	HighVariability      *float64 `yaml:"high_variability_threshold"`
	ModerateVariability  *float64 `yaml:"moderate_variability_threshold"`
	ZScore               *float64 `yaml:"z_score"`
	OrderCost            *float64 `yaml:"order_cost"`
	HoldingCost          *float64 `yaml:"holding_cost"`
	BusinessDaysPerYear  *float64 `yaml:"business_days_per_year"`
}

// LoadPolicy reads a YAML policy file and applies it over the default
// planning policy. The merged policy is validated before being returned.
func LoadPolicy(path string) (entities.Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Policy{}, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}

	var pf policyFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return entities.Policy{}, fmt.Errorf("failed to parse policy file %s: %w", path, err)
	}

	policy := entities.DefaultPolicy()
	if pf.MediumRiskMultiplier != nil {
		policy.MediumRiskMultiplier = *pf.MediumRiskMultiplier
	}
	if pf.HighVariability != nil {
		policy.HighVariability = *pf.HighVariability
	}
	if pf.ModerateVariability != nil {
		policy.ModerateVariability = *pf.ModerateVariability
	}
	if pf.ZScore != nil {
		policy.ZScore = *pf.ZScore
	}
	if pf.OrderCost != nil {
		policy.OrderCost = *pf.OrderCost
	}
	if pf.HoldingCost != nil {
		policy.HoldingCost = *pf.HoldingCost
	}
	if pf.BusinessDaysPerYear != nil {
		policy.BusinessDaysPerYear = *pf.BusinessDaysPerYear
	}

	if err := policy.Validate(); err != nil {
		return entities.Policy{}, fmt.Errorf("invalid policy file %s: %w", path, err)
	}

	return policy, nil
}
