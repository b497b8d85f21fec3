package entities

import "fmt"

// RiskLevel represents the stockout risk classification
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
)

// String method for RiskLevel enum
func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "LOW"
	case RiskMedium:
		return "MEDIUM"
	case RiskHigh:
		return "HIGH"
	default:
		return "Unknown"
	}
}

// MarshalJSON encodes the risk level as its display string
func (r RiskLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// UnmarshalJSON decodes a risk level from its display string
func (r *RiskLevel) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"LOW"`:
		*r = RiskLow
	case `"MEDIUM"`:
		*r = RiskMedium
	case `"HIGH"`:
		*r = RiskHigh
	default:
		return fmt.Errorf("unknown risk level %s", string(data))
	}
	return nil
}
