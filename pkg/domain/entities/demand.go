package entities

import "math"

// ValidDemand reports whether a value is a usable daily-demand sample.
// Demand samples must be finite and non-negative; anything else came from a
// messy feed and is discarded before any statistic is computed.
func ValidDemand(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// FilterDemandHistory returns the valid samples of a demand history in
// their original order. A nil or all-invalid history filters to nil, which
// downstream calculators treat as "no demand".
func FilterDemandHistory(history []float64) []float64 {
	var valid []float64
	for _, v := range history {
		if ValidDemand(v) {
			valid = append(valid, v)
		}
	}
	return valid
}
