package entities

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// InfiniteCoverage is the display sentinel for unbounded days of stock.
// Consumers of the JSON form never see a floating-point infinity.
const InfiniteCoverage = "Infinite"

// DaysOfStock represents projected days of inventory coverage. Coverage is
// unbounded when stock is positive but average demand is zero: stock never
// depletes at the current consumption rate.
type DaysOfStock struct {
	days      float64
	unbounded bool
}

// FiniteDays creates a bounded coverage value
func FiniteDays(days float64) DaysOfStock {
	return DaysOfStock{days: days}
}

// UnboundedDays creates the "stock never depletes" coverage value
func UnboundedDays() DaysOfStock {
	return DaysOfStock{unbounded: true}
}

// Unbounded reports whether stock never depletes at the current rate
func (d DaysOfStock) Unbounded() bool {
	return d.unbounded
}

// Days returns the coverage as a float64, +Inf when unbounded
func (d DaysOfStock) Days() float64 {
	if d.unbounded {
		return math.Inf(1)
	}
	return d.days
}

// String method for DaysOfStock
func (d DaysOfStock) String() string {
	if d.unbounded {
		return InfiniteCoverage
	}
	return fmt.Sprintf("%.2f", d.days)
}

// MarshalJSON encodes bounded coverage as a 2-decimal number and unbounded
// coverage as the InfiniteCoverage sentinel string
func (d DaysOfStock) MarshalJSON() ([]byte, error) {
	if d.unbounded {
		return []byte(`"` + InfiniteCoverage + `"`), nil
	}
	return []byte(strconv.FormatFloat(Round2(d.days), 'f', -1, 64)), nil
}

// UnmarshalJSON decodes either a numeric day count or the InfiniteCoverage
// sentinel string
func (d *DaysOfStock) UnmarshalJSON(data []byte) error {
	if string(data) == `"`+InfiniteCoverage+`"` {
		*d = UnboundedDays()
		return nil
	}
	days, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid days of stock %s: %w", string(data), err)
	}
	*d = FiniteDays(days)
	return nil
}

// Round2 rounds a value to 2 decimal places for display. Values that have
// no decimal representation round to 0 rather than propagating.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
