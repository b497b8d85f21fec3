package services

import (
	"math"

	"github.com/stockcast/stockcast/pkg/domain/entities"
)

// DaysRemaining estimates how many days the current stock covers at the
// average daily demand rate. Positive stock with zero demand never
// depletes, so the result is unbounded rather than a division error.
// Non-finite inputs and non-positive stock degrade to 0 days.
func (c *Calculator) DaysRemaining(currentStock, avgDailyDemand float64) entities.DaysOfStock {
	if !finite(currentStock) || !finite(avgDailyDemand) {
		return entities.FiniteDays(0)
	}
	if currentStock <= 0 {
		return entities.FiniteDays(0)
	}
	if avgDailyDemand <= 0 {
		return entities.UnboundedDays()
	}
	return entities.FiniteDays(currentStock / avgDailyDemand)
}

// StockoutRisk classifies stockout risk from projected coverage and the
// supplier lead time. Checks are ordered; the first match wins:
//
//  1. invalid lead time or negative coverage -> LOW (safe default)
//  2. unbounded coverage -> LOW
//  3. coverage shorter than lead time -> HIGH
//  4. coverage shorter than the medium-risk window -> MEDIUM
//  5. otherwise -> LOW
func (c *Calculator) StockoutRisk(days entities.DaysOfStock, leadTimeDays float64) entities.RiskLevel {
	if !finite(leadTimeDays) || leadTimeDays < 0 {
		return entities.RiskLow
	}
	if days.Unbounded() {
		return entities.RiskLow
	}
	d := days.Days()
	if math.IsNaN(d) || d < 0 {
		return entities.RiskLow
	}
	if d < leadTimeDays {
		return entities.RiskHigh
	}
	if d < c.policy.MediumRiskMultiplier*leadTimeDays {
		return entities.RiskMedium
	}
	return entities.RiskLow
}

// finite reports whether v is a usable numeric input
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
