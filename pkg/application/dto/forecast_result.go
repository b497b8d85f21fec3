package dto

import (
	"github.com/stockcast/stockcast/pkg/domain/entities"
)

// ForecastResult contains the complete output of a forecast run. Every
// field equals what its dedicated calculator would produce from the same
// inputs; the aggregate adds no invariant of its own. The struct only ever
// grows new fields across versions so callers reading a subset never break.
type ForecastResult struct {
	AvgDailyDemand float64              `json:"avgDailyDemand"`
	DaysRemaining  entities.DaysOfStock `json:"daysRemaining"`
	StockoutRisk   entities.RiskLevel   `json:"stockoutRisk"`
	DemandStdDev   float64              `json:"demandStdDev"`
	SafetyStock    float64              `json:"safetyStock"`
	ReorderPoint   float64              `json:"reorderPoint"`
	AnnualDemand   float64              `json:"annualDemand"`
	EOQ            float64              `json:"eoq"`
	Recommendation string               `json:"recommendation"`
	Insights       *Insights            `json:"insights,omitempty"`
}

// Recommendation texts keyed by stockout risk
const (
	RecommendationUrgent  = "Urgent: reorder immediately. Projected stockout before replenishment arrives."
	RecommendationSoon    = "Plan a reorder soon. Coverage is thin against the supplier lead time."
	RecommendationRoutine = "Stock level is healthy. Continue routine monitoring."
)

// RecommendationForRisk returns the recommendation text for a risk level
func RecommendationForRisk(risk entities.RiskLevel) string {
	switch risk {
	case entities.RiskHigh:
		return RecommendationUrgent
	case entities.RiskMedium:
		return RecommendationSoon
	default:
		return RecommendationRoutine
	}
}
