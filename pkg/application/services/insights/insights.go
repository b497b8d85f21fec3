package insights

import (
	"fmt"
	"math"

	"github.com/stockcast/stockcast/pkg/application/dto"
	"github.com/stockcast/stockcast/pkg/domain/entities"
)

// Generator derives human-readable insight signals from a forecast result.
// It is a pure presentation layer: every number it cites was already
// computed by the calculators.
type Generator struct {
	policy entities.Policy
}

// NewGenerator creates a generator with the default planning policy
func NewGenerator() *Generator {
	return NewGeneratorWithPolicy(entities.DefaultPolicy())
}

// NewGeneratorWithPolicy creates a generator with a custom policy
func NewGeneratorWithPolicy(policy entities.Policy) *Generator {
	return &Generator{policy: policy}
}

// Generate narrates a forecast result. A nil result or one without a usable
// average-demand figure yields the insufficient-data bundle with status
// unknown rather than an error.
func (g *Generator) Generate(result *dto.ForecastResult) *dto.Insights {
	if result == nil || math.IsNaN(result.AvgDailyDemand) || result.AvgDailyDemand < 0 {
		return insufficientData()
	}

	out := &dto.Insights{
		DemandSignal:      fmt.Sprintf("Average daily demand is %.2f units.", result.AvgDailyDemand),
		VariabilitySignal: g.variabilitySignal(result.DemandStdDev),
		BufferSignal:      bufferSignal(result.SafetyStock, result.AvgDailyDemand),
		ReorderSignal:     fmt.Sprintf("Place a replenishment order when stock falls to %.2f units.", result.ReorderPoint),
		CostSignal:        fmt.Sprintf("Ordering in batches of %.2f units balances ordering cost against holding cost.", result.EOQ),
	}

	switch result.StockoutRisk {
	case entities.RiskHigh:
		out.Status = dto.StatusCritical
		out.Summary = "Projected stockout before replenishment can arrive."
		out.Recommendation = dto.RecommendationUrgent
	case entities.RiskMedium:
		out.Status = dto.StatusCaution
		out.Summary = "Stock will run low around the replenishment window."
		out.Recommendation = dto.RecommendationSoon
	default:
		out.Status = dto.StatusStable
		out.Summary = "Stock comfortably covers the replenishment window."
		out.Recommendation = dto.RecommendationRoutine
	}

	return out
}

// variabilitySignal tiers demand variability by the policy thresholds
func (g *Generator) variabilitySignal(stdDev float64) string {
	switch {
	case stdDev > g.policy.HighVariability:
		return fmt.Sprintf("Demand shows high variability (std dev %.2f); keep generous buffers.", stdDev)
	case stdDev > g.policy.ModerateVariability:
		return fmt.Sprintf("Demand shows moderate variability (std dev %.2f).", stdDev)
	default:
		return fmt.Sprintf("Demand shows low variability (std dev %.2f).", stdDev)
	}
}

// bufferSignal expresses safety stock as days of average-demand coverage,
// guarded against zero demand
func bufferSignal(safetyStock, avgDailyDemand float64) string {
	coverage := 0.0
	if avgDailyDemand > 0 {
		coverage = safetyStock / avgDailyDemand
	}
	return fmt.Sprintf("Safety stock covers %.1f days of average demand.", coverage)
}

// insufficientData is the fixed bundle returned when the forecast carries
// nothing narratable
func insufficientData() *dto.Insights {
	return &dto.Insights{
		Status:            dto.StatusUnknown,
		Summary:           "Insufficient data to generate insights.",
		DemandSignal:      "No usable demand history was provided.",
		VariabilitySignal: "Demand variability cannot be assessed.",
		BufferSignal:      "Safety stock coverage cannot be assessed.",
		ReorderSignal:     "No reorder threshold can be recommended.",
		CostSignal:        "No order quantity can be recommended.",
		Recommendation:    "Collect daily demand data before acting on this forecast.",
	}
}
