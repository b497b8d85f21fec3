package orchestration

import (
	"github.com/stockcast/stockcast/pkg/application/dto"
	"github.com/stockcast/stockcast/pkg/application/services/insights"
	"github.com/stockcast/stockcast/pkg/domain/entities"
	"github.com/stockcast/stockcast/pkg/domain/services"
)

// ForecastOrchestrator coordinates the calculators into one forecast
// bundle. It is the only entry point most callers need: it runs the
// pipeline in dependency order and threads the computed average demand
// through the downstream calculators so the mean is computed once.
type ForecastOrchestrator struct {
	calc      *services.Calculator
	generator *insights.Generator
}

// NewForecastOrchestrator creates an orchestrator with the default policy
func NewForecastOrchestrator() *ForecastOrchestrator {
	return NewForecastOrchestratorWithPolicy(entities.DefaultPolicy())
}

// NewForecastOrchestratorWithPolicy creates an orchestrator whose
// calculators and insight generator share a custom policy
func NewForecastOrchestratorWithPolicy(policy entities.Policy) *ForecastOrchestrator {
	return &ForecastOrchestrator{
		calc:      services.NewCalculatorWithPolicy(policy),
		generator: insights.NewGeneratorWithPolicy(policy),
	}
}

// Forecast runs the full pipeline over one SKU's demand history. Display
// fields are rounded to 2 decimals; unbounded coverage is carried as a
// tagged value and surfaces as the "Infinite" sentinel in JSON. Bad domain
// input yields a zeroed, low-risk forecast rather than an error.
func (o *ForecastOrchestrator) Forecast(history []float64, currentStock, leadTimeDays float64) *dto.ForecastResult {
	avg := o.calc.AverageDemand(history)
	days := o.calc.DaysRemaining(currentStock, avg)
	risk := o.calc.StockoutRisk(days, leadTimeDays)
	buffer := o.calc.SafetyStockWithAverage(history, leadTimeDays, avg)
	reorder := o.calc.ReorderPointWithAverage(history, leadTimeDays, avg)
	order := o.calc.EOQ(history)

	return &dto.ForecastResult{
		AvgDailyDemand: entities.Round2(avg),
		DaysRemaining:  days,
		StockoutRisk:   risk,
		DemandStdDev:   buffer.StdDev,
		SafetyStock:    buffer.SafetyStock,
		ReorderPoint:   reorder.ReorderPoint,
		AnnualDemand:   order.AnnualDemand,
		EOQ:            order.EOQ,
		Recommendation: dto.RecommendationForRisk(risk),
	}
}

// ForecastWithInsights runs Forecast and attaches the narrated insight
// bundle to the result
func (o *ForecastOrchestrator) ForecastWithInsights(history []float64, currentStock, leadTimeDays float64) *dto.ForecastResult {
	result := o.Forecast(history, currentStock, leadTimeDays)
	result.Insights = o.generator.Generate(result)
	return result
}
