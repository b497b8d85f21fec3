package orchestration

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockcast/stockcast/pkg/application/dto"
	"github.com/stockcast/stockcast/pkg/domain/entities"
	"github.com/stockcast/stockcast/pkg/domain/services"
)

func TestForecastOrchestrator_Nominal(t *testing.T) {
	orchestrator := NewForecastOrchestrator()

	result := orchestrator.Forecast([]float64{10, 12, 15, 9, 11, 13, 10}, 50, 5)

	assert.Equal(t, 11.43, result.AvgDailyDemand)
	require.False(t, result.DaysRemaining.Unbounded())
	assert.InDelta(t, 4.375, result.DaysRemaining.Days(), 0.001)
	assert.Equal(t, "4.38", result.DaysRemaining.String())
	assert.Equal(t, entities.RiskHigh, result.StockoutRisk)
	assert.Equal(t, 2.07, result.DemandStdDev)
	assert.Equal(t, 7.64, result.SafetyStock)
	assert.Equal(t, 64.78, result.ReorderPoint)
	assert.Equal(t, 2857.14, result.AnnualDemand)
	assert.Equal(t, 239.05, result.EOQ)
	assert.Equal(t, dto.RecommendationUrgent, result.Recommendation)
	assert.Nil(t, result.Insights)
}

func TestForecastOrchestrator_ZeroDemand(t *testing.T) {
	orchestrator := NewForecastOrchestrator()

	result := orchestrator.Forecast([]float64{0, 0, 0}, 50, 5)

	assert.True(t, result.DaysRemaining.Unbounded())
	assert.Equal(t, entities.RiskLow, result.StockoutRisk)
	assert.Equal(t, dto.RecommendationRoutine, result.Recommendation)

	// The JSON transport carries the sentinel, never a float infinity
	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"daysRemaining":"Infinite"`)
}

func TestForecastOrchestrator_FullyInvalidInput(t *testing.T) {
	orchestrator := NewForecastOrchestrator()

	result := orchestrator.Forecast([]float64{math.NaN(), -3}, -10, -5)

	assert.Zero(t, result.AvgDailyDemand)
	assert.False(t, result.DaysRemaining.Unbounded())
	assert.Zero(t, result.DaysRemaining.Days())
	assert.Equal(t, entities.RiskLow, result.StockoutRisk)
	assert.Zero(t, result.DemandStdDev)
	assert.Zero(t, result.SafetyStock)
	assert.Zero(t, result.ReorderPoint)
	assert.Zero(t, result.AnnualDemand)
	assert.Zero(t, result.EOQ)
	assert.Equal(t, dto.RecommendationRoutine, result.Recommendation)
}

func TestForecastOrchestrator_WithInsights(t *testing.T) {
	orchestrator := NewForecastOrchestrator()

	result := orchestrator.ForecastWithInsights([]float64{10, 12, 15, 9, 11, 13, 10}, 50, 5)

	require.NotNil(t, result.Insights)
	assert.Equal(t, dto.StatusCritical, result.Insights.Status)
	assert.Equal(t, result.Recommendation, result.Insights.Recommendation)
}

func TestForecastOrchestrator_FieldsMatchCalculators(t *testing.T) {
	// Every aggregate field must equal what the dedicated calculator
	// produces from the same inputs.
	history := []float64{4, 7, 2, 9, 5}
	orchestrator := NewForecastOrchestrator()

	result := orchestrator.Forecast(history, 30, 3)

	calc := services.NewCalculator()
	buffer := calc.SafetyStock(history, 3)
	reorder := calc.ReorderPoint(history, 3)
	order := calc.EOQ(history)

	assert.Equal(t, entities.Round2(calc.AverageDemand(history)), result.AvgDailyDemand)
	assert.Equal(t, buffer.StdDev, result.DemandStdDev)
	assert.Equal(t, buffer.SafetyStock, result.SafetyStock)
	assert.Equal(t, reorder.ReorderPoint, result.ReorderPoint)
	assert.Equal(t, order.AnnualDemand, result.AnnualDemand)
	assert.Equal(t, order.EOQ, result.EOQ)
}

func TestForecastOrchestrator_CustomPolicy(t *testing.T) {
	policy := entities.DefaultPolicy()
	policy.ZScore = 0 // no service buffer

	orchestrator := NewForecastOrchestratorWithPolicy(policy)
	result := orchestrator.Forecast([]float64{10, 12, 15, 9, 11, 13, 10}, 50, 5)

	assert.Zero(t, result.SafetyStock)
	// Reorder point collapses to expected lead-time consumption
	assert.Equal(t, 57.14, result.ReorderPoint)
}
