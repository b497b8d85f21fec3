package services

import (
	"math"

	"github.com/stockcast/stockcast/pkg/domain/entities"
)

// SafetyStock computes demand variability over the history and the buffer
// quantity needed to absorb it during the supplier lead time:
//
//	safetyStock = zScore x stdDev x sqrt(leadTime)
//
// Demand variance accumulates linearly with time, so its square root scales
// with sqrt(time); lead-time exposure is therefore modeled via a square
// root rather than a linear multiplier. An invalid history, negative lead
// time, or negative policy z-score yields the zero result.
func (c *Calculator) SafetyStock(history []float64, leadTimeDays float64) entities.SafetyStockResult {
	return c.safetyStock(history, leadTimeDays, math.NaN())
}

// SafetyStockWithAverage is SafetyStock with a precomputed average demand.
// When the caller already holds the mean of the same history it can be
// passed through to skip recomputing it; the result is numerically
// identical to SafetyStock. An invalid average is ignored and the mean is
// recomputed from the history.
func (c *Calculator) SafetyStockWithAverage(history []float64, leadTimeDays, avgDailyDemand float64) entities.SafetyStockResult {
	return c.safetyStock(history, leadTimeDays, avgDailyDemand)
}

func (c *Calculator) safetyStock(history []float64, leadTimeDays, precomputedAvg float64) entities.SafetyStockResult {
	var zero entities.SafetyStockResult
	if !finite(leadTimeDays) || leadTimeDays < 0 || c.policy.ZScore < 0 {
		return zero
	}
	valid := entities.FilterDemandHistory(history)
	if len(valid) == 0 {
		return zero
	}

	avg := precomputedAvg
	if !entities.ValidDemand(avg) {
		avg = mean(valid)
	}

	stdDev := sampleStdDev(valid, avg)
	buffer := c.policy.ZScore * stdDev * math.Sqrt(leadTimeDays)

	return entities.SafetyStockResult{
		StdDev:      entities.Round2(stdDev),
		SafetyStock: entities.Round2(buffer),
	}
}

// ReorderPoint computes the stock level at which a replenishment order must
// be placed: expected consumption during the lead time plus the safety
// buffer. Invalid input yields the zero result under the same conditions as
// SafetyStock.
func (c *Calculator) ReorderPoint(history []float64, leadTimeDays float64) entities.ReorderPointResult {
	return c.reorderPoint(history, leadTimeDays, math.NaN())
}

// ReorderPointWithAverage is ReorderPoint with a precomputed average
// demand, mirroring SafetyStockWithAverage. An invalid average is ignored
// and the mean is recomputed from the history.
func (c *Calculator) ReorderPointWithAverage(history []float64, leadTimeDays, avgDailyDemand float64) entities.ReorderPointResult {
	return c.reorderPoint(history, leadTimeDays, avgDailyDemand)
}

func (c *Calculator) reorderPoint(history []float64, leadTimeDays, precomputedAvg float64) entities.ReorderPointResult {
	var zero entities.ReorderPointResult
	if !finite(leadTimeDays) || leadTimeDays < 0 || c.policy.ZScore < 0 {
		return zero
	}
	valid := entities.FilterDemandHistory(history)
	if len(valid) == 0 {
		return zero
	}

	avg := precomputedAvg
	if !entities.ValidDemand(avg) {
		avg = mean(valid)
	}
	buffer := c.SafetyStockWithAverage(history, leadTimeDays, avg)
	point := avg*leadTimeDays + buffer.SafetyStock

	return entities.ReorderPointResult{
		AvgDailyDemand: entities.Round2(avg),
		SafetyStock:    buffer.SafetyStock,
		ReorderPoint:   entities.Round2(point),
	}
}

// EOQ computes the classical economic order quantity from annualized
// average demand and the policy's cost parameters:
//
//	eoq = sqrt(2 x annualDemand x orderCost / holdingCost)
//
// Zero average demand means no order is needed, so the zero result is
// returned; likewise when any cost or annualization parameter is invalid.
func (c *Calculator) EOQ(history []float64) entities.EOQResult {
	var zero entities.EOQResult
	if c.policy.OrderCost <= 0 || c.policy.HoldingCost <= 0 || c.policy.BusinessDaysPerYear <= 0 {
		return zero
	}

	avg := c.AverageDemand(history)
	if avg == 0 {
		return zero
	}

	annual := avg * c.policy.BusinessDaysPerYear
	quantity := math.Sqrt(2 * annual * c.policy.OrderCost / c.policy.HoldingCost)

	return entities.EOQResult{
		AnnualDemand: entities.Round2(annual),
		EOQ:          entities.Round2(quantity),
	}
}
