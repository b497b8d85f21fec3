package services

import (
	"math"

	"github.com/stockcast/stockcast/pkg/domain/entities"
)

// AverageDemand returns the arithmetic mean of the valid samples in a
// demand history at full floating-point precision. Negative and non-finite
// entries never influence the mean. An empty or all-invalid history
// degenerates to 0 ("no demand").
func (c *Calculator) AverageDemand(history []float64) float64 {
	valid := entities.FilterDemandHistory(history)
	if len(valid) == 0 {
		return 0
	}
	return mean(valid)
}

// mean computes the arithmetic mean of already-filtered samples
func mean(samples []float64) float64 {
	sum := 0.0
	for _, v := range samples {
		sum += v
	}
	return sum / float64(len(samples))
}

// sampleStdDev computes the sample standard deviation (n-1 divisor) of
// already-filtered samples around a known mean. One sample shows no spread,
// so n <= 1 yields 0 rather than an error.
func sampleStdDev(samples []float64, mean float64) float64 {
	n := len(samples)
	if n <= 1 {
		return 0
	}
	sumSquares := 0.0
	for _, v := range samples {
		dev := v - mean
		sumSquares += dev * dev
	}
	return math.Sqrt(sumSquares / float64(n-1))
}
