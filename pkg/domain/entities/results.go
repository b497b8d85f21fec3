package entities

// SafetyStockResult holds demand variability and the buffer quantity it
// implies over the supplier lead time. Both fields are rounded to 2
// decimals in the returned value.
type SafetyStockResult struct {
	StdDev      float64 `json:"stdDev"`
	SafetyStock float64 `json:"safetyStock"`
}

// ReorderPointResult holds the replenishment threshold along with the
// statistics it was derived from
type ReorderPointResult struct {
	AvgDailyDemand float64 `json:"avgDailyDemand"`
	SafetyStock    float64 `json:"safetyStock"`
	ReorderPoint   float64 `json:"reorderPoint"`
}

// EOQResult holds the annualized demand and the economic order quantity
type EOQResult struct {
	AnnualDemand float64 `json:"annualDemand"`
	EOQ          float64 `json:"eoq"`
}
