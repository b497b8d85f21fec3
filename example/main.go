package main

import (
	"fmt"

	"github.com/stockcast/stockcast/pkg/application/services/orchestration"
	"github.com/stockcast/stockcast/pkg/interfaces/cli/output"
)

func main() {
	// A week of daily demand for one SKU
	history := []float64{10, 12, 15, 9, 11, 13, 10}
	currentStock := 50.0
	leadTimeDays := 5.0

	fmt.Println("📦 Forecasting inventory demand...")
	fmt.Printf("History: %v, stock: %.0f units, lead time: %.0f days\n\n",
		history, currentStock, leadTimeDays)

	orchestrator := orchestration.NewForecastOrchestrator()
	result := orchestrator.ForecastWithInsights(history, currentStock, leadTimeDays)

	fmt.Print(output.RenderText(result))
}
