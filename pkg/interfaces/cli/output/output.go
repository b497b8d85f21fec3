package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stockcast/stockcast/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Generate creates output in the specified format
func Generate(result *dto.ForecastResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *dto.ForecastResult, config Config) error {
	report := RenderText(result)
	fmt.Print(report)

	// Save to file if output directory specified
	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		filename := filepath.Join(config.OutputDir, "forecast.txt")
		if err := os.WriteFile(filename, []byte(report), 0644); err != nil {
			return fmt.Errorf("failed to write text file: %w", err)
		}

		if config.Verbose {
			fmt.Printf("💾 Results saved to: %s\n", filename)
		}
	}

	return nil
}

// RenderText formats a forecast result as an aligned text report
func RenderText(result *dto.ForecastResult) string {
	var b strings.Builder

	b.WriteString("📊 Demand Forecast\n")
	b.WriteString("==================\n\n")

	fmt.Fprintf(&b, "%-22s %.2f units/day\n", "Average Daily Demand:", result.AvgDailyDemand)
	fmt.Fprintf(&b, "%-22s %s\n", "Days of Stock:", result.DaysRemaining)
	fmt.Fprintf(&b, "%-22s %s\n", "Stockout Risk:", result.StockoutRisk)
	fmt.Fprintf(&b, "%-22s %.2f\n", "Demand Std Dev:", result.DemandStdDev)
	fmt.Fprintf(&b, "%-22s %.2f units\n", "Safety Stock:", result.SafetyStock)
	fmt.Fprintf(&b, "%-22s %.2f units\n", "Reorder Point:", result.ReorderPoint)
	fmt.Fprintf(&b, "%-22s %.2f units\n", "Annual Demand:", result.AnnualDemand)
	fmt.Fprintf(&b, "%-22s %.2f units\n", "Order Quantity (EOQ):", result.EOQ)

	fmt.Fprintf(&b, "\nRecommendation: %s\n", result.Recommendation)

	if result.Insights != nil {
		b.WriteString("\n💡 Insights\n")
		b.WriteString("===========\n\n")
		fmt.Fprintf(&b, "Status:  %s\n", result.Insights.Status)
		fmt.Fprintf(&b, "Summary: %s\n\n", result.Insights.Summary)
		fmt.Fprintf(&b, "  - %s\n", result.Insights.DemandSignal)
		fmt.Fprintf(&b, "  - %s\n", result.Insights.VariabilitySignal)
		fmt.Fprintf(&b, "  - %s\n", result.Insights.BufferSignal)
		fmt.Fprintf(&b, "  - %s\n", result.Insights.ReorderSignal)
		fmt.Fprintf(&b, "  - %s\n", result.Insights.CostSignal)
		fmt.Fprintf(&b, "\n%s\n", result.Insights.Recommendation)
	}

	return b.String()
}

// generateJSONOutput creates JSON output
func generateJSONOutput(result *dto.ForecastResult, config Config) error {
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		// Print to stdout
		fmt.Println(string(jsonData))
	} else {
		// Save to file
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		filename := filepath.Join(config.OutputDir, "forecast.json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write JSON file: %w", err)
		}

		if config.Verbose {
			fmt.Printf("💾 JSON results saved to: %s\n", filename)
		}
	}

	return nil
}
