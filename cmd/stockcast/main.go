package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/stockcast/stockcast/pkg/interfaces/cli/commands"
)

func main() {
	_ = godotenv.Load() // Load .env file if it exists

	// Command line flags
	var (
		historyFile = flag.String(
			"history",
			"",
			"Path to demand history CSV file (header: date,quantity)",
		)
		currentStock = flag.Float64("stock", 0, "Current stock level in units")
		leadTimeDays = flag.Float64("lead-time", 0, "Supplier lead time in days")
		zScore       = flag.Float64("z-score", commands.Unset, "Service-level factor (default 1.65)")
		orderCost    = flag.Float64("order-cost", commands.Unset, "Cost per replenishment order (default 100)")
		holdingCost  = flag.Float64("holding-cost", commands.Unset, "Holding cost per unit per year (default 10)")
		daysPerYear  = flag.Float64("days-per-year", commands.Unset, "Business days per year (default 250)")
		policyFile   = flag.String("policy", os.Getenv("STOCKCAST_POLICY"), "Path to YAML policy file (optional)")
		outputDir    = flag.String("output", "", "Output directory for results (optional)")
		format       = flag.String("format", "text", "Output format: text, json")
		insights     = flag.Bool("insights", false, "Attach human-readable insight signals")
		verbose      = flag.Bool("verbose", false, "Enable verbose output")
		help         = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		HistoryFile:  *historyFile,
		CurrentStock: *currentStock,
		LeadTimeDays: *leadTimeDays,
		ZScore:       *zScore,
		OrderCost:    *orderCost,
		HoldingCost:  *holdingCost,
		DaysPerYear:  *daysPerYear,
		PolicyFile:   *policyFile,
		OutputDir:    *outputDir,
		Format:       *format,
		Insights:     *insights,
		Verbose:      *verbose,
		Help:         *help,
	}

	// Create and execute command
	cmd, err := commands.NewForecastCommand(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
