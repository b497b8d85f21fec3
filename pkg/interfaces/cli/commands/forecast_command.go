package commands

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/stockcast/stockcast/pkg/application/dto"
	"github.com/stockcast/stockcast/pkg/application/services/orchestration"
	"github.com/stockcast/stockcast/pkg/domain/entities"
	"github.com/stockcast/stockcast/pkg/infrastructure/config"
	"github.com/stockcast/stockcast/pkg/infrastructure/repositories/csv"
	"github.com/stockcast/stockcast/pkg/interfaces/cli/output"
)

// Unset marks an optional numeric flag the user did not pass, so the policy
// default (or policy-file value) stays in effect. Every valid override is
// non-negative, so a negative sentinel cannot collide with real input.
const Unset = -1

// Config holds configuration for the forecast command
type Config struct {
	HistoryFile  string
	CurrentStock float64
	LeadTimeDays float64
	ZScore       float64
	OrderCost    float64
	HoldingCost  float64
	DaysPerYear  float64
	PolicyFile   string
	OutputDir    string
	Format       string
	Insights     bool
	Verbose      bool
	Help         bool
}

// ForecastCommand handles the main forecast execution logic
type ForecastCommand struct {
	config Config
	logger *zap.Logger
}

// NewForecastCommand creates a new forecast command with the given configuration
func NewForecastCommand(cfg Config) (*ForecastCommand, error) {
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &ForecastCommand{
		config: cfg,
		logger: logger,
	}, nil
}

// newLogger builds the CLI logger: a development logger in verbose mode, a
// warn-level production logger otherwise
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return zapCfg.Build()
}

// Execute runs the forecast command
func (c *ForecastCommand) Execute(ctx context.Context) error {
	defer func() { _ = c.logger.Sync() }()

	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	policy, err := c.resolvePolicy()
	if err != nil {
		return fmt.Errorf("failed to resolve policy: %w", err)
	}
	c.logger.Debug("policy resolved",
		zap.Float64("z_score", policy.ZScore),
		zap.Float64("order_cost", policy.OrderCost),
		zap.Float64("holding_cost", policy.HoldingCost),
		zap.Float64("days_per_year", policy.BusinessDaysPerYear))

	csvLoader := csv.NewLoader()
	history, err := csvLoader.LoadDemandHistory(c.config.HistoryFile)
	if err != nil {
		return fmt.Errorf("error loading demand history: %w", err)
	}
	c.logger.Info("demand history loaded",
		zap.String("file", c.config.HistoryFile),
		zap.Int("samples", len(history)))

	orchestrator := orchestration.NewForecastOrchestratorWithPolicy(policy)

	var result *dto.ForecastResult
	if c.config.Insights {
		result = orchestrator.ForecastWithInsights(history, c.config.CurrentStock, c.config.LeadTimeDays)
	} else {
		result = orchestrator.Forecast(history, c.config.CurrentStock, c.config.LeadTimeDays)
	}
	c.logger.Info("forecast generated",
		zap.String("risk", result.StockoutRisk.String()),
		zap.String("days_remaining", result.DaysRemaining.String()))

	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	}
	if err := output.Generate(result, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	return nil
}

// validateInputs checks the command configuration
func (c *ForecastCommand) validateInputs() error {
	if c.config.HistoryFile == "" {
		return fmt.Errorf("demand history file is required (use -history)")
	}

	if c.config.Format != "text" && c.config.Format != "json" {
		return fmt.Errorf("invalid format %q (expected 'text' or 'json')", c.config.Format)
	}

	return nil
}

// resolvePolicy merges defaults, the optional policy file, and flag
// overrides, in that order of precedence
func (c *ForecastCommand) resolvePolicy() (entities.Policy, error) {
	policy := entities.DefaultPolicy()

	if c.config.PolicyFile != "" {
		loaded, err := config.LoadPolicy(c.config.PolicyFile)
		if err != nil {
			return entities.Policy{}, err
		}
		policy = loaded
	}

	if isSet(c.config.ZScore) {
		policy.ZScore = c.config.ZScore
	}
	if isSet(c.config.OrderCost) {
		policy.OrderCost = c.config.OrderCost
	}
	if isSet(c.config.HoldingCost) {
		policy.HoldingCost = c.config.HoldingCost
	}
	if isSet(c.config.DaysPerYear) {
		policy.BusinessDaysPerYear = c.config.DaysPerYear
	}

	if err := policy.Validate(); err != nil {
		return entities.Policy{}, err
	}

	return policy, nil
}

// isSet reports whether an optional numeric flag carries a real override
func isSet(v float64) bool {
	return v != Unset && !math.IsNaN(v) && v >= 0
}

// showHelp displays usage information
func (c *ForecastCommand) showHelp() {
	fmt.Println(`stockcast - short-term inventory demand forecasting

Usage:
  stockcast -history <file.csv> -stock <units> -lead-time <days> [options]

Required:
  -history       Path to demand history CSV (header: date,quantity)
  -stock         Current stock level in units
  -lead-time     Supplier lead time in days

Options:
  -z-score       Service-level factor (default 1.65, ~95% service level)
  -order-cost    Cost per replenishment order (default 100)
  -holding-cost  Holding cost per unit per year (default 10)
  -days-per-year Business days used to annualize demand (default 250)
  -policy        Path to a YAML policy file overriding planning constants
  -output        Directory to save results in addition to stdout
  -format        Output format: text, json (default text)
  -insights      Attach human-readable insight signals
  -verbose       Enable verbose logging
  -help          Show this help message

Examples:
  stockcast -history demand.csv -stock 50 -lead-time 5
  stockcast -history demand.csv -stock 50 -lead-time 5 -format json -insights
  stockcast -history demand.csv -stock 50 -lead-time 5 -policy policy.yaml`)
}
