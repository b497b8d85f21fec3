package commands

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockcast/stockcast/pkg/domain/entities"
)

func writeHistoryFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "demand.csv")
	content := `date,quantity
2026-08-01,10
2026-08-02,12
2026-08-03,15
2026-08-04,9
2026-08-05,11
2026-08-06,13
2026-08-07,10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func baseConfig(t *testing.T, dir string) Config {
	t.Helper()
	return Config{
		HistoryFile:  writeHistoryFile(t, dir),
		CurrentStock: 50,
		LeadTimeDays: 5,
		ZScore:       Unset,
		OrderCost:    Unset,
		HoldingCost:  Unset,
		DaysPerYear:  Unset,
		Format:       "json",
		OutputDir:    dir,
	}
}

func TestForecastCommand_Execute(t *testing.T) {
	dir := t.TempDir()
	cmd, err := NewForecastCommand(baseConfig(t, dir))
	require.NoError(t, err)

	require.NoError(t, cmd.Execute(context.Background()))

	data, err := os.ReadFile(filepath.Join(dir, "forecast.json"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 11.43, decoded["avgDailyDemand"])
	assert.Equal(t, "HIGH", decoded["stockoutRisk"])
	assert.NotContains(t, decoded, "insights")
}

func TestForecastCommand_ExecuteWithInsights(t *testing.T) {
	dir := t.TempDir()
	cfg := baseConfig(t, dir)
	cfg.Insights = true

	cmd, err := NewForecastCommand(cfg)
	require.NoError(t, err)
	require.NoError(t, cmd.Execute(context.Background()))

	data, err := os.ReadFile(filepath.Join(dir, "forecast.json"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Contains(t, decoded, "insights")
}

func TestForecastCommand_MissingHistoryFlag(t *testing.T) {
	cfg := baseConfig(t, t.TempDir())
	cfg.HistoryFile = ""

	cmd, err := NewForecastCommand(cfg)
	require.NoError(t, err)

	err = cmd.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history")
}

func TestForecastCommand_InvalidFormat(t *testing.T) {
	cfg := baseConfig(t, t.TempDir())
	cfg.Format = "xml"

	cmd, err := NewForecastCommand(cfg)
	require.NoError(t, err)

	err = cmd.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestForecastCommand_ResolvePolicy(t *testing.T) {
	dir := t.TempDir()
	policyPath := filepath.Join(dir, "policy.yaml")
	require.NoError(t, os.WriteFile(policyPath, []byte("z_score: 2.33\norder_cost: 80\n"), 0644))

	cfg := baseConfig(t, dir)
	cfg.PolicyFile = policyPath
	cfg.OrderCost = 120 // flag overrides the file

	cmd, err := NewForecastCommand(cfg)
	require.NoError(t, err)

	policy, err := cmd.resolvePolicy()
	require.NoError(t, err)

	assert.Equal(t, 2.33, policy.ZScore)
	assert.Equal(t, 120.0, policy.OrderCost)
	assert.Equal(t, entities.DefaultHoldingCost, policy.HoldingCost)
}

func TestForecastCommand_ResolvePolicy_UnsetFlagsKeepDefaults(t *testing.T) {
	cmd, err := NewForecastCommand(baseConfig(t, t.TempDir()))
	require.NoError(t, err)

	policy, err := cmd.resolvePolicy()
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultPolicy(), policy)
}
