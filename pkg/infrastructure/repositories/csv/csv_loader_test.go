package csv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demand.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_LoadDemandHistory(t *testing.T) {
	path := writeTempCSV(t, `date,quantity
2026-08-01,10
2026-08-02,12.5
2026-08-03,15
`)

	history, err := NewLoader().LoadDemandHistory(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 12.5, 15}, history)
}

func TestLoader_LoadDemandHistory_PreservesOrderAndNegatives(t *testing.T) {
	// Negative quantities are loaded as-is; discarding them is domain
	// policy, not the loader's.
	path := writeTempCSV(t, `date,quantity
2026-08-01,5
2026-08-02,-3
2026-08-03,7
`)

	history, err := NewLoader().LoadDemandHistory(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, -3, 7}, history)
}

func TestLoader_LoadDemandHistory_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadDemandHistory(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestLoader_LoadDemandHistory_HeaderMismatch(t *testing.T) {
	path := writeTempCSV(t, `sku,sold
2026-08-01,10
`)

	_, err := NewLoader().LoadDemandHistory(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header mismatch")
}

func TestLoader_LoadDemandHistory_BadQuantity(t *testing.T) {
	path := writeTempCSV(t, `date,quantity
2026-08-01,10
2026-08-02,lots
`)

	_, err := NewLoader().LoadDemandHistory(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestLoader_LoadDemandHistory_BadDate(t *testing.T) {
	path := writeTempCSV(t, `date,quantity
08/01/2026,10
`)

	_, err := NewLoader().LoadDemandHistory(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date format")
}

func TestLoader_LoadDemandHistory_NoRows(t *testing.T) {
	path := writeTempCSV(t, "date,quantity\n")

	_, err := NewLoader().LoadDemandHistory(path)
	assert.Error(t, err)
}
