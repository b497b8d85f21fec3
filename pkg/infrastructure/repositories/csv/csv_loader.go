package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Loader handles loading demand history data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadDemandHistory loads one SKU's ordered daily-demand samples from a CSV
// file with a "date,quantity" header. Row order is the sample order.
// Quantities are parsed exactly and may be negative; filtering invalid
// samples is the calculators' responsibility, not the loader's. Unparseable
// text is a file-format error and reported with its row number.
func (l *Loader) LoadDemandHistory(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open demand history file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read demand history CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("demand history CSV must have header and at least one data row")
	}

	// Validate header
	expectedHeader := []string{"date", "quantity"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("demand history CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var history []float64
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("demand history CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		if _, err := time.Parse("2006-01-02", record[0]); err != nil {
			return nil, fmt.Errorf("invalid date format in row %d: %s (expected YYYY-MM-DD)", i+2, record[0])
		}

		quantity, err := decimal.NewFromString(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in row %d: %s", i+2, record[1])
		}

		history = append(history, quantity.InexactFloat64())
	}

	return history, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}
