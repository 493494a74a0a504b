// Package export serializes the ledger to a flat CSV table for use outside
// tally (spreadsheets, other tooling).
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/tally-dev/tally/internal/model"
)

// Header is the CSV header row of an export file.
var Header = []string{"Date", "Amount", "Category", "Description"}

// Write writes the header and one row per expense, in ledger order. Amounts
// are rendered to two decimal places.
func Write(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range expenses {
		row := []string{e.Date, e.Amount.StringFixed(2), string(e.Category), e.Description}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteFile writes the export artifact to path, replacing any previous one.
func WriteFile(path string, expenses []model.Expense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := Write(f, expenses); err != nil {
		return fmt.Errorf("exporting ledger: %w", err)
	}
	return nil
}
