package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// record is the on-disk shape of one expense. Field order matches the
// marshaled output; amounts are written as bare JSON numbers.
type record struct {
	Date        string      `json:"date"`
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
}

// ReadExpenses decodes a ledger file: a JSON list of expense objects. Every
// record is validated on the way in, so a ledger loaded from disk satisfies
// the same constraints as one built in memory.
func ReadExpenses(r io.Reader) ([]model.Expense, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var records []record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding ledger JSON: %w", err)
	}

	var expenses []model.Expense
	for i, rec := range records {
		amount, err := decimal.NewFromString(rec.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("record %d: parsing amount %q: %w", i, rec.Amount, err)
		}
		e, err := model.New(rec.Date, amount, rec.Category, rec.Description)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// WriteExpenses encodes a ledger as pretty-indented UTF-8 JSON with stable
// field order, one object per expense in ledger order.
func WriteExpenses(w io.Writer, expenses []model.Expense) error {
	records := make([]record, len(expenses))
	for i, e := range expenses {
		records[i] = record{
			Date:        e.Date,
			Amount:      json.Number(e.Amount.String()),
			Category:    string(e.Category),
			Description: e.Description,
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding ledger JSON: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing ledger JSON: %w", err)
	}
	return nil
}
