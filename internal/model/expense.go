package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies an expense.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryBills         Category = "Bills"
	CategoryShopping      Category = "Shopping"
	CategoryOther         Category = "Other"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryBills,
	CategoryShopping,
	CategoryOther,
}

// DateFormat is the wire and display format for expense dates.
const DateFormat = "2006-01-02"

// Expense is one recorded expense. Expenses are immutable once constructed
// and have no identity beyond their position in the ledger.
type Expense struct {
	Date        string // "YYYY-MM-DD"
	Amount      decimal.Decimal
	Category    Category
	Description string
}

// ValidationError describes a rejected expense field at construction time.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NormalizeCategory maps an arbitrary string onto the known category set.
// Anything outside the set becomes Other; this is leniency, not an error.
func NormalizeCategory(s string) Category {
	for _, c := range Categories {
		if string(c) == s {
			return c
		}
	}
	return CategoryOther
}

// New validates and constructs an Expense. The date must be a real calendar
// date in "YYYY-MM-DD" form and the amount must be positive; the category is
// normalized rather than rejected.
func New(date string, amount decimal.Decimal, category, description string) (Expense, error) {
	if _, err := time.Parse(DateFormat, date); err != nil {
		return Expense{}, &ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a YYYY-MM-DD calendar date", date)}
	}
	if !amount.IsPositive() {
		return Expense{}, &ValidationError{Field: "amount", Reason: fmt.Sprintf("%s is not positive", amount)}
	}

	return Expense{
		Date:        date,
		Amount:      amount,
		Category:    NormalizeCategory(category),
		Description: description,
	}, nil
}
