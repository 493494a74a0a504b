// Package report derives search results and summary figures from an expense
// ledger. Every function is pure: the input slice is never mutated.
package report

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// ErrEmptyLedger is reported when statistics are requested with no data.
var ErrEmptyLedger = errors.New("no expenses recorded")

// Search returns the expenses whose description contains the keyword,
// case-insensitively, in ledger order. An empty keyword matches everything.
func Search(expenses []model.Expense, keyword string) []model.Expense {
	keyword = strings.ToLower(keyword)

	var matches []model.Expense
	for _, e := range expenses {
		if strings.Contains(strings.ToLower(e.Description), keyword) {
			matches = append(matches, e)
		}
	}
	return matches
}

// MonthlyTotal sums the amounts of every expense dated within the given
// "YYYY-MM" month. A month with no expenses totals zero.
func MonthlyTotal(expenses []model.Expense, month string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if strings.HasPrefix(e.Date, month) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// CategoryTotal is one row of a category breakdown.
type CategoryTotal struct {
	Category model.Category
	Total    decimal.Decimal
}

// CategoryBreakdown sums amounts per category. Only categories present in the
// ledger appear, ordered by first appearance; the order is part of the
// contract so report rows stay stable as the ledger grows.
func CategoryBreakdown(expenses []model.Expense) []CategoryTotal {
	totals := make(map[model.Category]decimal.Decimal)
	var order []model.Category
	for _, e := range expenses {
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}

	breakdown := make([]CategoryTotal, len(order))
	for i, c := range order {
		breakdown[i] = CategoryTotal{Category: c, Total: totals[c]}
	}
	return breakdown
}

// Stats summarizes the amounts across a whole ledger.
type Stats struct {
	Total decimal.Decimal
	Max   decimal.Decimal
	Min   decimal.Decimal
	Mean  decimal.Decimal
}

// Statistics computes sum, max, min, and arithmetic mean over all amounts.
// Returns ErrEmptyLedger when there is nothing to summarize.
func Statistics(expenses []model.Expense) (Stats, error) {
	if len(expenses) == 0 {
		return Stats{}, ErrEmptyLedger
	}

	st := Stats{
		Total: decimal.Zero,
		Max:   expenses[0].Amount,
		Min:   expenses[0].Amount,
	}
	for _, e := range expenses {
		st.Total = st.Total.Add(e.Amount)
		if e.Amount.GreaterThan(st.Max) {
			st.Max = e.Amount
		}
		if e.Amount.LessThan(st.Min) {
			st.Min = e.Amount
		}
	}
	st.Mean = st.Total.Div(decimal.NewFromInt(int64(len(expenses))))
	return st, nil
}
