package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/tally-dev/tally/internal/model"
)

// WriteTable renders expenses as an aligned table in ledger order.
func WriteTable(w io.Writer, expenses []model.Expense) {
	fmt.Fprintf(w, "%-12s%9s  %-15s%s\n", "Date", "Amount", "Category", "Description")
	fmt.Fprintln(w, strings.Repeat("-", 55))
	for _, e := range expenses {
		fmt.Fprintf(w, "%-12s%9s  %-15s%s\n",
			e.Date, e.Amount.StringFixed(2), e.Category, e.Description)
	}
}
