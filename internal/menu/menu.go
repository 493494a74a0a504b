// Package menu implements the interactive numbered-menu session around the
// ledger. It is thin I/O glue: input collection, coercion, and rendering,
// with all real work delegated to store, report, and export.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/export"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/report"
	"github.com/tally-dev/tally/internal/store"
)

// Menu drives one interactive session over a Store.
type Menu struct {
	cfg        *config.Config
	store      *store.Store
	exportPath string
	in         *bufio.Scanner
	out        io.Writer
}

// New creates a Menu reading choices from in and rendering to out.
func New(cfg *config.Config, st *store.Store, exportPath string, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		cfg:        cfg,
		store:      st,
		exportPath: exportPath,
		in:         bufio.NewScanner(in),
		out:        out,
	}
}

// Run loops until the user picks Exit or input ends.
func (m *Menu) Run() {
	for {
		m.printActions()
		choice, ok := m.prompt("Enter choice: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			m.addExpense()
		case "2":
			m.viewExpenses()
		case "3":
			m.searchExpenses()
		case "4":
			m.monthlyReport()
		case "5":
			m.categoryReport()
		case "6":
			m.statistics()
		case "7":
			m.exportCSV()
		case "0":
			fmt.Fprintln(m.out, "Thank you for using tally!")
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice!")
		}
	}
}

func (m *Menu) printActions() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, strings.Repeat("=", 50))
	fmt.Fprintln(m.out, "        PERSONAL EXPENSE LEDGER")
	fmt.Fprintln(m.out, strings.Repeat("=", 50))
	fmt.Fprintln(m.out, "1. Add Expense")
	fmt.Fprintln(m.out, "2. View Expenses")
	fmt.Fprintln(m.out, "3. Search Expenses")
	fmt.Fprintln(m.out, "4. Monthly Report")
	fmt.Fprintln(m.out, "5. Category Report")
	fmt.Fprintln(m.out, "6. View Statistics")
	fmt.Fprintln(m.out, "7. Export to CSV")
	fmt.Fprintln(m.out, "0. Exit")
}

// prompt prints a label and reads one trimmed line. ok is false once input
// is exhausted.
func (m *Menu) prompt(label string) (line string, ok bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptDate re-prompts until it gets a well-formed calendar date.
func (m *Menu) promptDate() (string, bool) {
	for {
		s, ok := m.prompt("Date (YYYY-MM-DD): ")
		if !ok {
			return "", false
		}
		if _, err := time.Parse(model.DateFormat, s); err == nil {
			return s, true
		}
		fmt.Fprintln(m.out, "Invalid date, expected YYYY-MM-DD.")
	}
}

// promptAmount re-prompts until it gets a positive decimal.
func (m *Menu) promptAmount() (decimal.Decimal, bool) {
	for {
		s, ok := m.prompt("Amount: ")
		if !ok {
			return decimal.Zero, false
		}
		amount, err := decimal.NewFromString(s)
		if err == nil && amount.IsPositive() {
			return amount, true
		}
		fmt.Fprintln(m.out, "Invalid amount, expected a positive number.")
	}
}

func (m *Menu) addExpense() {
	date, ok := m.promptDate()
	if !ok {
		return
	}
	amount, ok := m.promptAmount()
	if !ok {
		return
	}

	names := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		names[i] = string(c)
	}
	fmt.Fprintln(m.out, "Categories:", strings.Join(names, ", "))
	category, ok := m.prompt("Category: ")
	if !ok {
		return
	}
	description, ok := m.prompt("Description: ")
	if !ok {
		return
	}

	e, err := model.New(date, amount, category, description)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid input! Expense not added.")
		return
	}

	m.store.Append(e)
	m.store.Persist()
	fmt.Fprintln(m.out, "Expense added successfully!")
}

func (m *Menu) viewExpenses() {
	if m.store.Len() == 0 {
		fmt.Fprintln(m.out, "No expenses found.")
		return
	}
	fmt.Fprintln(m.out)
	WriteTable(m.out, m.store.Expenses())
}

func (m *Menu) searchExpenses() {
	keyword, ok := m.prompt("Search keyword: ")
	if !ok {
		return
	}

	matches := report.Search(m.store.Expenses(), keyword)
	if len(matches) == 0 {
		fmt.Fprintln(m.out, "No matching expenses.")
		return
	}
	WriteTable(m.out, matches)
}

func (m *Menu) monthlyReport() {
	month, ok := m.prompt("Enter month (YYYY-MM): ")
	if !ok {
		return
	}

	total := report.MonthlyTotal(m.store.Expenses(), month)
	fmt.Fprintf(m.out, "Total expenses for %s: %s%s\n",
		month, m.cfg.Display.CurrencySymbol, total.StringFixed(2))
}

func (m *Menu) categoryReport() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Category-wise Breakdown")
	fmt.Fprintln(m.out, strings.Repeat("-", 30))
	for _, row := range report.CategoryBreakdown(m.store.Expenses()) {
		fmt.Fprintf(m.out, "%-15s: %s%s\n",
			row.Category, m.cfg.Display.CurrencySymbol, row.Total.StringFixed(2))
	}
}

func (m *Menu) statistics() {
	stats, err := report.Statistics(m.store.Expenses())
	if errors.Is(err, report.ErrEmptyLedger) {
		fmt.Fprintln(m.out, "No data available.")
		return
	}

	sym := m.cfg.Display.CurrencySymbol
	fmt.Fprintf(m.out, "Total Expenses : %s%s\n", sym, stats.Total.StringFixed(2))
	fmt.Fprintf(m.out, "Highest Expense: %s%s\n", sym, stats.Max.StringFixed(2))
	fmt.Fprintf(m.out, "Lowest Expense : %s%s\n", sym, stats.Min.StringFixed(2))
	fmt.Fprintf(m.out, "Average Expense: %s%s\n", sym, stats.Mean.StringFixed(2))
}

func (m *Menu) exportCSV() {
	if err := export.WriteFile(m.exportPath, m.store.Expenses()); err != nil {
		fmt.Fprintln(m.out, "Export failed:", err)
		return
	}
	fmt.Fprintln(m.out, "Data exported to CSV successfully!")
}
