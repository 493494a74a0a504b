package commands

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/report"
)

func newStatsCommand(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summary statistics over all expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := openLedger(cmd, log)
			if err != nil {
				return err
			}

			stats, err := report.Statistics(st.Expenses())
			if errors.Is(err, report.ErrEmptyLedger) {
				fmt.Fprintln(cmd.OutOrStdout(), "No data available.")
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			sym := cfg.Display.CurrencySymbol
			fmt.Fprintf(out, "Total Expenses : %s%s\n", sym, stats.Total.StringFixed(2))
			fmt.Fprintf(out, "Highest Expense: %s%s\n", sym, stats.Max.StringFixed(2))
			fmt.Fprintf(out, "Lowest Expense : %s%s\n", sym, stats.Min.StringFixed(2))
			fmt.Fprintf(out, "Average Expense: %s%s\n", sym, stats.Mean.StringFixed(2))
			return nil
		},
	}
}
