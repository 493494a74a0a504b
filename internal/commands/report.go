package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/report"
)

func newReportCommand(log *logrus.Logger) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Derive reports from the ledger",
	}
	reportCmd.AddCommand(newReportMonthCommand(log))
	reportCmd.AddCommand(newReportCategoriesCommand(log))
	return reportCmd
}

func newReportMonthCommand(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "month <YYYY-MM>",
		Short: "Total expenses for a month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := openLedger(cmd, log)
			if err != nil {
				return err
			}

			total := report.MonthlyTotal(st.Expenses(), args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Total expenses for %s: %s%s\n",
				args[0], cfg.Display.CurrencySymbol, total.StringFixed(2))
			return nil
		},
	}
}

func newReportCategoriesCommand(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Per-category expense totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := openLedger(cmd, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Category-wise Breakdown")
			fmt.Fprintln(out, "------------------------------")
			for _, row := range report.CategoryBreakdown(st.Expenses()) {
				fmt.Fprintf(out, "%-15s: %s%s\n",
					row.Category, cfg.Display.CurrencySymbol, row.Total.StringFixed(2))
			}
			return nil
		},
	}
}
