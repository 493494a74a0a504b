package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/model"
)

func newAddCommand(log *logrus.Logger) *cobra.Command {
	var date string
	var amount string
	var category string
	var description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amount, err)
			}

			e, err := model.New(date, amt, category, description)
			if err != nil {
				return err
			}

			_, st, err := openLedger(cmd, log)
			if err != nil {
				return err
			}
			st.Append(e)
			st.Persist()

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s expense of %s on %s\n",
				e.Category, e.Amount.StringFixed(2), e.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", time.Now().Format(model.DateFormat), "expense date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&amount, "amount", "", "expense amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&category, "category", string(model.CategoryOther), "expense category")
	cmd.Flags().StringVar(&description, "desc", "", "free-form description")

	return cmd
}
