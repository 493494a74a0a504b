package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/menu"
)

func newListCommand(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recorded expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := openLedger(cmd, log)
			if err != nil {
				return err
			}
			if st.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No expenses found.")
				return nil
			}
			menu.WriteTable(cmd.OutOrStdout(), st.Expenses())
			return nil
		},
	}
}
