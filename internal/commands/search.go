package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/menu"
	"github.com/tally-dev/tally/internal/report"
)

func newSearchCommand(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search expense descriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := openLedger(cmd, log)
			if err != nil {
				return err
			}

			matches := report.Search(st.Expenses(), args[0])
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching expenses.")
				return nil
			}
			menu.WriteTable(cmd.OutOrStdout(), matches)
			return nil
		},
	}
}
