package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/export"
)

func newExportCommand(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the ledger to a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := openLedger(cmd, log)
			if err != nil {
				return err
			}

			dir, err := ledgerDir(cmd)
			if err != nil {
				return err
			}

			path := cfg.PathsIn(dir).Export
			if err := export.WriteFile(path, st.Expenses()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d expenses to %s\n", st.Len(), path)
			return nil
		},
	}
}
