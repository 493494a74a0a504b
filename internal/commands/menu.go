package commands

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/menu"
)

func newMenuCommand(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := openLedger(cmd, log)
			if err != nil {
				return err
			}

			dir, err := ledgerDir(cmd)
			if err != nil {
				return err
			}

			m := menu.New(cfg, st, cfg.PathsIn(dir).Export, os.Stdin, cmd.OutOrStdout())
			m.Run()
			return nil
		},
	}
}
