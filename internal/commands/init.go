package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/store"
)

func newInitCommand(log *logrus.Logger) *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new tally ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), log, absDir, currency)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "$", "currency symbol used in reports")

	return cmd
}

func runInit(out io.Writer, log *logrus.Logger, dir, currency string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating ledger directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("ledger already initialized at %s", dir)
	}

	cfg := config.Default()
	cfg.Display.CurrencySymbol = currency
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write an empty primary file so the first session starts from a valid
	// ledger rather than an absent one.
	store.Open(cfg.PathsIn(dir), log).Persist()

	fmt.Fprintf(out, "Initialized tally ledger at %s\n", dir)
	return nil
}
