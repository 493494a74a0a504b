package commands

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/buildinfo"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(log *logrus.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Single-user personal expense ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("ledger", ".", "ledger directory")

	rootCmd.AddCommand(newInitCommand(log))
	rootCmd.AddCommand(newAddCommand(log))
	rootCmd.AddCommand(newListCommand(log))
	rootCmd.AddCommand(newSearchCommand(log))
	rootCmd.AddCommand(newReportCommand(log))
	rootCmd.AddCommand(newStatsCommand(log))
	rootCmd.AddCommand(newExportCommand(log))
	rootCmd.AddCommand(newMenuCommand(log))

	return rootCmd
}

// ledgerDir resolves the --ledger flag to an absolute path.
func ledgerDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString("ledger")
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return abs, nil
}

// openLedger loads the ledger directory's config and opens its store.
func openLedger(cmd *cobra.Command, log *logrus.Logger) (*config.Config, *store.Store, error) {
	dir, err := ledgerDir(cmd)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.LoadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	return cfg, store.Open(cfg.PathsIn(dir), log), nil
}
