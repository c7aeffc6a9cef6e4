package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "Personal income and expense tracker",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default $LEDGER_CONFIG or data/config.yaml)")

	rootCmd.AddCommand(
		newServeCommand(&configPath),
		newMigrateCommand(&configPath),
		newSummaryCommand(&configPath),
		newGiveHomeCommand(&configPath),
		newUndoHomeCommand(&configPath),
		newReportCommand(&configPath),
		newEventsCommand(&configPath),
		newHashPasswordCommand(),
	)

	return rootCmd
}
