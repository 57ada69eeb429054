package cli

import (
	"github.com/spf13/cobra"
	"github.com/thruflo/chores/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "chores",
	Short: "Household chore manager with rules and multiple agents",
	Long: `Chores simulates a small household: a few chores, each gated on the state
of the house, carried out by named agents in priority order. Runs can be
unbounded or limited by a time budget in minutes.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logging.SetLevel(logging.LevelDebug)
		}
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("chores version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every dispatch decision to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
