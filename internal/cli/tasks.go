package cli

import (
	"github.com/spf13/cobra"
	"github.com/thruflo/chores/internal/chore"
	"github.com/thruflo/chores/internal/report"
	"github.com/thruflo/chores/internal/scheduler"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the chores in dispatch order",
	Long: `Lists the built-in chores with their priority, cost in minutes and the
condition that must hold before an agent can carry them out. Chores are shown
in the order the scheduler tries them.`,
	Args: cobra.NoArgs,
	RunE: runTasks,
}

func init() {
	rootCmd.AddCommand(tasksCmd)
}

func runTasks(cmd *cobra.Command, args []string) error {
	report.NewPrinter(cmd.OutOrStdout()).Tasks(scheduler.SortByPriority(chore.DefaultTasks()))
	return nil
}
