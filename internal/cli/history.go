package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thruflo/chores/internal/history"
	"github.com/thruflo/chores/internal/world"
)

// RunStore abstracts run storage for testability.
type RunStore interface {
	ListRuns() ([]*history.Run, error)
	GetRun(id string) (*history.Run, error)
	DeleteRun(id string) error
}

// historyStore is the run store used by the history commands.
// It can be overridden in tests.
var historyStore RunStore

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "Show recorded runs",
	Long: `Shows runs recorded with 'chores run --record'.

Without arguments, lists all runs with their start time, result and progress.
With an id (or a unique prefix of one), shows the details of that run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

var historyRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a recorded run",
	Long:  `Deletes the run with the given id (or a unique prefix of one) from .chores/runs/.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRm,
}

func init() {
	historyCmd.AddCommand(historyRmCmd)
	rootCmd.AddCommand(historyCmd)
}

func openHistoryStore() (RunStore, error) {
	if historyStore != nil {
		return historyStore, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return history.NewStore(cwd), nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openHistoryStore()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		return listRuns(out, store)
	}
	return showRun(out, store, args[0])
}

func runHistoryRm(cmd *cobra.Command, args []string) error {
	store, err := openHistoryStore()
	if err != nil {
		return err
	}

	r, err := store.GetRun(args[0])
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}
	if err := store.DeleteRun(r.ID); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", r.ID)
	return nil
}

func listRuns(w io.Writer, store RunStore) error {
	runs, err := store.ListRuns()
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	reasonWidth := len("RESULT")
	for _, r := range runs {
		if len(r.Reason) > reasonWidth {
			reasonWidth = len(r.Reason)
		}
	}

	fmt.Fprintf(w, "%-8s  %-19s  %-*s  %s\n", "ID", "STARTED", reasonWidth, "RESULT", "TASKS")
	fmt.Fprintf(w, "%s  %s  %s  %s\n", strings.Repeat("-", 8), strings.Repeat("-", 19), strings.Repeat("-", reasonWidth), "-----")

	for _, r := range runs {
		total := len(r.Completed) + len(r.Pending)
		fmt.Fprintf(w, "%-8s  %-19s  %-*s  %d/%d\n",
			shortID(r.ID), r.StartedAt.Format("2006-01-02 15:04:05"), reasonWidth, r.Reason, len(r.Completed), total)
	}

	return nil
}

func showRun(w io.Writer, store RunStore, id string) error {
	r, err := store.GetRun(id)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	fmt.Fprintln(w, "Run Details")
	fmt.Fprintln(w, "===========")
	fmt.Fprintln(w)

	printField(w, "ID", r.ID)
	printField(w, "Started", r.StartedAt.Format("2006-01-02 15:04:05"))
	printField(w, "Duration", r.FinishedAt.Sub(r.StartedAt).String())
	printField(w, "Result", r.Reason)
	printField(w, "Passes", fmt.Sprintf("%d", r.Passes))
	printField(w, "Attempts", fmt.Sprintf("%d", r.Attempts))
	if r.TimeBudgetMinutes > 0 {
		printField(w, "Time budget", fmt.Sprintf("%d minutes (%d left)", r.TimeBudgetMinutes, r.RemainingMinutes))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "State")
	fmt.Fprintln(w, "-----")
	printField(w, "Initial", world.State(r.InitialState).String())
	printField(w, "Final", world.State(r.FinalState).String())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Tasks")
	fmt.Fprintln(w, "-----")
	for _, name := range r.Completed {
		printField(w, name, "done by "+r.Assignments[name])
	}
	for _, name := range r.Pending {
		agent := r.Assignments[name]
		if agent == "" {
			agent = "unassigned"
		}
		printField(w, name, "pending ("+agent+")")
	}

	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-14s %s\n", label+":", value)
}
