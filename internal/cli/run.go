package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thruflo/chores/internal/chore"
	"github.com/thruflo/chores/internal/config"
	"github.com/thruflo/chores/internal/history"
	"github.com/thruflo/chores/internal/logging"
	"github.com/thruflo/chores/internal/prompt"
	"github.com/thruflo/chores/internal/report"
	"github.com/thruflo/chores/internal/scheduler"
	"github.com/thruflo/chores/internal/world"
)

var (
	runBudget    int
	runTimed     bool
	runScenario  string
	runSet       []string
	runAssign    []string
	runMaxPasses int
	runRecord    bool
)

// runInput is where prompt answers are read from. Nil means the command's stdin.
// It can be overridden in tests.
var runInput io.Reader

// runInteractive reports whether questions may be asked.
// It can be overridden in tests.
var runInteractive = func() bool {
	return prompt.IsInteractive(os.Stdin)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the chore simulation",
	Long: `Runs the household chores in priority order until every chore is done.

Inputs come from a scenario file, from --set and --assign flags, and from
questions asked at the terminal for anything still missing. With --budget
(or --timed, which asks for one) each chore consumes minutes from the budget
and the run stops early when the remaining time runs out.

Without a budget the run is unbounded: if a chore's condition never holds the
run does not finish on its own. Use --max-passes or Ctrl-C to stop it.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVarP(&runBudget, "budget", "b", 0, "time budget in minutes (0 means unbounded)")
	runCmd.Flags().BoolVarP(&runTimed, "timed", "t", false, "ask for a time budget when none is given")
	runCmd.Flags().StringVarP(&runScenario, "scenario", "s", "", "scenario file with initial state, budget and assignments")
	runCmd.Flags().StringArrayVar(&runSet, "set", nil, "set a condition, e.g. --set sink_full=true")
	runCmd.Flags().StringArrayVar(&runAssign, "assign", nil, `assign an agent, e.g. --assign "wash dishes=Agent 1"`)
	runCmd.Flags().IntVar(&runMaxPasses, "max-passes", 0, "stop after this many passes (0 means no limit)")
	runCmd.Flags().BoolVar(&runRecord, "record", false, "save the run under .chores/runs/")
	rootCmd.AddCommand(runCmd)
}

// runInputs is everything a run needs before any question is asked.
type runInputs struct {
	state       map[string]bool
	assignments map[string]string // catalogue task name -> agent name
	budget      int
	maxPasses   int
	askBudget   bool
}

func runRun(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		return err
	}
	if !verbose {
		level, _ := logging.ParseLevel(cfg.LogLevel)
		logging.SetLevel(level)
	}

	in, err := collectInputs(cmd, cfg)
	if err != nil {
		return err
	}

	tasks := scheduler.SortByPriority(chore.DefaultTasks())
	if missing := missingInputs(in, tasks); len(missing) > 0 && !runInteractive() {
		return fmt.Errorf("stdin is not a terminal and no value was given for %s (use --scenario, --set and --assign)",
			strings.Join(missing, ", "))
	}

	out := cmd.OutOrStdout()
	printer := report.NewPrinter(out)
	printer.Banner()

	reader := runInput
	if reader == nil {
		reader = cmd.InOrStdin()
	}
	p := prompt.New(reader, out)

	st, err := p.InitialState(in.state)
	if err != nil {
		return fmt.Errorf("failed to read initial state: %w", err)
	}
	if in.askBudget {
		if in.budget, err = p.TimeBudget(); err != nil {
			return fmt.Errorf("failed to read time budget: %w", err)
		}
	}
	agents, err := p.AssignAgents(tasks, cfg.Agents, in.assignments)
	if err != nil {
		return fmt.Errorf("failed to assign agents: %w", err)
	}

	initial := st.Clone()
	sched, err := scheduler.New(scheduler.Options{
		Tasks:    tasks,
		Agents:   agents,
		State:    st,
		Limits:   scheduler.Limits{TimeBudget: in.budget, MaxPasses: in.maxPasses},
		Observer: printer,
	})
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	logging.Info("run started", "state", initial, "budget", in.budget, "max_passes", in.maxPasses)
	fmt.Fprintln(out)
	started := time.Now()
	res := sched.Run(ctx)
	printer.Summary(res)

	if res.Reason == scheduler.ExitReasonPassLimit {
		logging.Warn("run stopped by pass limit", "passes", res.Passes, "pending", strings.Join(res.Pending, ","))
	}

	if runRecord {
		run := history.NewRun(res, initial, agents, started, time.Now())
		if err := history.NewStore(cwd).SaveRun(run); err != nil {
			return fmt.Errorf("failed to record run: %w", err)
		}
		fmt.Fprintf(out, "\nRecorded run %s\n", run.ID)
	}

	return nil
}

// collectInputs merges config, scenario file and flags, in that order of
// precedence from lowest to highest.
func collectInputs(cmd *cobra.Command, cfg *config.Config) (runInputs, error) {
	in := runInputs{
		state:       make(map[string]bool),
		assignments: make(map[string]string),
		budget:      cfg.Limits.TimeBudgetMinutes,
		maxPasses:   cfg.Limits.MaxPasses,
	}
	catalogue := chore.DefaultTasks()

	if runScenario != "" {
		sc, err := config.LoadScenario(runScenario)
		if err != nil {
			return in, err
		}
		for k, v := range sc.State {
			in.state[k] = v
		}
		for name, agent := range sc.Assignments {
			task, _ := chore.FindTask(catalogue, name)
			in.assignments[task.Name] = strings.TrimSpace(agent)
		}
		if sc.TimeBudgetMinutes != nil {
			in.budget = *sc.TimeBudgetMinutes
		}
	}

	for _, pair := range runSet {
		key, value, err := world.ParseAssignment(pair)
		if err != nil {
			return in, err
		}
		if !slices.Contains(world.Conditions(), key) {
			return in, config.ValidationError{Field: "--set " + key, Message: "unknown condition"}
		}
		in.state[key] = value
	}

	for _, pair := range runAssign {
		idx := strings.LastIndex(pair, "=")
		if idx == -1 {
			return in, fmt.Errorf("invalid assignment %q: expected task=agent", pair)
		}
		task, ok := chore.FindTask(catalogue, pair[:idx])
		if !ok {
			return in, config.ValidationError{Field: "--assign " + strings.TrimSpace(pair[:idx]), Message: "unknown task"}
		}
		in.assignments[task.Name] = strings.TrimSpace(pair[idx+1:])
	}

	for task, agent := range in.assignments {
		if !slices.Contains(cfg.Agents, agent) {
			return in, config.ValidationError{
				Field:   "assignments." + task,
				Message: fmt.Sprintf("unknown agent %q (known: %s)", agent, strings.Join(cfg.Agents, ", ")),
			}
		}
	}

	if cmd.Flags().Changed("budget") {
		in.budget = runBudget
	}
	if cmd.Flags().Changed("max-passes") {
		in.maxPasses = runMaxPasses
	}
	if err := config.ValidateLimits(config.Limits{TimeBudgetMinutes: in.budget, MaxPasses: in.maxPasses}); err != nil {
		return in, err
	}
	in.askBudget = runTimed && in.budget == 0

	return in, nil
}

// missingInputs describes the inputs that would have to be asked for.
func missingInputs(in runInputs, tasks []*chore.Task) []string {
	var missing []string
	for _, c := range world.Conditions() {
		if _, ok := in.state[c]; !ok {
			missing = append(missing, "condition "+c)
		}
	}
	if in.askBudget {
		missing = append(missing, "time budget")
	}
	for _, t := range tasks {
		if _, ok := in.assignments[t.Name]; !ok {
			missing = append(missing, "agent for "+t.Name)
		}
	}
	return missing
}
