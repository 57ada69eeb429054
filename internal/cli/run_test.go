package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/chores/internal/config"
	"github.com/thruflo/chores/internal/history"
	"github.com/thruflo/chores/internal/testutil"
)

// resetRunFlags restores run command flags and hooks to their defaults.
func resetRunFlags(t *testing.T) {
	t.Helper()
	originalInteractive := runInteractive

	reset := func() {
		runBudget = 0
		runTimed = false
		runScenario = ""
		runSet = nil
		runAssign = nil
		runMaxPasses = 0
		runRecord = false
		verbose = false
		runInput = nil
		for _, name := range []string{"budget", "max-passes"} {
			runCmd.Flags().Lookup(name).Changed = false
		}
		runCmd.SetOut(nil)
		runCmd.SetContext(context.Background())
	}

	reset()
	runInteractive = func() bool { return true }
	t.Cleanup(func() {
		reset()
		runInteractive = originalInteractive
	})
}

// setupRunDir changes into a fresh .chores project whose config caps runs
// at 50 passes, so a run that cannot finish still returns.
func setupRunDir(t *testing.T) string {
	t.Helper()
	tmpDir := testutil.SetupTestDir(t)
	testutil.Chdir(t, tmpDir)
	return tmpDir
}

// executeRun runs the command with input as stdin. The run is bounded by the
// test deadline in case the pass cap is overridden.
func executeRun(t *testing.T, input string) (string, error) {
	t.Helper()
	ctx, cancel := testutil.ContextWithTestDeadline(t, testutil.DefaultRunTimeout)
	t.Cleanup(cancel)
	runCmd.SetContext(ctx)

	var out bytes.Buffer
	runCmd.SetOut(&out)
	runInput = strings.NewReader(input)
	err := runRun(runCmd, nil)
	return out.String(), err
}

func allSet() []string {
	return []string{"sink_full=true", "floor_dirty=true", "plants_dry=true"}
}

func allAssigned() []string {
	return []string{"wash dishes=Agent 1", "water plants=Agent 2", "sweep floor=Agent 3"}
}

func TestRunInteractive(t *testing.T) {
	setupRunDir(t)
	resetRunFlags(t)

	// Every chore is due; then agents for wash, water, sweep.
	out, err := executeRun(t, "y\ny\ny\n1\n2\n3\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Household chore manager")
	assert.Contains(t, out, "Is the sink full?")
	assert.Contains(t, out, "Assigning an agent to priority 3 task: wash dishes")
	assert.Contains(t, out, "Agent 1 is executing task: wash dishes")
	assert.Contains(t, out, "Agent 2 is executing task: water plants")
	assert.Contains(t, out, "Agent 3 is executing task: sweep floor")
	assert.NotContains(t, out, "Estimated time")
	assert.Contains(t, out, "Result:    complete")

	// Menus follow dispatch order: water plants ties with wash dishes and
	// comes before sweep floor.
	assert.Less(t, strings.Index(out, "task: water plants"), strings.Index(out, "task: sweep floor"))
}

func TestRunInteractiveStallsUntilPassLimit(t *testing.T) {
	setupRunDir(t)
	resetRunFlags(t)

	// Only the sink is full, so water plants and sweep floor can never start.
	out, err := executeRun(t, "y\nn\nn\n1\n2\n3\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Agent 1 is executing task: wash dishes")
	assert.NotContains(t, out, "executing task: sweep floor")
	assert.NotContains(t, out, "executing task: water plants")
	assert.Contains(t, out, "Result:    pass limit")
	assert.Contains(t, out, "Passes:    50")
	assert.Contains(t, out, "Pending:   water plants, sweep floor")
}

func TestRunScenarioWithBudget(t *testing.T) {
	tmpDir := setupRunDir(t)
	resetRunFlags(t)
	runInteractive = func() bool { return false }

	testutil.WriteTestFile(t, tmpDir, "short.yaml", []byte(shortOnTimeScenarioContent))
	runScenario = filepath.Join(tmpDir, "short.yaml")

	out, err := executeRun(t, "")
	require.NoError(t, err)

	assert.Contains(t, out, "Estimated time for all tasks: 30 minutes. Available: 12 minutes.")
	assert.Contains(t, out, "There is not enough time")
	assert.Contains(t, out, "Agent 1 is executing task: wash dishes")
	assert.NotContains(t, out, "executing task: sweep floor")
	assert.Contains(t, out, "Result:    exhausted")
	assert.Contains(t, out, "Time left: 2 of 12 minutes")
	assert.Contains(t, out, "Pending:   water plants, sweep floor")
}

func TestRunFlagsOnly(t *testing.T) {
	setupRunDir(t)
	resetRunFlags(t)
	runInteractive = func() bool { return false }

	runSet = allSet()
	runAssign = allAssigned()
	require.NoError(t, runCmd.Flags().Set("budget", "30"))

	out, err := executeRun(t, "")
	require.NoError(t, err)

	assert.Contains(t, out, "There is enough time")
	assert.Contains(t, out, "Agent 1 is executing task: wash dishes")
	assert.Contains(t, out, "Agent 2 is executing task: water plants")
	assert.Contains(t, out, "Agent 3 is executing task: sweep floor")
	assert.Contains(t, out, "Result:    complete")
	assert.Contains(t, out, "Time left: 0 of 30 minutes")
}

func TestRunFlagsOverrideScenario(t *testing.T) {
	tmpDir := setupRunDir(t)
	resetRunFlags(t)
	runInteractive = func() bool { return false }

	testutil.WriteTestFile(t, tmpDir, "short.yaml", []byte(shortOnTimeScenarioContent))
	runScenario = filepath.Join(tmpDir, "short.yaml")
	runSet = []string{"plants_dry=true"}
	runAssign = []string{"sweep floor=Agent 2"}
	require.NoError(t, runCmd.Flags().Set("budget", "0"))

	out, err := executeRun(t, "")
	require.NoError(t, err)

	assert.NotContains(t, out, "Estimated time")
	assert.Contains(t, out, "Agent 2 is executing task: sweep floor")
	assert.Contains(t, out, "Result:    complete")
}

func TestRunNonInteractiveMissingInputs(t *testing.T) {
	setupRunDir(t)
	resetRunFlags(t)
	runInteractive = func() bool { return false }
	runSet = []string{"sink_full=true"}

	_, err := executeRun(t, "")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "stdin is not a terminal")
	assert.Contains(t, err.Error(), "condition floor_dirty")
	assert.Contains(t, err.Error(), "agent for wash dishes")
	assert.NotContains(t, err.Error(), "condition sink_full")
}

func TestRunTimedAsksForBudget(t *testing.T) {
	setupRunDir(t)
	resetRunFlags(t)
	runTimed = true
	runSet = allSet()
	runAssign = allAssigned()

	out, err := executeRun(t, "abc\n15\n")
	require.NoError(t, err)

	assert.Contains(t, out, "How many minutes are available for chores?")
	assert.Contains(t, out, "Available: 15 minutes.")
	assert.Contains(t, out, "Agent 1 is executing task: wash dishes")
	assert.Contains(t, out, "Agent 2 is executing task: water plants")
	assert.NotContains(t, out, "executing task: sweep floor")
	assert.Contains(t, out, "Result:    exhausted")
}

func TestRunMaxPassesStopsIdleRun(t *testing.T) {
	setupRunDir(t)
	resetRunFlags(t)
	runSet = []string{"sink_full=false", "floor_dirty=false", "plants_dry=false"}
	runAssign = allAssigned()
	require.NoError(t, runCmd.Flags().Set("max-passes", "5"))

	out, err := executeRun(t, "")
	require.NoError(t, err)

	assert.NotContains(t, out, "is executing task")
	assert.Contains(t, out, "Result:    pass limit")
	assert.Contains(t, out, "Passes:    5")
}

func TestRunBudgetFromConfig(t *testing.T) {
	tmpDir := setupRunDir(t)
	resetRunFlags(t)
	testutil.WriteTestFile(t, tmpDir, filepath.Join(config.Dir, "config.yaml"), []byte("limits:\n  time_budget_minutes: 12\n"))

	runSet = []string{"sink_full=true", "floor_dirty=true", "plants_dry=false"}
	runAssign = allAssigned()

	out, err := executeRun(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Result:    exhausted")
	assert.Contains(t, out, "Time left: 2 of 12 minutes")
}

func TestRunScenarioZeroBudgetOverridesConfig(t *testing.T) {
	tmpDir := setupRunDir(t)
	resetRunFlags(t)
	runInteractive = func() bool { return false }
	testutil.WriteTestFile(t, tmpDir, filepath.Join(config.Dir, "config.yaml"), []byte("limits:\n  time_budget_minutes: 12\n"))
	testutil.WriteTestFile(t, tmpDir, "everything.yaml", []byte(everythingScenarioContent))
	runScenario = filepath.Join(tmpDir, "everything.yaml")

	out, err := executeRun(t, "")
	require.NoError(t, err)

	assert.NotContains(t, out, "Estimated time")
	assert.NotContains(t, out, "Time left")
	assert.Contains(t, out, "Agent 3 is executing task: sweep floor")
	assert.Contains(t, out, "Result:    complete")
}

func TestRunScenarioWithoutBudgetKeepsConfig(t *testing.T) {
	tmpDir := setupRunDir(t)
	resetRunFlags(t)
	runInteractive = func() bool { return false }
	testutil.WriteTestFile(t, tmpDir, filepath.Join(config.Dir, "config.yaml"), []byte("limits:\n  time_budget_minutes: 12\n"))
	testutil.WriteTestFile(t, tmpDir, "due.yaml", []byte("state:\n  sink_full: true\n  floor_dirty: true\n  plants_dry: false\n"))
	runScenario = filepath.Join(tmpDir, "due.yaml")
	runAssign = allAssigned()

	out, err := executeRun(t, "")
	require.NoError(t, err)

	assert.Contains(t, out, "Result:    exhausted")
	assert.Contains(t, out, "Time left: 2 of 12 minutes")
}

func TestRunConfigAgentNamesAreTrimmed(t *testing.T) {
	tmpDir := setupRunDir(t)
	resetRunFlags(t)
	testutil.WriteTestFile(t, tmpDir, filepath.Join(config.Dir, "config.yaml"), []byte("limits:\n  max_passes: 50\nagents:\n  - \"Ann \"\n  - Bob\n"))

	runSet = allSet()
	runAssign = []string{"wash dishes=Ann", "water plants=Bob", "sweep floor= Ann"}

	out, err := executeRun(t, "")
	require.NoError(t, err)

	assert.Contains(t, out, "Ann is executing task: wash dishes")
	assert.Contains(t, out, "Bob is executing task: water plants")
	assert.Contains(t, out, "Ann is executing task: sweep floor")
	assert.Contains(t, out, "Result:    complete")
}

func TestRunRecord(t *testing.T) {
	tmpDir := setupRunDir(t)
	resetRunFlags(t)
	runSet = allSet()
	runAssign = allAssigned()
	runRecord = true

	out, err := executeRun(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded run ")

	runs, err := history.NewStore(tmpDir).ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Contains(t, out, run.ID)
	assert.Equal(t, "complete", run.Reason)
	assert.True(t, run.InitialState["sink_full"])
	assert.False(t, run.FinalState["sink_full"])
	assert.Equal(t, "Agent 3", run.Assignments["sweep floor"])
	assert.Len(t, run.Completed, 3)
}

func TestRunValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		set    []string
		assign []string
		budget string
		errMsg string
	}{
		{"unknown condition", []string{"lawn_long=true"}, nil, "", "unknown condition"},
		{"bad condition value", []string{"sink_full=perhaps"}, nil, "", "value must be true or false"},
		{"unknown task", nil, []string{"mow lawn=Agent 1"}, "", "unknown task"},
		{"unknown agent", nil, []string{"wash dishes=Zed"}, "", `unknown agent "Zed"`},
		{"malformed assignment", nil, []string{"wash dishes"}, "", "expected task=agent"},
		{"negative budget", nil, nil, "-1", "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupRunDir(t)
			resetRunFlags(t)
			runSet = tt.set
			runAssign = tt.assign
			if tt.budget != "" {
				require.NoError(t, runCmd.Flags().Set("budget", tt.budget))
			}

			_, err := executeRun(t, "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRunEndOfInput(t *testing.T) {
	setupRunDir(t)
	resetRunFlags(t)

	_, err := executeRun(t, "y\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read initial state")
}

func TestTasksCommand(t *testing.T) {
	var out bytes.Buffer
	tasksCmd.SetOut(&out)
	t.Cleanup(func() { tasksCmd.SetOut(nil) })

	require.NoError(t, runTasks(tasksCmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "wash dishes"))
	assert.True(t, strings.HasPrefix(lines[2], "water plants"))
	assert.True(t, strings.HasPrefix(lines[3], "sweep floor"))
}
