package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thruflo/chores/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize .chores/ directory structure",
	Long: `Creates the .chores/ directory with default configuration and example scenarios.

This command sets up:
  - config.yaml with run limits, agent names and log level
  - scenarios/everything.yaml, an unbounded run where every chore is due
  - scenarios/short-on-time.yaml, a run whose time budget runs out early
  - runs/ for recorded runs (see 'chores run --record')`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing files")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := filepath.Join(cwd, config.Dir)
	if dirExists(dir) && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", config.Dir)
	}

	for _, d := range []string{dir, filepath.Join(dir, "scenarios"), filepath.Join(dir, "runs")} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}

	files := map[string]string{
		"config.yaml":                  configYAMLContent,
		"scenarios/everything.yaml":    everythingScenarioContent,
		"scenarios/short-on-time.yaml": shortOnTimeScenarioContent,
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s/ directory\n", config.Dir)
	return nil
}

// dirExists checks if a directory exists
func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

const configYAMLContent = `# Chores configuration

limits:
  # Minutes available per run. 0 runs without a time budget.
  time_budget_minutes: 0

  # Stop after this many passes over the chores. 0 means no limit, in which
  # case a chore whose condition never holds keeps the run going forever.
  max_passes: 0

# Agents offered when assigning chores.
agents:
  - Agent 1
  - Agent 2
  - Agent 3

# One of debug, info, warn, error.
log_level: warn
`

const everythingScenarioContent = `# Every chore is due and there is no time limit, even if
# config.yaml sets one.
state:
  sink_full: true
  floor_dirty: true
  plants_dry: true
time_budget_minutes: 0
assignments:
  wash dishes: Agent 1
  water plants: Agent 2
  sweep floor: Agent 3
`

const shortOnTimeScenarioContent = `# Dishes and floor are due but there are only 12 minutes.
# Washing the dishes takes 10, so the floor is left dirty.
state:
  sink_full: true
  floor_dirty: true
  plants_dry: false
time_budget_minutes: 12
assignments:
  wash dishes: Agent 1
  water plants: Agent 2
  sweep floor: Agent 3
`
