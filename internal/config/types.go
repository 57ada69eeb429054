package config

// Limits bounds a simulation run. Zero means unbounded.
type Limits struct {
	TimeBudgetMinutes int `yaml:"time_budget_minutes"`
	MaxPasses         int `yaml:"max_passes"`
}

// Config represents the .chores/config.yaml file.
type Config struct {
	Limits   Limits   `yaml:"limits"`
	Agents   []string `yaml:"agents"`
	LogLevel string   `yaml:"log_level"`
}

// Scenario is a non-interactive description of a run: the initial world
// state, an optional time budget, and which agent takes each task.
// A nil TimeBudgetMinutes keeps the configured budget; 0 runs unbounded.
type Scenario struct {
	State             map[string]bool   `yaml:"state"`
	TimeBudgetMinutes *int              `yaml:"time_budget_minutes,omitempty"`
	Assignments       map[string]string `yaml:"assignments"` // task name -> agent name
}
