package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thruflo/chores/internal/chore"
	"github.com/thruflo/chores/internal/logging"
	"github.com/thruflo/chores/internal/world"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultTimeBudgetMinutes = 0
	DefaultMaxPasses         = 0
	DefaultLogLevel          = "warn"
)

// Dir is the name of the project directory holding chores files.
const Dir = ".chores"

// DefaultLimits returns unbounded limits.
func DefaultLimits() Limits {
	return Limits{
		TimeBudgetMinutes: DefaultTimeBudgetMinutes,
		MaxPasses:         DefaultMaxPasses,
	}
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Limits:   DefaultLimits(),
		Agents:   chore.DefaultAgentNames(),
		LogLevel: DefaultLogLevel,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// ConfigPath returns the path of config.yaml under basePath.
func ConfigPath(basePath string) string {
	return filepath.Join(basePath, Dir, "config.yaml")
}

// LoadConfig reads and parses .chores/config.yaml from the given base path.
// If the file doesn't exist, returns default config.
// Applies defaults for any missing fields.
func LoadConfig(basePath string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(basePath))
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	for i, name := range cfg.Agents {
		cfg.Agents[i] = strings.TrimSpace(name)
	}
	if len(cfg.Agents) == 0 {
		cfg.Agents = chore.DefaultAgentNames()
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if err := ValidateLimits(cfg.Limits); err != nil {
		return err
	}

	seen := make(map[string]bool, len(cfg.Agents))
	for i, name := range cfg.Agents {
		name = strings.TrimSpace(name)
		if name == "" {
			return ValidationError{Field: fmt.Sprintf("agents[%d]", i), Message: "name is empty"}
		}
		if seen[name] {
			return ValidationError{Field: fmt.Sprintf("agents[%d]", i), Message: fmt.Sprintf("duplicate agent %q", name)}
		}
		seen[name] = true
	}

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return ValidationError{Field: "log_level", Message: err.Error()}
	}

	return nil
}

// ValidateLimits checks that limits are not negative.
func ValidateLimits(l Limits) error {
	if l.TimeBudgetMinutes < 0 {
		return ValidationError{Field: "limits.time_budget_minutes", Message: "must not be negative"}
	}
	if l.MaxPasses < 0 {
		return ValidationError{Field: "limits.max_passes", Message: "must not be negative"}
	}
	return nil
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("scenario not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}

	if err := ValidateScenario(&sc); err != nil {
		return nil, err
	}

	return &sc, nil
}

// ValidateScenario checks that a scenario only refers to known conditions
// and tasks. Missing conditions and assignments are allowed; they are
// collected interactively or reported when the run starts.
func ValidateScenario(sc *Scenario) error {
	conditions := world.Conditions()
	for key := range sc.State {
		if !slices.Contains(conditions, key) {
			return ValidationError{Field: "state." + key, Message: "unknown condition"}
		}
	}

	if sc.TimeBudgetMinutes != nil && *sc.TimeBudgetMinutes < 0 {
		return ValidationError{Field: "time_budget_minutes", Message: "must not be negative"}
	}

	tasks := chore.DefaultTasks()
	for task, agent := range sc.Assignments {
		if _, ok := chore.FindTask(tasks, task); !ok {
			return ValidationError{Field: "assignments." + task, Message: "unknown task"}
		}
		if strings.TrimSpace(agent) == "" {
			return ValidationError{Field: "assignments." + task, Message: "agent name is empty"}
		}
	}

	return nil
}
