// Package history records finished simulation runs under .chores/runs/ so
// they can be listed and inspected later.
package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/thruflo/chores/internal/chore"
	"github.com/thruflo/chores/internal/scheduler"
	"github.com/thruflo/chores/internal/world"
)

// Run is one recorded simulation, stored as runs/<id>.yaml.
type Run struct {
	ID                string            `yaml:"id"`
	StartedAt         time.Time         `yaml:"started_at"`
	FinishedAt        time.Time         `yaml:"finished_at"`
	Reason            string            `yaml:"reason"`
	Passes            int               `yaml:"passes"`
	Attempts          int               `yaml:"attempts"`
	TimeBudgetMinutes int               `yaml:"time_budget_minutes,omitempty"`
	RemainingMinutes  int               `yaml:"remaining_minutes,omitempty"`
	InitialState      map[string]bool   `yaml:"initial_state"`
	FinalState        map[string]bool   `yaml:"final_state"`
	Assignments       map[string]string `yaml:"assignments"` // task name -> agent name
	Completed         []string          `yaml:"completed"`
	Pending           []string          `yaml:"pending"`
}

// NewRun builds a run record from a scheduler result. initial must be the
// state as it was before the scheduler started changing it.
func NewRun(res scheduler.Result, initial world.State, agents []*chore.Agent, started, finished time.Time) *Run {
	assignments := make(map[string]string, len(agents))
	for _, a := range agents {
		assignments[a.Task().Name] = a.Name()
	}

	return &Run{
		ID:                uuid.NewString(),
		StartedAt:         started.UTC(),
		FinishedAt:        finished.UTC(),
		Reason:            res.Reason.String(),
		Passes:            res.Passes,
		Attempts:          res.Attempts,
		TimeBudgetMinutes: res.Budget,
		RemainingMinutes:  res.Remaining,
		InitialState:      initial.Clone(),
		FinalState:        res.State.Clone(),
		Assignments:       assignments,
		Completed:         res.Completed,
		Pending:           res.Pending,
	}
}
