package scheduler

import (
	"github.com/thruflo/chores/internal/chore"
	"github.com/thruflo/chores/internal/world"
)

// ExitReason indicates why a run stopped.
type ExitReason int

const (
	ExitReasonUnknown   ExitReason = iota
	ExitReasonComplete             // All tasks completed
	ExitReasonExhausted            // Time budget used up with tasks remaining
	ExitReasonPassLimit            // Hit the MaxPasses safety cap
	ExitReasonCancelled            // Context cancelled
)

// String returns a human-readable description of the exit reason.
func (r ExitReason) String() string {
	switch r {
	case ExitReasonComplete:
		return "complete"
	case ExitReasonExhausted:
		return "exhausted"
	case ExitReasonPassLimit:
		return "pass limit"
	case ExitReasonCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result contains the outcome of a run.
type Result struct {
	Reason    ExitReason
	Passes    int
	Attempts  int
	Budget    int // Initial budget in minutes, 0 when unbounded
	Remaining int // Minutes left, 0 when unbounded
	Completed []string
	Pending   []string
	State     world.State
}

// Budgeted reports whether the run had a time budget.
func (r Result) Budgeted() bool {
	return r.Budget > 0
}

// CalculateProgress returns the number of completed tasks and the total.
func CalculateProgress(tasks []*chore.Task) (completed, total int) {
	total = len(tasks)
	for _, t := range tasks {
		if t.Completed() {
			completed++
		}
	}
	return completed, total
}

// EstimateRemaining returns the summed cost of incomplete tasks.
func EstimateRemaining(tasks []*chore.Task) int {
	minutes := 0
	for _, t := range tasks {
		if !t.Completed() {
			minutes += t.Cost
		}
	}
	return minutes
}

func splitByCompletion(tasks []*chore.Task) (completed, pending []string) {
	completed = []string{}
	pending = []string{}
	for _, t := range tasks {
		if t.Completed() {
			completed = append(completed, t.Name)
		} else {
			pending = append(pending, t.Name)
		}
	}
	return completed, pending
}
