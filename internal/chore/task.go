// Package chore defines the household tasks, the agents that carry them out,
// and the built-in catalogue the simulator ships with.
package chore

import (
	"github.com/thruflo/chores/internal/world"
)

// Task is a named unit of household work.
type Task struct {
	Name         string
	Priority     int // Higher runs first
	Precondition world.Precondition
	Cost         int // Minutes; only consumed when a time budget is set

	completed bool
}

// NewTask creates an incomplete task.
func NewTask(name string, priority int, pre world.Precondition, cost int) *Task {
	return &Task{
		Name:         name,
		Priority:     priority,
		Precondition: pre,
		Cost:         cost,
	}
}

// CanExecute reports whether the precondition holds against the current state
// and the task has not been completed yet.
func (t *Task) CanExecute(st world.State) bool {
	return t.Precondition.Holds(st) && !t.completed
}

// Completed reports whether the task has been carried out.
func (t *Task) Completed() bool {
	return t.completed
}

// markCompleted is one-way; there is no way to reopen a task.
func (t *Task) markCompleted() {
	t.completed = true
}
