package chore

import "github.com/thruflo/chores/internal/world"

// Notifier receives a notification each time an agent starts executing a task.
type Notifier interface {
	Executing(agent, task string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(agent, task string)

// Executing calls f(agent, task).
func (f NotifierFunc) Executing(agent, task string) {
	f(agent, task)
}

// Agent is a named actor bound to exactly one task for its lifetime.
type Agent struct {
	name string
	task *Task
}

// NewAgent binds an agent to a task.
func NewAgent(name string, task *Task) *Agent {
	return &Agent{name: name, task: task}
}

// Name returns the agent name.
func (a *Agent) Name() string { return a.name }

// Task returns the task the agent is bound to.
func (a *Agent) Task() *Task { return a.task }

// Attempt executes the bound task if it can run against st. On success the task
// is marked completed, n is notified before Attempt returns, and the task cost
// is returned with ok set. Otherwise nothing happens and ok is false.
func (a *Agent) Attempt(st world.State, n Notifier) (cost int, ok bool) {
	if a.task == nil || !a.task.CanExecute(st) {
		return 0, false
	}

	a.task.markCompleted()
	if n != nil {
		n.Executing(a.name, a.task.Name)
	}
	return a.task.Cost, true
}
