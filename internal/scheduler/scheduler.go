package scheduler

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/thruflo/chores/internal/chore"
	"github.com/thruflo/chores/internal/logging"
	"github.com/thruflo/chores/internal/world"
)

// Construction errors.
var (
	ErrNilTask          = errors.New("task is nil")
	ErrUnassignedAgent  = errors.New("agent has no task")
	ErrNegativeCost     = errors.New("task cost is negative")
	ErrNegativeLimit    = errors.New("limit is negative")
	ErrUnknownCondition = errors.New("precondition refers to unknown condition")
)

// Observer receives the visible output of a run.
type Observer interface {
	chore.Notifier
	// TimeAdvisory is called once before a budgeted run starts.
	TimeAdvisory(estimate, budget int)
}

// Limits bound a run. Zero values mean no bound.
type Limits struct {
	TimeBudget int // Minutes
	MaxPasses  int
}

// Options holds everything needed to build a Scheduler.
type Options struct {
	Tasks    []*chore.Task
	Agents   []*chore.Agent
	State    world.State       // Owned by the scheduler after New
	Effects  world.EffectTable // Defaults to chore.DefaultEffects()
	Limits   Limits
	Observer Observer        // Optional
	Logger   *logging.Logger // Optional
}

// Scheduler runs agents against their tasks in priority order.
// It is not safe for concurrent use.
type Scheduler struct {
	tasks     []*chore.Task
	agents    []*chore.Agent
	state     world.State
	effects   world.EffectTable
	limits    Limits
	remaining int
	observer  Observer
	log       *logging.Logger

	passes   int
	attempts int
}

// New validates opts and returns a Scheduler with its tasks sorted by
// descending priority. Tasks of equal priority keep their input order.
func New(opts Options) (*Scheduler, error) {
	for i, t := range opts.Tasks {
		if t == nil {
			return nil, fmt.Errorf("task %d: %w", i, ErrNilTask)
		}
		if t.Cost < 0 {
			return nil, fmt.Errorf("task %q: %w", t.Name, ErrNegativeCost)
		}
		if _, ok := opts.State.Lookup(t.Precondition.Key); !ok {
			return nil, fmt.Errorf("task %q: %w: %s", t.Name, ErrUnknownCondition, t.Precondition.Key)
		}
	}
	for i, a := range opts.Agents {
		if a == nil || a.Task() == nil {
			return nil, fmt.Errorf("agent %d: %w", i, ErrUnassignedAgent)
		}
	}
	if opts.Limits.TimeBudget < 0 {
		return nil, fmt.Errorf("time budget: %w", ErrNegativeLimit)
	}
	if opts.Limits.MaxPasses < 0 {
		return nil, fmt.Errorf("max passes: %w", ErrNegativeLimit)
	}

	tasks := SortByPriority(opts.Tasks)

	effects := opts.Effects
	if effects == nil {
		effects = chore.DefaultEffects()
	}
	st := opts.State
	if st == nil {
		st = world.State{}
	}
	observer := opts.Observer
	if observer == nil {
		observer = nopObserver{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.With("component", "scheduler")
	}

	return &Scheduler{
		tasks:     tasks,
		agents:    slices.Clone(opts.Agents),
		state:     st,
		effects:   effects,
		limits:    opts.Limits,
		remaining: opts.Limits.TimeBudget,
		observer:  observer,
		log:       logger,
	}, nil
}

// SortByPriority returns a copy of tasks ordered by descending priority.
// Tasks of equal priority keep their relative order.
func SortByPriority(tasks []*chore.Task) []*chore.Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b *chore.Task) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
	return sorted
}

// Tasks returns the tasks in dispatch order.
func (s *Scheduler) Tasks() []*chore.Task {
	return slices.Clone(s.tasks)
}

// State returns a snapshot of the current world state.
func (s *Scheduler) State() world.State {
	return s.state.Clone()
}

// Remaining returns the minutes left in the budget, or 0 when unbounded.
func (s *Scheduler) Remaining() int {
	return s.remaining
}

// Budgeted reports whether the scheduler runs against a time budget.
func (s *Scheduler) Budgeted() bool {
	return s.limits.TimeBudget > 0
}

// Estimate returns the summed cost of the tasks still to do.
func (s *Scheduler) Estimate() int {
	return EstimateRemaining(s.tasks)
}

// Done reports whether every task is complete.
func (s *Scheduler) Done() bool {
	completed, total := CalculateProgress(s.tasks)
	return completed == total
}

// UpdateState applies the effect of every completed task to the world state.
// The result depends only on which tasks are completed, so calling it again
// without new completions leaves the state unchanged.
func (s *Scheduler) UpdateState() {
	for _, t := range s.tasks {
		if !t.Completed() {
			continue
		}
		if e, ok := s.effects.Lookup(t.Name); ok {
			e.Apply(s.state)
		}
	}
}

// Run dispatches tasks until they are all complete or a limit stops the run.
// The context is checked once per pass.
func (s *Scheduler) Run(ctx context.Context) Result {
	if s.Budgeted() {
		s.observer.TimeAdvisory(s.Estimate(), s.remaining)
	}

	for {
		if s.Done() {
			return s.finish(ExitReasonComplete)
		}
		if s.Budgeted() && !s.budgetAllowsProgress() {
			return s.finish(ExitReasonExhausted)
		}
		if ctx.Err() != nil {
			return s.finish(ExitReasonCancelled)
		}
		if s.limits.MaxPasses > 0 && s.passes >= s.limits.MaxPasses {
			return s.finish(ExitReasonPassLimit)
		}

		s.passes++
		s.log.Debug("pass started", "pass", s.passes, "state", s.state)
		s.runPass()
	}
}

// runPass walks the tasks in priority order once. It returns early after a
// budgeted attempt that consumed time so the next pass starts from the top.
func (s *Scheduler) runPass() {
	for _, task := range s.tasks {
		for _, agent := range s.agents {
			if agent.Task() != task {
				continue
			}
			if s.Budgeted() && task.Cost > s.remaining && !task.Completed() {
				s.log.Debug("task does not fit budget", "task", task.Name, "cost", task.Cost, "remaining", s.remaining)
				continue
			}

			cost, ok := agent.Attempt(s.state, s.observer)
			s.attempts++
			s.UpdateState()

			if !ok {
				continue
			}
			s.log.Info("task completed", "task", task.Name, "agent", agent.Name(), "cost", cost)

			if s.Budgeted() {
				s.remaining -= cost
				if cost > 0 {
					return
				}
			}
		}
	}
}

// budgetAllowsProgress reports whether any minutes remain and at least one
// incomplete task fits within them.
func (s *Scheduler) budgetAllowsProgress() bool {
	if s.remaining <= 0 {
		return false
	}
	for _, t := range s.tasks {
		if !t.Completed() && t.Cost <= s.remaining {
			return true
		}
	}
	return false
}

func (s *Scheduler) finish(reason ExitReason) Result {
	completed, pending := splitByCompletion(s.tasks)
	res := Result{
		Reason:    reason,
		Passes:    s.passes,
		Attempts:  s.attempts,
		Budget:    s.limits.TimeBudget,
		Remaining: s.remaining,
		Completed: completed,
		Pending:   pending,
		State:     s.state.Clone(),
	}
	s.log.Info("run finished", "reason", reason, "passes", s.passes, "attempts", s.attempts, "pending", len(pending))
	return res
}

type nopObserver struct{}

func (nopObserver) Executing(string, string) {}
func (nopObserver) TimeAdvisory(int, int)    {}
