// Package scheduler dispatches household chores to their agents.
//
// A Scheduler sorts its tasks once, by descending priority with ties kept in
// input order, and then runs passes over them until every task is complete.
// In every pass each task's agents attempt it in turn, and the world state is
// re-derived from the completed tasks after every attempt.
//
// With a time budget the scheduler only attempts tasks whose cost fits in the
// remaining minutes, and restarts from the top after any attempt that consumed
// time. The run ends as exhausted once the budget is used up or nothing left
// fits.
//
// Without a budget there is no bound: a task whose precondition can never
// become true keeps the loop running until the context is cancelled or the
// optional MaxPasses cap is reached.
package scheduler
