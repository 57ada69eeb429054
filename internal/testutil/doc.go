// Package testutil provides shared test utilities for chores.
//
// # Fixtures
//
// The fixtures.go file provides sample worlds and bindings:
//
//   - StateAllDue(), StateNothingDue(), StateShortOnTime() - initial states
//   - BindOneEach(tasks) - one agent per task, named "Agent 1", "Agent 2", ...
//   - TaskNames(tasks) - task names in order
//
// # Environment Helpers
//
// The env.go file provides test environment setup:
//
//   - SetupTestDir(t) - creates a temp directory with .chores structure
//   - ChdirTemp(t) - changes into a fresh temp directory for the test
//   - Chdir(t, dir) - changes into dir for the test
//   - WriteTestFile(t, base, path, content) - writes a file in test dir
//
// # Assertions
//
// The assertions.go file provides custom test assertions:
//
//   - AssertCompleted(t, tasks, names...) - exactly these tasks are done
//   - AssertTasksProgress(t, tasks, completed, total) - task progress
//   - AssertStateEqual(t, expected, actual) - compares world states
//
// # Timeouts
//
// The timeout.go file bounds runs that may never finish on their own:
//
//   - ContextWithTestDeadline(t, fallback) - respects the test deadline
//   - ContextWithTimeout(t, d) - plain timeout, logged
//   - ShortRunContext(t) - short bound for runs expected to stall
package testutil
