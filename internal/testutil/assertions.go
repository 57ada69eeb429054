package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/chores/internal/chore"
	"github.com/thruflo/chores/internal/world"
)

// AssertCompleted asserts that exactly the named tasks are completed.
func AssertCompleted(t *testing.T, tasks []*chore.Task, names ...string) {
	t.Helper()

	var done []string
	for _, task := range tasks {
		if task.Completed() {
			done = append(done, task.Name)
		}
	}
	assert.ElementsMatch(t, names, done, "completed tasks mismatch")
}

// AssertTasksProgress asserts the completed and total task counts.
func AssertTasksProgress(t *testing.T, tasks []*chore.Task, expectedCompleted, expectedTotal int) {
	t.Helper()

	completed := 0
	for _, task := range tasks {
		if task.Completed() {
			completed++
		}
	}

	assert.Equal(t, expectedTotal, len(tasks), "total tasks mismatch")
	assert.Equal(t, expectedCompleted, completed, "completed tasks mismatch")
}

// AssertStateEqual asserts that two states hold the same conditions.
func AssertStateEqual(t *testing.T, expected, actual world.State) {
	t.Helper()
	require.NotNil(t, actual, "state is nil")
	assert.True(t, expected.Equal(actual), "state mismatch: expected %s, got %s", expected, actual)
}
