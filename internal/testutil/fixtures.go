package testutil

import (
	"fmt"

	"github.com/thruflo/chores/internal/chore"
	"github.com/thruflo/chores/internal/world"
)

// StateAllDue returns a state where every built-in chore is due.
func StateAllDue() world.State {
	return world.State{
		world.SinkFull:   true,
		world.FloorDirty: true,
		world.PlantsDry:  true,
	}
}

// StateNothingDue returns a state where no built-in chore can start.
func StateNothingDue() world.State {
	return world.NewState()
}

// StateShortOnTime returns the sink-and-floor state used with a 12 minute
// budget: only the dishes fit.
func StateShortOnTime() world.State {
	return world.State{
		world.SinkFull:   true,
		world.FloorDirty: true,
		world.PlantsDry:  false,
	}
}

// BindOneEach assigns one agent per task, named after the task position.
func BindOneEach(tasks []*chore.Task) []*chore.Agent {
	agents := make([]*chore.Agent, len(tasks))
	for i, t := range tasks {
		agents[i] = chore.NewAgent(fmt.Sprintf("Agent %d", i+1), t)
	}
	return agents
}

// TaskNames returns the names of tasks in order.
func TaskNames(tasks []*chore.Task) []string {
	names := make([]string, len(tasks))
	for i, t := range tasks {
		names[i] = t.Name
	}
	return names
}
