package chore

import (
	"strings"

	"github.com/thruflo/chores/internal/world"
)

// Built-in task names.
const (
	WashDishes  = "wash dishes"
	SweepFloor  = "sweep floor"
	WaterPlants = "water plants"
)

// Default execution costs in minutes.
const (
	WashDishesCost  = 10
	SweepFloorCost  = 15
	WaterPlantsCost = 5
)

// DefaultTasks returns a fresh copy of the built-in tasks in catalogue order.
// Returns new tasks each time so runs never share completion flags.
func DefaultTasks() []*Task {
	return []*Task{
		NewTask(WashDishes, 3, world.When(world.SinkFull), WashDishesCost),
		NewTask(SweepFloor, 2, world.When(world.FloorDirty), SweepFloorCost),
		NewTask(WaterPlants, 3, world.When(world.PlantsDry), WaterPlantsCost),
	}
}

// DefaultEffects returns the effect each built-in task has on completion.
func DefaultEffects() world.EffectTable {
	return world.EffectTable{
		WashDishes:  world.Clear(world.SinkFull),
		SweepFloor:  world.Clear(world.FloorDirty),
		WaterPlants: world.Clear(world.PlantsDry),
	}
}

// DefaultAgentNames returns the agent names offered when assigning tasks.
func DefaultAgentNames() []string {
	return []string{"Agent 1", "Agent 2", "Agent 3"}
}

// FindTask returns the task with the given name, ignoring case and
// surrounding whitespace.
func FindTask(tasks []*Task, name string) (*Task, bool) {
	name = strings.TrimSpace(name)
	for _, t := range tasks {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return nil, false
}
