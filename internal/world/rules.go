package world

import "fmt"

// Precondition gates a task on a single condition having the wanted value.
type Precondition struct {
	Key  string `yaml:"key"`
	Want bool   `yaml:"want"`
}

// When returns a precondition that holds while key is true.
func When(key string) Precondition {
	return Precondition{Key: key, Want: true}
}

// Unless returns a precondition that holds while key is false.
func Unless(key string) Precondition {
	return Precondition{Key: key, Want: false}
}

// Holds evaluates the precondition against the current state.
// A condition missing from the state never holds.
func (p Precondition) Holds(st State) bool {
	v, ok := st.Lookup(p.Key)
	return ok && v == p.Want
}

func (p Precondition) String() string {
	return fmt.Sprintf("%s == %t", p.Key, p.Want)
}

// Effect is the change a completed task makes to the state.
type Effect struct {
	Key   string `yaml:"key"`
	Value bool   `yaml:"value"`
}

// Clear returns an effect that sets key to false.
func Clear(key string) Effect {
	return Effect{Key: key, Value: false}
}

// Apply writes the effect into the state.
func (e Effect) Apply(st State) {
	st[e.Key] = e.Value
}

// EffectTable maps task names to the effect their completion has.
// Task names without an entry change nothing.
type EffectTable map[string]Effect

// Lookup returns the effect registered for a task name.
func (t EffectTable) Lookup(task string) (Effect, bool) {
	e, ok := t[task]
	return e, ok
}
