// Package world models the shared household state that chores read and change.
//
// A State maps condition names (sink_full, floor_dirty, plants_dry) to booleans.
// Preconditions are plain values keyed by condition name so they can be stored
// in scenario files and tested without any task attached. Effects describe the
// change a completed task makes; an EffectTable maps task names to effects.
package world

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Condition names used by the built-in chore catalogue.
const (
	SinkFull   = "sink_full"
	FloorDirty = "floor_dirty"
	PlantsDry  = "plants_dry"
)

// Conditions lists the built-in condition names in the order they are asked about.
func Conditions() []string {
	return []string{SinkFull, FloorDirty, PlantsDry}
}

// State is the world state. It is owned by the scheduler; tasks only read it.
type State map[string]bool

// NewState returns a state with every built-in condition set to false.
func NewState() State {
	st := make(State, len(Conditions()))
	for _, c := range Conditions() {
		st[c] = false
	}
	return st
}

// Lookup returns the value of a condition and whether it is present.
func (s State) Lookup(key string) (value, ok bool) {
	value, ok = s[key]
	return value, ok
}

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Equal reports whether both states hold the same keys with the same values.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for k, v := range s {
		ov, ok := other[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Keys returns the condition names in sorted order.
func (s State) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the state as "key=value" pairs in key order.
func (s State) String() string {
	parts := make([]string, 0, len(s))
	for _, k := range s.Keys() {
		parts = append(parts, k+"="+strconv.FormatBool(s[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ParseAssignment parses a "key=bool" pair such as "sink_full=true".
func ParseAssignment(pair string) (string, bool, error) {
	idx := strings.Index(pair, "=")
	if idx == -1 {
		return "", false, fmt.Errorf("invalid condition %q: missing '='", pair)
	}

	key := strings.TrimSpace(pair[:idx])
	if key == "" {
		return "", false, fmt.Errorf("invalid condition %q: empty name", pair)
	}

	value, err := strconv.ParseBool(strings.TrimSpace(pair[idx+1:]))
	if err != nil {
		return "", false, fmt.Errorf("invalid condition %q: value must be true or false", pair)
	}
	return key, value, nil
}
