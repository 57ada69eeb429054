package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	t.Parallel()

	st := NewState()
	assert.Len(t, st, 3)
	for _, c := range Conditions() {
		v, ok := st.Lookup(c)
		assert.True(t, ok, c)
		assert.False(t, v, c)
	}
}

func TestStateCloneIsIndependent(t *testing.T) {
	t.Parallel()

	st := State{SinkFull: true}
	cp := st.Clone()
	cp[SinkFull] = false

	assert.True(t, st[SinkFull])
	assert.False(t, cp[SinkFull])
}

func TestStateEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b State
		want bool
	}{
		{"both empty", State{}, State{}, true},
		{"same values", State{SinkFull: true, PlantsDry: false}, State{PlantsDry: false, SinkFull: true}, true},
		{"different value", State{SinkFull: true}, State{SinkFull: false}, false},
		{"different keys", State{SinkFull: true}, State{FloorDirty: true}, false},
		{"different length", State{SinkFull: true}, State{SinkFull: true, FloorDirty: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestStateString(t *testing.T) {
	t.Parallel()

	st := State{SinkFull: true, FloorDirty: false}
	assert.Equal(t, "{floor_dirty=false, sink_full=true}", st.String())
}

func TestParseAssignment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		key     string
		value   bool
		wantErr bool
	}{
		{"sink_full=true", SinkFull, true, false},
		{" plants_dry = false ", PlantsDry, false, false},
		{"floor_dirty=1", FloorDirty, true, false},
		{"sink_full", "", false, true},
		{"=true", "", false, true},
		{"sink_full=maybe", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, value, err := ParseAssignment(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestPreconditionHolds(t *testing.T) {
	t.Parallel()

	st := State{SinkFull: true, FloorDirty: false}

	assert.True(t, When(SinkFull).Holds(st))
	assert.False(t, When(FloorDirty).Holds(st))
	assert.True(t, Unless(FloorDirty).Holds(st))
	assert.False(t, Unless(SinkFull).Holds(st))

	// Missing conditions never hold, whatever the wanted value.
	assert.False(t, When(PlantsDry).Holds(st))
	assert.False(t, Unless(PlantsDry).Holds(st))
}

func TestPreconditionReadsCurrentState(t *testing.T) {
	t.Parallel()

	st := State{SinkFull: true}
	p := When(SinkFull)
	require.True(t, p.Holds(st))

	st[SinkFull] = false
	assert.False(t, p.Holds(st))
}

func TestEffectTable(t *testing.T) {
	t.Parallel()

	table := EffectTable{"wash dishes": Clear(SinkFull)}
	st := State{SinkFull: true}

	e, ok := table.Lookup("wash dishes")
	require.True(t, ok)
	e.Apply(st)
	assert.False(t, st[SinkFull])

	_, ok = table.Lookup("mow lawn")
	assert.False(t, ok)
}
