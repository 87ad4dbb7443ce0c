package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseTransitions(t *testing.T) {
	store := NewStore()
	assert.Equal(t, BOOTING, store.Snapshot().Phase)

	require.NoError(t, store.SetPhase(RUNNING))
	require.NoError(t, store.SetPhase(FATAL))
	for _, next := range []Phase{BOOTING, RUNNING} {
		assert.ErrorIs(t, store.SetPhase(next), ErrTerminal, "SetPhase(%v)", next)
	}
	assert.NoError(t, store.SetPhase(FATAL))
	assert.Equal(t, FATAL, store.Snapshot().Phase)
}

func TestSetFatalKeepsFirst(t *testing.T) {
	store := NewStore()
	store.SetFatal(FatalInfo{Title: "first"})
	store.SetFatal(FatalInfo{Title: "second"})

	s := store.Snapshot()
	assert.Equal(t, FATAL, s.Phase)
	assert.Equal(t, "first", s.Fatal.Title)
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{BOOTING: "BOOTING", RUNNING: "RUNNING", FATAL: "FATAL", Phase(9): "Phase(9)"}
	for p, want := range tests {
		assert.Equal(t, want, p.String())
	}
}
