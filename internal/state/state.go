package state

import (
	"errors"
	"fmt"
	"sync"
)

type Phase int

const (
	BOOTING Phase = iota
	RUNNING
	FATAL
)

func (p Phase) String() string {
	switch p {
	case BOOTING:
		return "BOOTING"
	case RUNNING:
		return "RUNNING"
	case FATAL:
		return "FATAL"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// ErrTerminal is returned when leaving the FATAL phase is attempted.
var ErrTerminal = errors.New("fatal phase is terminal")

type FatalInfo struct {
	Title   string
	Message string
	Footer  string
}

type State struct {
	Phase Phase
	Fatal FatalInfo
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: BOOTING}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) SetPhase(phase Phase) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.state.Phase == FATAL && phase != FATAL {
		return fmt.Errorf("set phase %s: %w", phase, ErrTerminal)
	}
	store.state.Phase = phase
	return nil
}

// SetFatal records the error shown on screen and enters FATAL. Only the
// first fatal error is kept.
func (store *Store) SetFatal(info FatalInfo) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.state.Phase == FATAL {
		return
	}
	store.state.Phase = FATAL
	store.state.Fatal = info
}
