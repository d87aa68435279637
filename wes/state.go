package wes

import (
	"slices"
)

// State is the lifecycle state of a workflow run.
type State string

const (
	StateUnknown       State = "UNKNOWN"
	StateQueued        State = "QUEUED"
	StateInitializing  State = "INITIALIZING"
	StateRunning       State = "RUNNING"
	StatePaused        State = "PAUSED"
	StateComplete      State = "COMPLETE"
	StateExecutorError State = "EXECUTOR_ERROR"
	StateSystemError   State = "SYSTEM_ERROR"
	StateCanceled      State = "CANCELED"
	StateCanceling     State = "CANCELING"
)

var states = []State{
	StateUnknown,
	StateQueued,
	StateInitializing,
	StateRunning,
	StatePaused,
	StateComplete,
	StateExecutorError,
	StateSystemError,
	StateCanceled,
	StateCanceling,
}

// States returns every defined run state in lifecycle order.
func States() []State {
	return slices.Clone(states)
}

func (s State) String() string {
	return string(s)
}

// Valid reports whether s is one of the defined run states.
func (s State) Valid() bool {
	return slices.Contains(states, s)
}

// IsTerminal reports whether a run in state s will not change state again.
func (s State) IsTerminal() bool {
	switch s {
	case StateComplete, StateExecutorError, StateSystemError, StateCanceled:
		return true
	default:
		return false
	}
}

func stateNames() []string {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = string(s)
	}
	return names
}
