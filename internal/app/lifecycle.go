package app

import (
	"context"
	"sync"

	"github.com/bft-labs/yahtzee/internal/domain"
	"github.com/bft-labs/yahtzee/pkg/log"
)

// State represents the lifecycle state of the hosted game session.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateFinished
	StateAborted
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateFinished:
		return "Finished"
	case StateAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// EventEmitter is called when lifecycle state changes.
type EventEmitter interface {
	OnStateChange(previous, current State, reason string)
}

// Lifecycle manages the session state machine.
//
// Valid transitions:
//   - Idle, Finished, Aborted -> Running
//   - Running -> Finished, Aborted
type Lifecycle struct {
	mu           sync.RWMutex
	state        State
	cancel       context.CancelFunc
	logger       log.Logger
	eventEmitter EventEmitter
}

// NewLifecycle creates a lifecycle in StateIdle.
func NewLifecycle(logger log.Logger, emitter EventEmitter) *Lifecycle {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Lifecycle{
		state:        StateIdle,
		logger:       logger,
		eventEmitter: emitter,
	}
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// TransitionTo attempts to transition to a new state.
// Returns ErrSessionAlreadyRunning when starting over a running session and
// ErrNotRunning when ending a session that is not running.
func (l *Lifecycle) TransitionTo(newState State, reason string) error {
	l.mu.Lock()
	oldState := l.state

	switch oldState {
	case StateIdle, StateFinished, StateAborted:
		if newState != StateRunning {
			l.mu.Unlock()
			return domain.ErrNotRunning
		}
	case StateRunning:
		if newState != StateFinished && newState != StateAborted {
			l.mu.Unlock()
			return domain.ErrSessionAlreadyRunning
		}
		l.cancel = nil
	}

	l.state = newState
	l.mu.Unlock()

	// Emit event outside of lock
	if l.eventEmitter != nil {
		l.eventEmitter.OnStateChange(oldState, newState, reason)
	}

	l.logger.Info("session state transition",
		log.String("from", oldState.String()),
		log.String("to", newState.String()),
		log.String("reason", reason),
	)

	return nil
}

// CanStart returns true if a new session may start.
func (l *Lifecycle) CanStart() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state != StateRunning
}

// SetCancel stores the cancel function of the running session.
func (l *Lifecycle) SetCancel(cancel context.CancelFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancel = cancel
}

// Cancel asks the running session to stop. It reports whether a session was signalled.
func (l *Lifecycle) Cancel() bool {
	l.mu.Lock()
	cancel := l.cancel
	l.mu.Unlock()

	if cancel == nil {
		return false
	}
	cancel()
	return true
}
