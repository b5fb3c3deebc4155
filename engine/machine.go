package engine

import (
	"errors"
	"log"
	"time"
)

// ErrTransitionPending reports a transition requested while another is
// already queued; the first request wins
var ErrTransitionPending = errors.New("transition already pending")

// State is one node of the game lifecycle
//
// Enter and Exit are paired exactly once per activation. Update is
// called zero or more times between them, never before Enter completes
// or after Exit begins. States are created fresh per transition and
// discarded after Exit.
type State interface {
	// Name identifies the state in logs and the UI
	Name() string

	// Enter resolves services, subscribes to events, performs one-time setup
	Enter(ctx *Context)

	// Update advances the state by one scheduling tick
	Update(ctx *Context, dt time.Duration)

	// Exit unsubscribes every subscription taken in Enter, one-for-one,
	// and releases anything the state created
	Exit(ctx *Context)
}

// Machine drives the menu -> gameplay -> results lifecycle
//
// Transitions are requested, never executed re-entrantly: RequestTransition
// queues the next state and Tick applies it after the current update and
// any event dispatch have fully unwound.
type Machine struct {
	current State
	pending State
}

// NewMachine creates a machine with no current state
func NewMachine() *Machine {
	return &Machine{}
}

// Start enters the initial state
func (m *Machine) Start(ctx *Context, initial State) {
	m.current = initial
	m.current.Enter(ctx)
}

// Current returns the active state, nil before Start
func (m *Machine) Current() State {
	return m.current
}

// RequestTransition queues next to become current at the end of the tick
// A second request in the same tick is reported and dropped
func (m *Machine) RequestTransition(next State) error {
	if m.pending != nil {
		log.Printf("engine: transition to %s dropped, %s already pending", next.Name(), m.pending.Name())
		return ErrTransitionPending
	}
	m.pending = next
	return nil
}

// Tick updates the current state, then applies at most one queued
// transition at the safe point after the update unwinds
func (m *Machine) Tick(ctx *Context, dt time.Duration) {
	if m.current != nil {
		m.current.Update(ctx, dt)
	}

	if m.pending == nil {
		return
	}
	next := m.pending
	m.pending = nil

	if m.current != nil {
		m.current.Exit(ctx)
	}
	m.current = next
	m.current.Enter(ctx)
}
