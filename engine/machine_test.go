package engine

import (
	"errors"
	"testing"
	"time"
)

// probeState records lifecycle calls and optionally requests a
// transition mid-update, the way gameplay states do from event handlers
type probeState struct {
	name    string
	log     *[]string
	machine *Machine
	next    State // Requested during the first Update when set
}

func (s *probeState) Name() string { return s.name }

func (s *probeState) Enter(ctx *Context) {
	*s.log = append(*s.log, "enter:"+s.name)
}

func (s *probeState) Update(ctx *Context, dt time.Duration) {
	*s.log = append(*s.log, "update:"+s.name)
	if s.next != nil {
		s.machine.RequestTransition(s.next)
		s.next = nil
	}
}

func (s *probeState) Exit(ctx *Context) {
	*s.log = append(*s.log, "exit:"+s.name)
}

// TestEnterExitPairing verifies enter and exit alternate strictly and
// update never lands outside an activation
func TestEnterExitPairing(t *testing.T) {
	ctx, _ := NewTestContext()
	m := ctx.Machine

	var log []string
	second := &probeState{name: "results", log: &log, machine: m}
	first := &probeState{name: "gameplay", log: &log, machine: m, next: second}

	m.Start(ctx, first)
	m.Tick(ctx, 16*time.Millisecond) // Requests transition mid-update
	m.Tick(ctx, 16*time.Millisecond)

	want := []string{
		"enter:gameplay",
		"update:gameplay",
		"exit:gameplay",
		"enter:results",
		"update:results",
	}
	if len(log) != len(want) {
		t.Fatalf("Expected log %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("Expected log %v, got %v", want, log)
		}
	}
}

// TestTransitionAppliedAtTickEnd verifies a mid-update request does not
// exit the state re-entrantly
func TestTransitionAppliedAtTickEnd(t *testing.T) {
	ctx, _ := NewTestContext()
	m := ctx.Machine

	var log []string
	next := &probeState{name: "b", log: &log, machine: m}
	first := &probeState{name: "a", log: &log, machine: m, next: next}

	m.Start(ctx, first)
	if m.Current().Name() != "a" {
		t.Fatalf("Expected current state a, got %s", m.Current().Name())
	}

	m.Tick(ctx, time.Millisecond)

	// Update of a must have completed before its exit
	if log[1] != "update:a" || log[2] != "exit:a" {
		t.Errorf("Transition applied before update unwound: %v", log)
	}
	if m.Current().Name() != "b" {
		t.Errorf("Expected current state b after tick, got %s", m.Current().Name())
	}
}

// TestDoubleRequestDropped verifies the first request wins and the
// second is reported
func TestDoubleRequestDropped(t *testing.T) {
	ctx, _ := NewTestContext()
	m := ctx.Machine

	var log []string
	base := &probeState{name: "base", log: &log, machine: m}
	winner := &probeState{name: "winner", log: &log, machine: m}
	loser := &probeState{name: "loser", log: &log, machine: m}

	m.Start(ctx, base)
	if err := m.RequestTransition(winner); err != nil {
		t.Fatalf("First request failed: %v", err)
	}
	if err := m.RequestTransition(loser); !errors.Is(err, ErrTransitionPending) {
		t.Errorf("Expected ErrTransitionPending, got %v", err)
	}

	m.Tick(ctx, time.Millisecond)
	if m.Current().Name() != "winner" {
		t.Errorf("Expected first request to win, current is %s", m.Current().Name())
	}
}

// TestUpdateSafeWithZeroTicks verifies a state may see zero updates
// between enter and exit
func TestUpdateSafeWithZeroTicks(t *testing.T) {
	ctx, _ := NewTestContext()
	m := ctx.Machine

	var log []string
	a := &probeState{name: "a", log: &log, machine: m}
	b := &probeState{name: "b", log: &log, machine: m}

	m.Start(ctx, a)
	m.RequestTransition(b)
	m.Tick(ctx, time.Millisecond)

	// a got exactly one update before exiting; b has had none yet
	count := 0
	for _, l := range log {
		if l == "update:b" {
			count++
		}
	}
	if count != 0 {
		t.Errorf("State b updated %d times before its first full tick", count)
	}
	if log[len(log)-1] != "enter:b" {
		t.Errorf("Expected enter:b last, got %v", log)
	}
}
