package pool

import (
	"errors"
	"fmt"
)

// Policy selects what Get does when no instance is available
type Policy int

const (
	// PolicyGrow creates a fresh instance on demand via the factory
	PolicyGrow Policy = iota
	// PolicyBounded refuses beyond the prewarmed count
	PolicyBounded
)

// Misuse and absence sentinels, matchable with errors.Is
var (
	ErrDuplicatePool = errors.New("pool already exists")
	ErrUnknownPool   = errors.New("unknown pool")
	ErrNotOnLoan     = errors.New("instance not on loan")
)

// Pool recycles instances of T under a logical name
//
// Invariant: every instance the factory ever produced is in exactly one
// of {available, on loan} until Drain. All mutation goes through Get/Put;
// double-return and return-of-foreign-instance are detected, reported
// misuse, never silent corruption of the available set.
type Pool[T comparable] struct {
	name    string
	policy  Policy
	factory func() T
	reset   func(T)

	available []T
	onLoan    map[T]struct{}
}

func newPool[T comparable](name string, factory func() T, prewarm int, policy Policy, reset func(T)) *Pool[T] {
	p := &Pool[T]{
		name:      name,
		policy:    policy,
		factory:   factory,
		reset:     reset,
		available: make([]T, 0, prewarm),
		onLoan:    make(map[T]struct{}),
	}
	for i := 0; i < prewarm; i++ {
		p.available = append(p.available, factory())
	}
	return p
}

// Name returns the logical pool name
func (p *Pool[T]) Name() string { return p.name }

// Get hands out one instance, marking it on loan
// Under PolicyBounded an exhausted pool returns (zero, false)
func (p *Pool[T]) Get() (T, bool) {
	if len(p.available) == 0 {
		if p.policy == PolicyBounded {
			var zero T
			return zero, false
		}
		inst := p.factory()
		p.onLoan[inst] = struct{}{}
		return inst, true
	}

	inst := p.available[len(p.available)-1]
	p.available = p.available[:len(p.available)-1]
	p.onLoan[inst] = struct{}{}
	return inst, true
}

// Put moves an on-loan instance back to available, running the reset
// hook first. Returning an instance not on loan from this pool is a
// reported misuse that leaves the available set untouched.
func (p *Pool[T]) Put(inst T) error {
	if _, ok := p.onLoan[inst]; !ok {
		return fmt.Errorf("pool %s: %w", p.name, ErrNotOnLoan)
	}
	delete(p.onLoan, inst)
	if p.reset != nil {
		p.reset(inst)
	}
	p.available = append(p.available, inst)
	return nil
}

// Available returns the count of instances ready to loan
func (p *Pool[T]) Available() int { return len(p.available) }

// OnLoan returns the count of instances currently handed out
func (p *Pool[T]) OnLoan() int { return len(p.onLoan) }

// Size returns the total population of the pool
func (p *Pool[T]) Size() int { return len(p.available) + len(p.onLoan) }

// Drain releases every instance, loaned or available, to dispose and
// empties the pool. The pool is reusable afterwards but repopulates only
// through PolicyGrow gets.
func (p *Pool[T]) Drain(dispose func(T)) {
	for _, inst := range p.available {
		if dispose != nil {
			dispose(inst)
		}
	}
	for inst := range p.onLoan {
		if dispose != nil {
			dispose(inst)
		}
	}
	p.available = p.available[:0]
	p.onLoan = make(map[T]struct{})
}
