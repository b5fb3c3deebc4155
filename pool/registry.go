package pool

import "fmt"

// Registry maps logical names to pools created on first demand
// Pools persist for the process lifetime unless explicitly removed
type Registry struct {
	pools map[string]any
}

// NewRegistry creates an empty pool registry
func NewRegistry() *Registry {
	return &Registry{
		pools: make(map[string]any),
	}
}

// Create eagerly constructs prewarm instances under name
// Creating an existing name is a configuration error, never a merge
func Create[T comparable](r *Registry, name string, factory func() T, prewarm int, policy Policy, reset func(T)) (*Pool[T], error) {
	if _, exists := r.pools[name]; exists {
		return nil, fmt.Errorf("pool %s: %w", name, ErrDuplicatePool)
	}
	p := newPool(name, factory, prewarm, policy, reset)
	r.pools[name] = p
	return p, nil
}

// Lookup returns the pool registered under name
// The second result is false for an unknown name or a mismatched type
func Lookup[T comparable](r *Registry, name string) (*Pool[T], bool) {
	v, ok := r.pools[name]
	if !ok {
		return nil, false
	}
	p, ok := v.(*Pool[T])
	return p, ok
}

// Return puts inst back into the named pool
// An unknown name is a reported misuse, as is a foreign instance
func Return[T comparable](r *Registry, name string, inst T) error {
	p, ok := Lookup[T](r, name)
	if !ok {
		return fmt.Errorf("pool %s: %w", name, ErrUnknownPool)
	}
	return p.Put(inst)
}

// Remove drains the named pool through dispose and drops it
func Remove[T comparable](r *Registry, name string, dispose func(T)) error {
	p, ok := Lookup[T](r, name)
	if !ok {
		return fmt.Errorf("pool %s: %w", name, ErrUnknownPool)
	}
	p.Drain(dispose)
	delete(r.pools, name)
	return nil
}

// Has returns true if a pool is registered under name
func (r *Registry) Has(name string) bool {
	_, ok := r.pools[name]
	return ok
}

// Count returns the number of registered pools
func (r *Registry) Count() int {
	return len(r.pools)
}
