package service

import "reflect"

// Locator is a capability-keyed registry of long-lived subsystem instances
//
// Each capability type maps to exactly one live instance. Registration is
// last-writer-wins; lookup of an absent capability is a recoverable
// ok-form miss, never a fault. The locator stores non-owning references:
// lifetime stays with whoever created the instance.
//
// The locator is passed explicitly into the components that need it,
// never reached through a package global, to keep dependencies visible
// and testable.
type Locator struct {
	services map[reflect.Type]any
}

// NewLocator creates an empty locator
func NewLocator() *Locator {
	return &Locator{
		services: make(map[reflect.Type]any),
	}
}

func capabilityKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register stores instance under capability T, overwriting any prior
// registration for that capability
func Register[T any](l *Locator, instance T) {
	l.services[capabilityKey[T]()] = instance
}

// Get returns the currently registered instance for capability T
// The second result is false when nothing is registered
func Get[T any](l *Locator) (T, bool) {
	if v, ok := l.services[capabilityKey[T]()]; ok {
		return v.(T), true
	}
	var zero T
	return zero, false
}

// Unregister removes the mapping for capability T if present
func Unregister[T any](l *Locator) {
	delete(l.services, capabilityKey[T]())
}

// Count returns the number of registered capabilities
func (l *Locator) Count() int {
	return len(l.services)
}
