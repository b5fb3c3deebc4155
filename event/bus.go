// @focus: #event { bus }
package event

import (
	"log"
	"sync/atomic"
)

// Handler processes a single published event
// Handlers run synchronously on the publishing goroutine
type Handler func(Event)

// Subscription is the handle returned by Subscribe
// Unsubscribing through the handle removes exactly that registration
type Subscription struct {
	entry *entry
}

type entry struct {
	fn     Handler
	active bool
}

// Bus is a synchronous typed publish/subscribe dispatcher
//
// Architecture:
//   - Single-threaded: publish, subscribe, unsubscribe all happen on the
//     game loop goroutine, so no locking is needed
//   - Re-entrant-safe: dispatch iterates a snapshot of the handler list,
//     so handlers may subscribe, unsubscribe, or publish during dispatch
//     without corrupting the in-flight iteration
//   - Handlers fire in subscription order; a handler added during
//     dispatch first fires on the next publish of that type
//   - A panicking handler is recovered and logged; dispatch continues to
//     the remaining handlers
type Bus struct {
	handlers map[Type][]*entry

	// Cached metric pointer, optional
	statPublished *atomic.Int64
}

// NewBus creates an empty event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]*entry),
	}
}

// SetPublishCounter caches a metric pointer incremented once per Publish
func (b *Bus) SetPublishCounter(counter *atomic.Int64) {
	b.statPublished = counter
}

// Subscribe registers fn for every future publish of type t
// Returns the handle required to unsubscribe
func (b *Bus) Subscribe(t Type, fn Handler) Subscription {
	e := &entry{fn: fn, active: true}
	b.handlers[t] = append(b.handlers[t], e)
	return Subscription{entry: e}
}

// Unsubscribe removes the registration behind the handle
// No-op if already removed; repeated teardown never faults
func (b *Bus) Unsubscribe(s Subscription) {
	if s.entry == nil || !s.entry.active {
		return
	}
	s.entry.active = false
	for t, entries := range b.handlers {
		for i, e := range entries {
			if e == s.entry {
				b.handlers[t] = append(entries[:i], entries[i+1:]...)
				return
			}
		}
	}
}

// Publish synchronously invokes every live handler registered for the
// event's type, in subscription order. Delivery is at-most-once per
// publish: handlers unsubscribed mid-dispatch but not yet reached are
// skipped, handlers added mid-dispatch wait for the next publish.
func (b *Bus) Publish(ev Event) {
	if b.statPublished != nil {
		b.statPublished.Add(1)
	}

	entries := b.handlers[ev.Type]
	if len(entries) == 0 {
		return
	}

	// Snapshot: the live slice may be mutated by the handlers below
	snapshot := make([]*entry, len(entries))
	copy(snapshot, entries)

	for _, e := range snapshot {
		if !e.active {
			continue
		}
		b.invoke(e, ev)
	}
}

// invoke bulkheads one broken consumer from breaking the whole event turn
func (b *Bus) invoke(e *entry, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("event: handler panic during %s: %v", Name(ev.Type), r)
		}
	}()
	e.fn(ev)
}

// HasHandlers returns true if any handlers are registered for t
func (b *Bus) HasHandlers(t Type) bool {
	return len(b.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for t
func (b *Bus) HandlerCount(t Type) int {
	return len(b.handlers[t])
}
