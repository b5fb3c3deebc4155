package service

import "fmt"

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: audio backends, terminals
//
// Lifecycle:
//  1. Construction (via factory)
//  2. Start() - acquire resources, launch background goroutines
//  3. [runtime operation]
//  4. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// Hub owns the ordered set of lifecycle services
// Start order is registration order; Stop runs in reverse
type Hub struct {
	services []Service
	started  []Service
}

// NewHub creates an empty service hub
func NewHub() *Hub {
	return &Hub{}
}

// Register adds a service instance to the hub
func (h *Hub) Register(svc Service) error {
	for _, existing := range h.services {
		if existing.Name() == svc.Name() {
			return fmt.Errorf("service already registered: %s", svc.Name())
		}
	}
	h.services = append(h.services, svc)
	return nil
}

// StartAll calls Start on all services in registration order
// On failure, calls Stop on already-started services in reverse order
func (h *Hub) StartAll() error {
	h.started = nil

	for _, svc := range h.services {
		if err := svc.Start(); err != nil {
			for i := len(h.started) - 1; i >= 0; i-- {
				h.started[i].Stop()
			}
			h.started = nil
			return fmt.Errorf("service %s start failed: %w", svc.Name(), err)
		}
		h.started = append(h.started, svc)
	}

	return nil
}

// StopAll calls Stop on all started services in reverse order
// Errors are swallowed so every service gets Stop called
func (h *Hub) StopAll() {
	for i := len(h.started) - 1; i >= 0; i-- {
		h.started[i].Stop()
	}
	h.started = nil
}
