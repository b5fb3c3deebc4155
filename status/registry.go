package status

import "sync/atomic"

// Registry is the central runtime counter facade
// Components cache pointers during setup; hot loops write atomics directly
type Registry struct {
	Ints *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints: NewMetricMap[atomic.Int64](),
	}
}
