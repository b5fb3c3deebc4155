package engine

import "time"

// Task is a scheduled-callback record owned by whoever created it
// Cancelling before the task fires guarantees the callback never runs,
// so state Exit can invalidate every callback it scheduled
type Task struct {
	due       time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

// Cancel discards the task; a cancelled callback never fires
func (t *Task) Cancel() {
	t.cancelled = true
}

// Fired returns true once the callback has run
func (t *Task) Fired() bool {
	return t.fired
}

// Scheduler runs delayed callbacks on the cooperative game tick
// Single-threaded: Advance is called once per tick from the update loop
type Scheduler struct {
	elapsed time.Duration
	tasks   []*Task
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once d has elapsed in game time
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	t := &Task{due: s.elapsed + d, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves game time forward and fires due tasks in scheduling
// order. Tasks scheduled by a firing callback wait for the next Advance.
func (s *Scheduler) Advance(dt time.Duration) {
	s.elapsed += dt

	// Snapshot: callbacks may schedule new tasks while we iterate
	snapshot := s.tasks

	var remaining []*Task
	for _, t := range snapshot {
		if t.cancelled {
			continue
		}
		if t.due <= s.elapsed {
			t.fired = true
			t.fn()
			continue
		}
		remaining = append(remaining, t)
	}

	// Keep tasks added during the callbacks above
	if added := len(s.tasks) - len(snapshot); added > 0 {
		remaining = append(remaining, s.tasks[len(snapshot):]...)
	}
	s.tasks = remaining
}

// Pending returns the number of live scheduled tasks
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}
