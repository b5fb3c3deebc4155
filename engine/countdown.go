package engine

import "time"

// Countdown is timer state advanced once per tick
// Reaching zero raises the expire callback exactly once, never retriggers
type Countdown struct {
	remaining time.Duration
	running   bool
	lastWhole int64

	onSecond func(remaining time.Duration)
	onExpire func()
}

// NewCountdown arms a countdown of duration d
// onSecond fires when the remaining whole second changes; onExpire fires
// once at zero. Either callback may be nil.
func NewCountdown(d time.Duration, onSecond func(time.Duration), onExpire func()) *Countdown {
	return &Countdown{
		remaining: d,
		running:   true,
		lastWhole: int64(d / time.Second),
		onSecond:  onSecond,
		onExpire:  onExpire,
	}
}

// Advance consumes dt of the countdown
func (c *Countdown) Advance(dt time.Duration) {
	if !c.running {
		return
	}

	c.remaining -= dt
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		if c.onExpire != nil {
			c.onExpire()
		}
		return
	}

	if whole := int64(c.remaining / time.Second); whole != c.lastWhole {
		c.lastWhole = whole
		if c.onSecond != nil {
			c.onSecond(c.remaining.Truncate(time.Second))
		}
	}
}

// Stop disarms the countdown without firing expire
func (c *Countdown) Stop() {
	c.running = false
}

// Remaining returns the time left
func (c *Countdown) Remaining() time.Duration {
	return c.remaining
}

// Running returns true while the countdown is armed
func (c *Countdown) Running() bool {
	return c.running
}
