package game

import (
	"time"

	"github.com/lixenwraith/cookie-crunch/engine"
	"github.com/lixenwraith/cookie-crunch/event"
)

// TimerManager owns the round countdown in timed mode
// The countdown is tick-advanced state; expiry publishes one terminal
// event and the timer disarms itself
type TimerManager struct {
	ctx       *engine.Context
	countdown *engine.Countdown
}

// NewTimerManager creates the round timer; armed selects timed mode
func NewTimerManager(ctx *engine.Context, armed bool) *TimerManager {
	t := &TimerManager{ctx: ctx}
	if armed {
		t.countdown = engine.NewCountdown(ctx.Config.RoundTimer, t.onSecond, t.onExpire)
	}
	return t
}

// Advance consumes one tick of the countdown; no-op when unarmed
func (t *TimerManager) Advance(dt time.Duration) {
	if t.countdown != nil {
		t.countdown.Advance(dt)
	}
}

// Close disarms the countdown so it cannot fire after state exit
func (t *TimerManager) Close() {
	if t.countdown != nil {
		t.countdown.Stop()
	}
}

// Armed returns true in timed mode
func (t *TimerManager) Armed() bool { return t.countdown != nil }

// Remaining returns the time left, zero when unarmed
func (t *TimerManager) Remaining() time.Duration {
	if t.countdown == nil {
		return 0
	}
	return t.countdown.Remaining()
}

func (t *TimerManager) onSecond(remaining time.Duration) {
	t.ctx.Bus.Publish(event.Event{
		Type:    event.EventTimerTick,
		Payload: &event.TimerTickPayload{Remaining: remaining},
	})
}

func (t *TimerManager) onExpire() {
	t.ctx.Bus.Publish(event.Event{Type: event.EventTimerExpired})
}
