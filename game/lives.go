package game

import (
	"github.com/lixenwraith/cookie-crunch/engine"
	"github.com/lixenwraith/cookie-crunch/event"
)

// LivesManager counts down lives on incorrect answers
// Depletion fires exactly one terminal event
type LivesManager struct {
	ctx       *engine.Context
	remaining int
	depleted  bool
	subs      []event.Subscription
}

// NewLivesManager creates a manager holding the configured life count
func NewLivesManager(ctx *engine.Context) *LivesManager {
	return &LivesManager{ctx: ctx, remaining: ctx.Config.Lives}
}

// Bind subscribes the manager to answer outcomes
func (l *LivesManager) Bind() {
	l.subs = append(l.subs,
		l.ctx.Bus.Subscribe(event.EventAnswerSubmitted, l.onAnswer))
}

// Close unsubscribes everything taken in Bind
func (l *LivesManager) Close() {
	for _, sub := range l.subs {
		l.ctx.Bus.Unsubscribe(sub)
	}
	l.subs = nil
}

// Remaining returns the current life count
func (l *LivesManager) Remaining() int { return l.remaining }

func (l *LivesManager) onAnswer(ev event.Event) {
	p := ev.Payload.(*event.AnswerSubmittedPayload)
	if p.IsCorrect || l.depleted {
		return
	}

	l.remaining--
	if l.remaining < 0 {
		l.remaining = 0
	}
	l.ctx.Bus.Publish(event.Event{
		Type:    event.EventLivesChanged,
		Payload: &event.LivesChangedPayload{Remaining: l.remaining},
	})

	if l.remaining == 0 {
		l.depleted = true
		l.ctx.Bus.Publish(event.Event{Type: event.EventLivesDepleted})
	}
}
