package game

import (
	"github.com/lixenwraith/cookie-crunch/engine"
	"github.com/lixenwraith/cookie-crunch/event"
)

// ScoreManager accumulates points for correct answers
type ScoreManager struct {
	ctx   *engine.Context
	score int
	subs  []event.Subscription
}

// NewScoreManager creates a zero-score manager for one run
func NewScoreManager(ctx *engine.Context) *ScoreManager {
	return &ScoreManager{ctx: ctx}
}

// Bind subscribes the manager to answer outcomes
func (s *ScoreManager) Bind() {
	s.subs = append(s.subs,
		s.ctx.Bus.Subscribe(event.EventAnswerSubmitted, s.onAnswer))
}

// Close unsubscribes everything taken in Bind
func (s *ScoreManager) Close() {
	for _, sub := range s.subs {
		s.ctx.Bus.Unsubscribe(sub)
	}
	s.subs = nil
}

// Score returns the current run score
func (s *ScoreManager) Score() int { return s.score }

func (s *ScoreManager) onAnswer(ev event.Event) {
	p := ev.Payload.(*event.AnswerSubmittedPayload)
	if !p.IsCorrect {
		return
	}
	delta := s.ctx.Config.PointsPerCorrect
	s.score += delta
	s.ctx.Bus.Publish(event.Event{
		Type:    event.EventScoreChanged,
		Payload: &event.ScoreChangedPayload{Score: s.score, Delta: delta},
	})
}
