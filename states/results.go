package states

import (
	"time"

	"github.com/lixenwraith/cookie-crunch/core"
	"github.com/lixenwraith/cookie-crunch/engine"
	"github.com/lixenwraith/cookie-crunch/event"
)

// GameOverReason names the condition that ended the run
type GameOverReason int

const (
	ReasonLivesDepleted GameOverReason = iota
	ReasonTimerExpired
)

func (r GameOverReason) String() string {
	switch r {
	case ReasonLivesDepleted:
		return "out of lives"
	case ReasonTimerExpired:
		return "time ran out"
	}
	return "unknown"
}

// PracticeCompleteState shows the run summary until the player returns
// to the menu
type PracticeCompleteState struct {
	summary *event.PracticeCompletePayload
	subs    []event.Subscription
}

// NewPracticeComplete wraps the completion summary for display
func NewPracticeComplete(summary *event.PracticeCompletePayload) *PracticeCompleteState {
	return &PracticeCompleteState{summary: summary}
}

func (s *PracticeCompleteState) Name() string { return "PracticeComplete" }

// Summary returns the run result for the presentation layer
func (s *PracticeCompleteState) Summary() *event.PracticeCompletePayload { return s.summary }

func (s *PracticeCompleteState) Enter(ctx *engine.Context) {
	ctx.Bus.Publish(event.Event{
		Type:    event.EventSoundRequest,
		Payload: &event.SoundRequestPayload{Sound: core.SoundFanfare},
	})
	s.subs = append(s.subs, subscribeReturnToMenu(ctx))
}

func (s *PracticeCompleteState) Update(ctx *engine.Context, dt time.Duration) {}

func (s *PracticeCompleteState) Exit(ctx *engine.Context) {
	for _, sub := range s.subs {
		ctx.Bus.Unsubscribe(sub)
	}
	s.subs = nil
}

// GameOverState shows why the run ended until the player returns to the
// menu
type GameOverState struct {
	reason GameOverReason
	score  int
	subs   []event.Subscription
}

// NewGameOver wraps the terminal condition for display
func NewGameOver(reason GameOverReason, score int) *GameOverState {
	return &GameOverState{reason: reason, score: score}
}

func (s *GameOverState) Name() string { return "GameOver" }

// Reason returns the condition that ended the run
func (s *GameOverState) Reason() GameOverReason { return s.reason }

// Score returns the final score of the ended run
func (s *GameOverState) Score() int { return s.score }

func (s *GameOverState) Enter(ctx *engine.Context) {
	ctx.Bus.Publish(event.Event{
		Type:    event.EventSoundRequest,
		Payload: &event.SoundRequestPayload{Sound: core.SoundGameOver},
	})
	s.subs = append(s.subs, subscribeReturnToMenu(ctx))
}

func (s *GameOverState) Update(ctx *engine.Context, dt time.Duration) {}

func (s *GameOverState) Exit(ctx *engine.Context) {
	for _, sub := range s.subs {
		ctx.Bus.Unsubscribe(sub)
	}
	s.subs = nil
}

func subscribeReturnToMenu(ctx *engine.Context) event.Subscription {
	return ctx.Bus.Subscribe(event.EventReturnToMenu, func(event.Event) {
		ctx.Machine.RequestTransition(NewMainMenu())
	})
}
