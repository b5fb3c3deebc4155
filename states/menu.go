package states

import (
	"time"

	"github.com/lixenwraith/cookie-crunch/engine"
	"github.com/lixenwraith/cookie-crunch/event"
)

// MainMenuState waits for a run request from the input layer
type MainMenuState struct {
	subs []event.Subscription
}

// NewMainMenu creates a fresh menu state
func NewMainMenu() *MainMenuState {
	return &MainMenuState{}
}

func (s *MainMenuState) Name() string { return "MainMenu" }

func (s *MainMenuState) Enter(ctx *engine.Context) {
	s.subs = append(s.subs,
		ctx.Bus.Subscribe(event.EventGameStartRequest, func(ev event.Event) {
			p := ev.Payload.(*event.GameStartPayload)
			ctx.Machine.RequestTransition(NewGameplay(p.Mode))
		}))
}

func (s *MainMenuState) Update(ctx *engine.Context, dt time.Duration) {}

func (s *MainMenuState) Exit(ctx *engine.Context) {
	for _, sub := range s.subs {
		ctx.Bus.Unsubscribe(sub)
	}
	s.subs = nil
}
