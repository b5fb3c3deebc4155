package states

import (
	"time"

	"github.com/lixenwraith/cookie-crunch/engine"
	"github.com/lixenwraith/cookie-crunch/event"
	"github.com/lixenwraith/cookie-crunch/game"
	"github.com/lixenwraith/cookie-crunch/parameter"
	"github.com/lixenwraith/cookie-crunch/service"
)

// GameplayState owns one practice run
//
// Enter registers the per-run managers into the locator and subscribes
// everything; Exit tears all of it down one-for-one. Run-ending
// conditions arrive as events and are converted into queued transitions,
// never applied mid-dispatch.
type GameplayState struct {
	mode event.GameMode

	question     *game.QuestionManager
	score        *game.ScoreManager
	lives        *game.LivesManager
	timer        *game.TimerManager
	distribution *game.DistributionManager

	subs []event.Subscription
}

// NewGameplay creates a run in the given mode
func NewGameplay(mode event.GameMode) *GameplayState {
	return &GameplayState{mode: mode}
}

func (s *GameplayState) Name() string { return "Gameplay" }

func (s *GameplayState) Enter(ctx *engine.Context) {
	roster := game.NewRoster(parameter.MaxMonsters)

	s.question = game.NewQuestionManager(ctx)
	s.score = game.NewScoreManager(ctx)
	s.lives = game.NewLivesManager(ctx)
	s.timer = game.NewTimerManager(ctx, s.mode == event.ModeTimed)
	s.distribution = game.NewDistributionManager(ctx, roster)

	service.Register(ctx.Services, s.question)
	service.Register(ctx.Services, s.score)
	service.Register(ctx.Services, s.lives)
	service.Register(ctx.Services, s.timer)
	service.Register(ctx.Services, s.distribution)

	// Score and lives bind before the question manager so the final
	// answer is scored before the run summary is built
	s.score.Bind()
	s.lives.Bind()
	s.question.Bind()
	s.distribution.Bind()

	s.subs = append(s.subs,
		ctx.Bus.Subscribe(event.EventLivesDepleted, func(event.Event) {
			ctx.Machine.RequestTransition(NewGameOver(ReasonLivesDepleted, s.score.Score()))
		}),
		ctx.Bus.Subscribe(event.EventTimerExpired, func(event.Event) {
			ctx.Machine.RequestTransition(NewGameOver(ReasonTimerExpired, s.score.Score()))
		}),
		ctx.Bus.Subscribe(event.EventPracticeComplete, func(ev event.Event) {
			p := ev.Payload.(*event.PracticeCompletePayload)
			ctx.Machine.RequestTransition(NewPracticeComplete(p))
		}),
		ctx.Bus.Subscribe(event.EventReturnToMenu, func(event.Event) {
			ctx.Machine.RequestTransition(NewMainMenu())
		}),
	)

	s.question.Start()
}

func (s *GameplayState) Update(ctx *engine.Context, dt time.Duration) {
	s.timer.Advance(dt)
}

func (s *GameplayState) Exit(ctx *engine.Context) {
	for _, sub := range s.subs {
		ctx.Bus.Unsubscribe(sub)
	}
	s.subs = nil

	s.question.Close()
	s.score.Close()
	s.lives.Close()
	s.timer.Close()
	s.distribution.Close()

	service.Unregister[*game.QuestionManager](ctx.Services)
	service.Unregister[*game.ScoreManager](ctx.Services)
	service.Unregister[*game.LivesManager](ctx.Services)
	service.Unregister[*game.TimerManager](ctx.Services)
	service.Unregister[*game.DistributionManager](ctx.Services)
}
