package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cookie-crunch/engine"
	"github.com/lixenwraith/cookie-crunch/event"
	"github.com/lixenwraith/cookie-crunch/game"
	"github.com/lixenwraith/cookie-crunch/service"
	"github.com/lixenwraith/cookie-crunch/states"
)

const answerFlashDuration = 2 * time.Second

// View renders the current machine state to the terminal and turns
// key presses into game events. The screen is owned by the caller.
type View struct {
	ctx    *engine.Context
	screen tcell.Screen

	subs []event.Subscription

	score      int
	lives      int
	remaining  time.Duration
	question   *event.QuestionGeneratedPayload
	lastAnswer *event.AnswerSubmittedPayload
	flashUntil time.Time
}

// NewView creates the terminal view service
func NewView(ctx *engine.Context, screen tcell.Screen) *View {
	return &View{
		ctx:    ctx,
		screen: screen,
	}
}

func (v *View) Name() string { return "terminal" }

// Start subscribes to the display-relevant events
func (v *View) Start() error {
	v.lives = v.ctx.Config.Lives

	v.subs = append(v.subs,
		v.ctx.Bus.Subscribe(event.EventQuestionGenerated, func(ev event.Event) {
			v.question = ev.Payload.(*event.QuestionGeneratedPayload)
		}),
		v.ctx.Bus.Subscribe(event.EventScoreChanged, func(ev event.Event) {
			v.score = ev.Payload.(*event.ScoreChangedPayload).Score
		}),
		v.ctx.Bus.Subscribe(event.EventLivesChanged, func(ev event.Event) {
			v.lives = ev.Payload.(*event.LivesChangedPayload).Remaining
		}),
		v.ctx.Bus.Subscribe(event.EventTimerTick, func(ev event.Event) {
			v.remaining = ev.Payload.(*event.TimerTickPayload).Remaining
		}),
		v.ctx.Bus.Subscribe(event.EventAnswerSubmitted, func(ev event.Event) {
			v.lastAnswer = ev.Payload.(*event.AnswerSubmittedPayload)
			v.flashUntil = v.ctx.Time.Now().Add(answerFlashDuration)
		}),
		v.ctx.Bus.Subscribe(event.EventGameStartRequest, func(ev event.Event) {
			v.score = 0
			v.lives = v.ctx.Config.Lives
			v.remaining = 0
			v.question = nil
			v.lastAnswer = nil
		}),
	)
	return nil
}

// Stop drops the event subscriptions
func (v *View) Stop() error {
	for _, sub := range v.subs {
		v.ctx.Bus.Unsubscribe(sub)
	}
	v.subs = nil
	return nil
}

// Render draws one frame for the current machine state
func (v *View) Render() {
	v.screen.Clear()

	current := v.ctx.Machine.Current()
	if current == nil {
		v.screen.Show()
		return
	}

	switch s := current.(type) {
	case *states.MainMenuState:
		v.renderMenu()
	case *states.GameplayState:
		v.renderGameplay()
	case *states.PracticeCompleteState:
		v.renderPracticeComplete(s)
	case *states.GameOverState:
		v.renderGameOver(s)
	}

	v.screen.Show()
}

// HandleKey maps a key press to game input
// Returns true when the key requests application exit
func (v *View) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}

	current := v.ctx.Machine.Current()
	if current == nil {
		return false
	}

	switch current.(type) {
	case *states.MainMenuState:
		return v.handleMenuKey(ev)
	case *states.GameplayState:
		v.handleGameplayKey(ev)
	default:
		// Any key leaves the results screens
		v.ctx.Bus.Publish(event.Event{Type: event.EventReturnToMenu})
	}
	return false
}

func (v *View) handleMenuKey(ev *tcell.EventKey) bool {
	switch ev.Rune() {
	case '1':
		v.ctx.Bus.Publish(event.Event{
			Type:    event.EventGameStartRequest,
			Payload: &event.GameStartPayload{Mode: event.ModePractice},
		})
	case '2':
		v.ctx.Bus.Publish(event.Event{
			Type:    event.EventGameStartRequest,
			Payload: &event.GameStartPayload{Mode: event.ModeTimed},
		})
	case 'q', 'Q':
		return true
	}
	return false
}

func (v *View) handleGameplayKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		v.ctx.Bus.Publish(event.Event{Type: event.EventReturnToMenu})
		return
	}
	if ev.Key() == tcell.KeyEnter {
		if d, ok := service.Get[*game.DistributionManager](v.ctx.Services); ok {
			d.SubmitAnswer()
		}
		return
	}

	r := ev.Rune()
	if r >= '1' && r <= '9' {
		monster := int(r - '1')
		v.ctx.Bus.Publish(event.Event{
			Type:    event.EventCookieDropped,
			Payload: &event.CookieDroppedPayload{MonsterID: monster},
		})
	}
}

func (v *View) renderMenu() {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	titleStyle := defaultStyle.Foreground(RgbTitle).Bold(true)
	textStyle := defaultStyle.Foreground(RgbText)
	dimStyle := defaultStyle.Foreground(RgbDim)

	v.drawText(4, 2, "COOKIE CRUNCH", titleStyle)
	v.drawText(4, 3, "division practice for hungry monsters", dimStyle)

	v.drawText(4, 6, "[1] Practice  - fixed number of questions", textStyle)
	v.drawText(4, 7, "[2] Timed     - beat the clock", textStyle)
	v.drawText(4, 9, "[q] Quit", textStyle)

	v.drawText(4, 12, "Drop cookies with keys 1-5, Enter submits, Esc returns here", dimStyle)
}

func (v *View) renderGameplay() {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	// Question line
	if v.question != nil {
		text := fmt.Sprintf("%d cookies / %d monsters = ?", v.question.Dividend, v.question.Divisor)
		v.drawText(4, 1, text, defaultStyle.Foreground(RgbQuestion).Bold(true))
	}

	// Status line: score, lives, timer when armed
	v.drawText(4, 3, fmt.Sprintf("Score: %d", v.score), defaultStyle.Foreground(RgbScore))
	hearts := ""
	for i := 0; i < v.lives; i++ {
		hearts += "♥ "
	}
	v.drawText(20, 3, hearts, defaultStyle.Foreground(RgbLives))
	if tm, ok := service.Get[*game.TimerManager](v.ctx.Services); ok && tm.Armed() {
		v.drawText(36, 3, fmt.Sprintf("Time: %ds", int(v.remaining/time.Second)),
			defaultStyle.Foreground(RgbTimer))
	}

	// Monster table
	if d, ok := service.Get[*game.DistributionManager](v.ctx.Services); ok {
		v.renderRoster(d, defaultStyle)
	}

	// Answer flash after each question
	if v.lastAnswer != nil && v.ctx.Time.Now().Before(v.flashUntil) {
		v.renderAnswerFlash(defaultStyle)
	}
}

func (v *View) renderRoster(d *game.DistributionManager, defaultStyle tcell.Style) {
	monsterStyle := defaultStyle.Foreground(RgbMonster)
	cookieStyle := defaultStyle.Foreground(RgbCookie)

	for i, m := range d.Roster().Active() {
		x := 4 + i*12
		v.drawText(x, 6, fmt.Sprintf("(%d) %s", m.ID+1, m.Name), monsterStyle)

		// One cookie glyph per row under each monster
		for c := 0; c < m.Cookies; c++ {
			v.screen.SetContent(x+c%10, 8+c/10, '●', nil, cookieStyle)
		}
		v.drawText(x, 7, fmt.Sprintf("%d", m.Cookies), cookieStyle)
	}
}

func (v *View) renderAnswerFlash(defaultStyle tcell.Style) {
	if v.lastAnswer.IsCorrect {
		v.drawText(4, 12, fmt.Sprintf("Correct! Everyone got %d cookies", v.lastAnswer.Correct),
			defaultStyle.Foreground(RgbCorrect).Bold(true))
	} else {
		v.drawText(4, 12, fmt.Sprintf("Not quite, the answer was %d", v.lastAnswer.Correct),
			defaultStyle.Foreground(RgbIncorrect).Bold(true))
	}
}

func (v *View) renderPracticeComplete(s *states.PracticeCompleteState) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	summary := s.Summary()

	v.drawText(4, 2, "PRACTICE COMPLETE", defaultStyle.Foreground(RgbCorrect).Bold(true))
	v.drawText(4, 4, fmt.Sprintf("Questions answered: %d", summary.Answered),
		defaultStyle.Foreground(RgbText))
	v.drawText(4, 5, fmt.Sprintf("Final score: %d", summary.Score),
		defaultStyle.Foreground(RgbScore))
	v.drawStats(4, 7, defaultStyle)
	v.drawText(4, 9, "Press any key for the menu", defaultStyle.Foreground(RgbDim))
}

func (v *View) renderGameOver(s *states.GameOverState) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	v.drawText(4, 2, "GAME OVER", defaultStyle.Foreground(RgbIncorrect).Bold(true))
	v.drawText(4, 4, s.Reason().String(), defaultStyle.Foreground(RgbText))
	v.drawText(4, 5, fmt.Sprintf("Final score: %d", s.Score()),
		defaultStyle.Foreground(RgbScore))
	v.drawStats(4, 7, defaultStyle)
	v.drawText(4, 9, "Press any key for the menu", defaultStyle.Foreground(RgbDim))
}

// drawStats shows the session counters on the results screens
func (v *View) drawStats(x, y int, defaultStyle tcell.Style) {
	text := fmt.Sprintf("answered %d | rounds %d | events %d | ticks %d",
		v.ctx.Status.Ints.Get("game.answered").Load(),
		v.ctx.Status.Ints.Get("game.rounds").Load(),
		v.ctx.Status.Ints.Get("event.published").Load(),
		v.ctx.Status.Ints.Get("engine.ticks").Load())
	v.drawText(x, y, text, defaultStyle.Foreground(RgbDim))
}

// drawText writes a string left to right at the given cell
func (v *View) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		v.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
