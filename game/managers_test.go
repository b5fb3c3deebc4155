package game

import (
	"testing"
	"time"

	"github.com/lixenwraith/cookie-crunch/engine"
	"github.com/lixenwraith/cookie-crunch/event"
)

func submitAnswer(ctx *engine.Context, correct bool) {
	ctx.Bus.Publish(event.Event{
		Type:    event.EventAnswerSubmitted,
		Payload: &event.AnswerSubmittedPayload{IsCorrect: correct, Submitted: 3, Correct: 3},
	})
}

// TestScoreAccumulates verifies points for correct answers only
func TestScoreAccumulates(t *testing.T) {
	ctx, _ := engine.NewTestContext()
	ctx.Config.PointsPerCorrect = 10

	s := NewScoreManager(ctx)
	s.Bind()
	defer s.Close()

	var changes []*event.ScoreChangedPayload
	ctx.Bus.Subscribe(event.EventScoreChanged, func(ev event.Event) {
		changes = append(changes, ev.Payload.(*event.ScoreChangedPayload))
	})

	submitAnswer(ctx, true)
	submitAnswer(ctx, false)
	submitAnswer(ctx, true)

	if s.Score() != 20 {
		t.Errorf("Score = %d, want 20", s.Score())
	}
	if len(changes) != 2 {
		t.Fatalf("Expected 2 score change events, got %d", len(changes))
	}
	if changes[1].Score != 20 || changes[1].Delta != 10 {
		t.Errorf("Final change = %+v, want score 20 delta 10", changes[1])
	}
}

// TestLivesDepletedOnce verifies the terminal event fires exactly once
func TestLivesDepletedOnce(t *testing.T) {
	ctx, _ := engine.NewTestContext()
	ctx.Config.Lives = 2

	l := NewLivesManager(ctx)
	l.Bind()
	defer l.Close()

	depleted := 0
	var remaining []int
	ctx.Bus.Subscribe(event.EventLivesDepleted, func(event.Event) { depleted++ })
	ctx.Bus.Subscribe(event.EventLivesChanged, func(ev event.Event) {
		remaining = append(remaining, ev.Payload.(*event.LivesChangedPayload).Remaining)
	})

	submitAnswer(ctx, false)
	submitAnswer(ctx, true) // Correct answers never cost lives
	submitAnswer(ctx, false)
	submitAnswer(ctx, false) // Past zero

	if depleted != 1 {
		t.Errorf("Expected exactly 1 depletion event, got %d", depleted)
	}
	if l.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", l.Remaining())
	}
	if len(remaining) != 2 || remaining[0] != 1 || remaining[1] != 0 {
		t.Errorf("Lives changes = %v, want [1 0]", remaining)
	}
}

// TestTimerExpiresOnce verifies a single terminal event and per-second ticks
func TestTimerExpiresOnce(t *testing.T) {
	ctx, _ := engine.NewTestContext()
	ctx.Config.RoundTimer = 2 * time.Second

	tm := NewTimerManager(ctx, true)
	defer tm.Close()

	expired := 0
	ticks := 0
	ctx.Bus.Subscribe(event.EventTimerExpired, func(event.Event) { expired++ })
	ctx.Bus.Subscribe(event.EventTimerTick, func(event.Event) { ticks++ })

	for i := 0; i < 50; i++ {
		tm.Advance(100 * time.Millisecond) // 5s total, well past zero
	}

	if expired != 1 {
		t.Errorf("Expected exactly 1 expiry, got %d", expired)
	}
	if ticks == 0 {
		t.Error("Expected per-second tick events before expiry")
	}
	if tm.Remaining() != 0 {
		t.Errorf("Remaining = %v, want 0", tm.Remaining())
	}
}

// TestTimerUnarmed verifies practice mode never raises timer events
func TestTimerUnarmed(t *testing.T) {
	ctx, _ := engine.NewTestContext()

	tm := NewTimerManager(ctx, false)
	defer tm.Close()

	fired := false
	ctx.Bus.Subscribe(event.EventTimerExpired, func(event.Event) { fired = true })
	ctx.Bus.Subscribe(event.EventTimerTick, func(event.Event) { fired = true })

	tm.Advance(time.Hour)

	if fired {
		t.Error("Unarmed timer raised events")
	}
	if tm.Armed() {
		t.Error("Expected unarmed timer")
	}
}

// TestTimerCloseDisarms verifies a closed timer cannot fire after exit
func TestTimerCloseDisarms(t *testing.T) {
	ctx, _ := engine.NewTestContext()
	ctx.Config.RoundTimer = time.Second

	tm := NewTimerManager(ctx, true)

	expired := false
	ctx.Bus.Subscribe(event.EventTimerExpired, func(event.Event) { expired = true })

	tm.Close()
	tm.Advance(time.Minute)

	if expired {
		t.Error("Closed timer expired")
	}
}
