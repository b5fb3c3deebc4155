package game

import (
	"testing"
	"time"

	"github.com/lixenwraith/cookie-crunch/engine"
	"github.com/lixenwraith/cookie-crunch/event"
	"github.com/lixenwraith/cookie-crunch/service"
)

// TestQuestionBounds verifies generated questions respect the configured
// bounds and divide exactly
func TestQuestionBounds(t *testing.T) {
	ctx, _ := engine.NewTestContext()
	cfg := ctx.Config
	cfg.QuestionCount = 100
	cfg.NextQuestionDelay = 0

	q := NewQuestionManager(ctx)
	q.Bind()
	defer q.Close()

	var questions []*event.QuestionGeneratedPayload
	ctx.Bus.Subscribe(event.EventQuestionGenerated, func(ev event.Event) {
		questions = append(questions, ev.Payload.(*event.QuestionGeneratedPayload))
	})

	q.Start()
	for i := 0; i < 30; i++ {
		submitAnswer(ctx, true)
		ctx.Scheduler.Advance(time.Millisecond)
	}

	if len(questions) < 30 {
		t.Fatalf("Expected at least 30 questions, got %d", len(questions))
	}
	for _, p := range questions {
		if p.Divisor < cfg.MinDivisor || p.Divisor > cfg.MaxDivisor {
			t.Errorf("Divisor %d out of bounds [%d,%d]", p.Divisor, cfg.MinDivisor, cfg.MaxDivisor)
		}
		if p.Answer < cfg.MinQuotient || p.Answer > cfg.MaxQuotient {
			t.Errorf("Answer %d out of bounds [%d,%d]", p.Answer, cfg.MinQuotient, cfg.MaxQuotient)
		}
		if p.Dividend != p.Divisor*p.Answer {
			t.Errorf("Question %d / %d does not divide exactly to %d", p.Dividend, p.Divisor, p.Answer)
		}
	}
}

// TestPracticeCompletes verifies the run ends after the configured count
// with the score and run id stamped on the summary
func TestPracticeCompletes(t *testing.T) {
	ctx, _ := engine.NewTestContext()
	ctx.Config.QuestionCount = 3
	ctx.Config.NextQuestionDelay = 0

	score := NewScoreManager(ctx)
	score.Bind()
	defer score.Close()
	service.Register(ctx.Services, score)

	q := NewQuestionManager(ctx)
	q.Bind()
	defer q.Close()

	var summary *event.PracticeCompletePayload
	completions := 0
	ctx.Bus.Subscribe(event.EventPracticeComplete, func(ev event.Event) {
		completions++
		summary = ev.Payload.(*event.PracticeCompletePayload)
	})

	q.Start()
	for i := 0; i < 3; i++ {
		submitAnswer(ctx, true)
		ctx.Scheduler.Advance(time.Millisecond)
	}

	if completions != 1 {
		t.Fatalf("Expected exactly 1 completion, got %d", completions)
	}
	if summary.Answered != 3 {
		t.Errorf("Answered = %d, want 3", summary.Answered)
	}
	if summary.Score != 30 {
		t.Errorf("Score = %d, want 30", summary.Score)
	}
	if summary.RunID != q.RunID() || summary.RunID == "" {
		t.Errorf("RunID = %q, want %q", summary.RunID, q.RunID())
	}
}

// TestCloseCancelsPendingQuestion verifies teardown cancels the delayed
// next-question task
func TestCloseCancelsPendingQuestion(t *testing.T) {
	ctx, _ := engine.NewTestContext()
	ctx.Config.QuestionCount = 10
	ctx.Config.NextQuestionDelay = time.Second

	q := NewQuestionManager(ctx)
	q.Bind()

	generated := 0
	ctx.Bus.Subscribe(event.EventQuestionGenerated, func(event.Event) { generated++ })

	q.Start()
	submitAnswer(ctx, true) // Schedules the next question

	q.Close()
	ctx.Scheduler.Advance(time.Minute)

	if generated != 1 {
		t.Errorf("Expected only the first question after close, got %d", generated)
	}
	if ctx.Scheduler.Pending() != 0 {
		t.Errorf("Expected no pending tasks after close, got %d", ctx.Scheduler.Pending())
	}
}
