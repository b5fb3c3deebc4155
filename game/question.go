package game

import (
	"math/rand"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/cookie-crunch/engine"
	"github.com/lixenwraith/cookie-crunch/event"
	"github.com/lixenwraith/cookie-crunch/service"
)

// QuestionManager generates division questions and ends the practice run
// once the configured question count is exceeded
type QuestionManager struct {
	ctx *engine.Context
	rng *rand.Rand

	runID    string
	answered int
	current  *event.QuestionGeneratedPayload

	nextTask *engine.Task
	subs     []event.Subscription

	statAnswered *atomic.Int64
}

// NewQuestionManager creates a manager for one run, stamped with a fresh id
func NewQuestionManager(ctx *engine.Context) *QuestionManager {
	return &QuestionManager{
		ctx:          ctx,
		rng:          rand.New(rand.NewSource(ctx.Time.Now().UnixNano())),
		runID:        uuid.NewString(),
		statAnswered: ctx.Status.Ints.Get("game.answered"),
	}
}

// Bind subscribes the manager to the events it consumes
func (q *QuestionManager) Bind() {
	q.subs = append(q.subs,
		q.ctx.Bus.Subscribe(event.EventAnswerSubmitted, q.onAnswer))
}

// Start generates the first question of the run
func (q *QuestionManager) Start() {
	q.generate()
}

// Close cancels the pending question task and unsubscribes everything
// taken in Bind, one-for-one
func (q *QuestionManager) Close() {
	if q.nextTask != nil {
		q.nextTask.Cancel()
		q.nextTask = nil
	}
	for _, s := range q.subs {
		q.ctx.Bus.Unsubscribe(s)
	}
	q.subs = nil
}

// RunID returns the run identifier stamped on results
func (q *QuestionManager) RunID() string { return q.runID }

// Answered returns how many questions have been answered this run
func (q *QuestionManager) Answered() int { return q.answered }

// Current returns the active question, nil between questions
func (q *QuestionManager) Current() *event.QuestionGeneratedPayload { return q.current }

func (q *QuestionManager) onAnswer(event.Event) {
	q.answered++
	q.statAnswered.Add(1)
	q.current = nil

	if q.answered >= q.ctx.Config.QuestionCount {
		q.completeRun()
		return
	}

	q.nextTask = q.ctx.Scheduler.After(q.ctx.Config.NextQuestionDelay, q.generate)
}

func (q *QuestionManager) completeRun() {
	score := 0
	if sm, ok := service.Get[*ScoreManager](q.ctx.Services); ok {
		score = sm.Score()
	}
	q.ctx.Bus.Publish(event.Event{
		Type: event.EventPracticeComplete,
		Payload: &event.PracticeCompletePayload{
			RunID:    q.runID,
			Score:    score,
			Answered: q.answered,
		},
	})
}

// generate builds dividend = divisor * quotient inside the configured
// bounds; the answer is always exact
func (q *QuestionManager) generate() {
	q.nextTask = nil
	cfg := q.ctx.Config

	divisor := cfg.MinDivisor + q.rng.Intn(cfg.MaxDivisor-cfg.MinDivisor+1)
	answer := cfg.MinQuotient + q.rng.Intn(cfg.MaxQuotient-cfg.MinQuotient+1)

	q.current = &event.QuestionGeneratedPayload{
		Dividend: divisor * answer,
		Divisor:  divisor,
		Answer:   answer,
	}
	q.ctx.Bus.Publish(event.Event{Type: event.EventQuestionGenerated, Payload: q.current})
}
