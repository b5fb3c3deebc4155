package game

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cookie-crunch/core"
	"github.com/lixenwraith/cookie-crunch/engine"
	"github.com/lixenwraith/cookie-crunch/event"
	"github.com/lixenwraith/cookie-crunch/parameter"
	"github.com/lixenwraith/cookie-crunch/pool"
)

// DistributionManager routes cookies from the pool onto monsters and
// decides when a question has been answered
//
// Distribution order is deterministic: ascending monster index. A drop on
// monster M with auto-distribution enabled feeds every other active
// monster once, excluding M (excludeInitiator rule - M already received
// the dropped cookie). A round r completes exactly once, when every
// active monster's count reaches r.
type DistributionManager struct {
	ctx    *engine.Context
	roster *Roster

	target    int // Quotient of the active question; 0 between questions
	askedAt   time.Time
	lastRound int
	loaned    []*Cookie

	subs []event.Subscription

	statRounds *atomic.Int64
}

// NewDistributionManager creates a manager over the given roster
func NewDistributionManager(ctx *engine.Context, roster *Roster) *DistributionManager {
	return &DistributionManager{
		ctx:        ctx,
		roster:     roster,
		statRounds: ctx.Status.Ints.Get("game.rounds"),
	}
}

// Bind subscribes the manager to questions and cookie drops
func (d *DistributionManager) Bind() {
	d.subs = append(d.subs,
		d.ctx.Bus.Subscribe(event.EventQuestionGenerated, d.onQuestion),
		d.ctx.Bus.Subscribe(event.EventCookieDropped, d.onDrop),
	)
}

// Close returns every loaned cookie and unsubscribes everything taken in
// Bind, one-for-one
func (d *DistributionManager) Close() {
	d.returnAllCookies()
	for _, sub := range d.subs {
		d.ctx.Bus.Unsubscribe(sub)
	}
	d.subs = nil
}

// Roster returns the monster table this manager deals onto
func (d *DistributionManager) Roster() *Roster { return d.roster }

// Target returns the quotient being dealt toward, 0 between questions
func (d *DistributionManager) Target() int { return d.target }

// Loaned returns the cookies currently on the table, for presentation
func (d *DistributionManager) Loaned() []*Cookie { return d.loaned }

func (d *DistributionManager) onQuestion(ev event.Event) {
	p := ev.Payload.(*event.QuestionGeneratedPayload)

	d.returnAllCookies()
	d.roster.Resize(p.Divisor)
	d.roster.ResetCounts()
	d.target = p.Answer
	d.lastRound = 0
	d.askedAt = d.ctx.Time.Now()
}

func (d *DistributionManager) onDrop(ev event.Event) {
	p := ev.Payload.(*event.CookieDroppedPayload)

	if d.target == 0 {
		log.Printf("game: cookie drop with no active question, skipped")
		return
	}
	initiator, ok := d.roster.Monster(p.MonsterID)
	if !ok {
		log.Printf("game: cookie drop on unknown monster %d, skipped", p.MonsterID)
		return
	}

	d.feed(initiator)
	if d.ctx.Config.AutoDistribute {
		// excludeInitiator: the initiating monster already got the
		// dropped cookie
		for _, m := range d.roster.Active() {
			if m.ID == initiator.ID {
				continue
			}
			d.feed(m)
		}
	}

	d.ctx.Bus.Publish(event.Event{
		Type:    event.EventSoundRequest,
		Payload: &event.SoundRequestPayload{Sound: core.SoundDrop},
	})

	d.checkRounds()
	if d.roster.MinCount() >= d.target {
		d.submit()
	}
}

// SubmitAnswer ends the question with whatever has been dealt so far
// Called by the input layer when the player decides the plates are done
func (d *DistributionManager) SubmitAnswer() {
	if d.target == 0 {
		return
	}
	d.submit()
}

// feed increments the monster's count and dispatches a pooled cookie for
// the presentation layer. An exhausted bounded pool degrades to counting
// without a visible cookie; the run stays interactive.
func (d *DistributionManager) feed(m *Monster) {
	m.Cookies++

	p, ok := pool.Lookup[*Cookie](d.ctx.Pools, parameter.CookiePoolName)
	if !ok {
		log.Printf("game: pool %s missing, cookie spawn skipped", parameter.CookiePoolName)
		return
	}
	cookie, ok := p.Get()
	if !ok {
		log.Printf("game: pool %s exhausted, cookie spawn skipped", parameter.CookiePoolName)
		return
	}
	cookie.SetSpawnPosition(m.ID, m.Cookies)
	d.loaned = append(d.loaned, cookie)
}

// checkRounds publishes each newly completed round exactly once
func (d *DistributionManager) checkRounds() {
	r := d.roster.MinCount()
	for round := d.lastRound + 1; round <= r; round++ {
		d.statRounds.Add(1)
		d.ctx.Bus.Publish(event.Event{
			Type:    event.EventDistributionRound,
			Payload: &event.DistributionRoundPayload{Round: round, PerMonster: round},
		})
	}
	if r > d.lastRound {
		d.lastRound = r
		d.ctx.Bus.Publish(event.Event{
			Type:    event.EventSoundRequest,
			Payload: &event.SoundRequestPayload{Sound: core.SoundRound},
		})
	}
}

func (d *DistributionManager) submit() {
	submitted := d.roster.MaxCount()
	correct := d.target
	isCorrect := submitted == correct && d.roster.MinCount() == correct

	// Disarm before publishing: answer handlers may generate the next
	// question synchronously
	d.target = 0
	taken := d.ctx.Time.Now().Sub(d.askedAt)
	d.returnAllCookies()
	d.roster.ResetCounts()

	d.ctx.Bus.Publish(event.Event{
		Type: event.EventAnswerSubmitted,
		Payload: &event.AnswerSubmittedPayload{
			IsCorrect: isCorrect,
			Submitted: submitted,
			Correct:   correct,
			TimeTaken: taken,
		},
	})

	sound := core.SoundCorrect
	if !isCorrect {
		sound = core.SoundIncorrect
	}
	d.ctx.Bus.Publish(event.Event{
		Type:    event.EventSoundRequest,
		Payload: &event.SoundRequestPayload{Sound: sound},
	})
}

func (d *DistributionManager) returnAllCookies() {
	if len(d.loaned) == 0 {
		return
	}
	for _, c := range d.loaned {
		if err := pool.Return(d.ctx.Pools, parameter.CookiePoolName, c); err != nil {
			log.Printf("game: cookie return failed: %v", err)
		}
	}
	d.loaned = d.loaned[:0]
}
