package event

import (
	"time"

	"github.com/lixenwraith/cookie-crunch/core"
)

// GameMode selects how a run ends
type GameMode int

const (
	// ModePractice ends after a fixed question count
	ModePractice GameMode = iota
	// ModeTimed ends when the round timer expires
	ModeTimed
)

// GameStartPayload selects the mode for the requested run
type GameStartPayload struct {
	Mode GameMode
}

// QuestionGeneratedPayload carries one division question
// Answer is the quotient: Dividend / Divisor, always exact
type QuestionGeneratedPayload struct {
	Dividend int
	Divisor  int
	Answer   int
}

// CookieDroppedPayload identifies the monster a cookie landed on
type CookieDroppedPayload struct {
	MonsterID int
}

// DistributionRoundPayload marks completion of round number Round
// PerMonster is the equal cookie count every active monster now holds
type DistributionRoundPayload struct {
	Round      int
	PerMonster int
}

// AnswerSubmittedPayload carries the outcome of a completed question
type AnswerSubmittedPayload struct {
	IsCorrect bool
	Submitted int
	Correct   int
	TimeTaken time.Duration
}

// ScoreChangedPayload carries the score after applying Delta
type ScoreChangedPayload struct {
	Score int
	Delta int
}

// LivesChangedPayload carries the remaining life count
type LivesChangedPayload struct {
	Remaining int
}

// TimerTickPayload carries the remaining round time, truncated to seconds
type TimerTickPayload struct {
	Remaining time.Duration
}

// PracticeCompletePayload summarizes a finished practice run
type PracticeCompletePayload struct {
	RunID    string
	Score    int
	Answered int
}

// SoundRequestPayload requests one audio cue
type SoundRequestPayload struct {
	Sound core.SoundType
}
