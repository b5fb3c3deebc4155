package event

// Type identifies a closed, named event kind dispatched through the bus
type Type int

const (
	// EventGameStartRequest asks for a run to begin
	// Trigger: Menu input | Consumer: MainMenu state | Payload: *GameStartPayload
	EventGameStartRequest Type = iota + 1

	// EventReturnToMenu asks to leave a results screen
	// Trigger: Results input | Consumer: results states | Payload: nil
	EventReturnToMenu

	// EventQuestionGenerated announces a fresh division question
	// Trigger: QuestionManager | Consumer: DistributionManager, UI | Payload: *QuestionGeneratedPayload
	EventQuestionGenerated

	// EventCookieDropped signals a cookie landed on a monster
	// Trigger: UI input | Consumer: DistributionManager | Payload: *CookieDroppedPayload
	EventCookieDropped

	// EventDistributionRound marks every active monster having received
	// the same number of cookies
	// Trigger: DistributionManager | Consumer: UI, audio | Payload: *DistributionRoundPayload
	EventDistributionRound

	// EventAnswerSubmitted carries the outcome of a completed question
	// Trigger: DistributionManager | Consumer: Score, Lives, Question managers, UI, audio | Payload: *AnswerSubmittedPayload
	EventAnswerSubmitted

	// EventScoreChanged announces the new score after an answer
	// Trigger: ScoreManager | Consumer: UI | Payload: *ScoreChangedPayload
	EventScoreChanged

	// EventLivesChanged announces the remaining lives
	// Trigger: LivesManager | Consumer: UI | Payload: *LivesChangedPayload
	EventLivesChanged

	// EventLivesDepleted fires exactly once when lives reach zero
	// Trigger: LivesManager | Consumer: Gameplay state | Payload: nil
	EventLivesDepleted

	// EventTimerTick announces the remaining round time each whole second
	// Trigger: TimerManager | Consumer: UI | Payload: *TimerTickPayload
	EventTimerTick

	// EventTimerExpired fires exactly once when the round timer reaches zero
	// Trigger: TimerManager | Consumer: Gameplay state | Payload: nil
	EventTimerExpired

	// EventPracticeComplete fires when the configured question count is exceeded
	// Trigger: QuestionManager | Consumer: Gameplay state | Payload: *PracticeCompletePayload
	EventPracticeComplete

	// EventSoundRequest requests audio feedback
	// Trigger: Managers, states | Consumer: audio.Feedback | Payload: *SoundRequestPayload
	EventSoundRequest
)

// Event is a single published occurrence. Payloads are read-only for
// handlers; later handlers see the same value earlier handlers saw.
type Event struct {
	Type    Type
	Payload any
}
