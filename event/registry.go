package event

import "reflect"

var (
	typeToName    = make(map[Type]string)
	nameToType    = make(map[string]Type)
	typeToPayload = make(map[Type]reflect.Type)
)

// RegisterType maps a string name to an event Type and its payload struct
// payloadInstance is a pointer to the payload struct, or nil for payload-free events
func RegisterType(name string, t Type, payloadInstance any) {
	typeToName[t] = name
	nameToType[name] = t
	if payloadInstance != nil {
		rt := reflect.TypeOf(payloadInstance)
		if rt.Kind() == reflect.Ptr {
			rt = rt.Elem()
		}
		typeToPayload[t] = rt
	}
}

// Name returns the registered string name for t, or "Unknown"
func Name(t Type) string {
	if n, ok := typeToName[t]; ok {
		return n
	}
	return "Unknown"
}

// TypeByName returns the Type registered under name
func TypeByName(name string) (Type, bool) {
	t, ok := nameToType[name]
	return t, ok
}

// PayloadType returns the registered payload struct type for t
// Returns nil for payload-free events
func PayloadType(t Type) reflect.Type {
	return typeToPayload[t]
}

// RegisteredTypes returns every registered event Type
func RegisteredTypes() []Type {
	types := make([]Type, 0, len(typeToName))
	for t := range typeToName {
		types = append(types, t)
	}
	return types
}

func init() {
	RegisterType("EventGameStartRequest", EventGameStartRequest, &GameStartPayload{})
	RegisterType("EventReturnToMenu", EventReturnToMenu, nil)
	RegisterType("EventQuestionGenerated", EventQuestionGenerated, &QuestionGeneratedPayload{})
	RegisterType("EventCookieDropped", EventCookieDropped, &CookieDroppedPayload{})
	RegisterType("EventDistributionRound", EventDistributionRound, &DistributionRoundPayload{})
	RegisterType("EventAnswerSubmitted", EventAnswerSubmitted, &AnswerSubmittedPayload{})
	RegisterType("EventScoreChanged", EventScoreChanged, &ScoreChangedPayload{})
	RegisterType("EventLivesChanged", EventLivesChanged, &LivesChangedPayload{})
	RegisterType("EventLivesDepleted", EventLivesDepleted, nil)
	RegisterType("EventTimerTick", EventTimerTick, &TimerTickPayload{})
	RegisterType("EventTimerExpired", EventTimerExpired, nil)
	RegisterType("EventPracticeComplete", EventPracticeComplete, &PracticeCompletePayload{})
	RegisterType("EventSoundRequest", EventSoundRequest, &SoundRequestPayload{})
}
