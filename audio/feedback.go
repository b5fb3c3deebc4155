package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/cookie-crunch/core"
	"github.com/lixenwraith/cookie-crunch/engine"
	"github.com/lixenwraith/cookie-crunch/event"
)

const (
	sampleRate              = beep.SampleRate(48000)
	speakerBufferDurationMs = 100
)

// Feedback plays short synthesized cues in response to sound requests.
// If the speaker cannot be opened it stays registered but silent, the
// game runs the same either way.
type Feedback struct {
	ctx *engine.Context

	mu          sync.Mutex
	mixer       *beep.Mixer
	sub         event.Subscription
	initialized bool
	silent      bool
}

// NewFeedback creates the audio feedback service
func NewFeedback(ctx *engine.Context) *Feedback {
	return &Feedback{
		ctx:   ctx,
		mixer: &beep.Mixer{},
	}
}

func (f *Feedback) Name() string { return "audio" }

// Start opens the speaker and subscribes to sound requests
func (f *Feedback) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs)); err != nil {
		log.Printf("audio: speaker unavailable, running silent: %v", err)
		f.silent = true
	} else {
		speaker.Play(f.mixer)
	}

	f.sub = f.ctx.Bus.Subscribe(event.EventSoundRequest, f.onSound)
	f.initialized = true
	return nil
}

// Stop drops the subscription and clears pending streamers
func (f *Feedback) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return nil
	}

	f.ctx.Bus.Unsubscribe(f.sub)
	if !f.silent {
		speaker.Lock()
		f.mixer.Clear()
		speaker.Unlock()
	}
	f.initialized = false
	return nil
}

// Silent reports whether the speaker failed to open
func (f *Feedback) Silent() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.silent
}

func (f *Feedback) onSound(ev event.Event) {
	p, ok := ev.Payload.(*event.SoundRequestPayload)
	if !ok {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized || f.silent {
		return
	}

	streamer := cueStreamer(p.Sound)
	if streamer == nil {
		return
	}

	speaker.Lock()
	f.mixer.Add(streamer)
	speaker.Unlock()
}

// cueStreamer builds the finite streamer for one cue
func cueStreamer(st core.SoundType) beep.Streamer {
	switch st {
	case core.SoundDrop:
		return beep.Take(sampleRate.N(time.Millisecond*dropToneDurationMs),
			NewToneGenerator(sampleRate, dropToneFrequencyHz, dropToneAmplitude))
	case core.SoundRound:
		return beep.Take(sampleRate.N(time.Millisecond*roundToneDurationMs),
			NewToneGenerator(sampleRate, roundToneFrequencyHz, roundToneAmplitude))
	case core.SoundCorrect:
		return beep.Take(sampleRate.N(time.Millisecond*correctSweepDurationMs),
			NewSweepGenerator(sampleRate, correctSweepStartHz, correctSweepEndHz,
				correctSweepAmplitude, time.Millisecond*correctSweepDurationMs))
	case core.SoundIncorrect:
		return beep.Take(sampleRate.N(time.Millisecond*incorrectBuzzDurationMs),
			NewBuzzGenerator(sampleRate, incorrectBuzzFrequencyHz, incorrectBuzzAmplitude))
	case core.SoundGameOver:
		return beep.Take(sampleRate.N(time.Millisecond*gameOverSweepDurationMs),
			NewSweepGenerator(sampleRate, gameOverSweepStartHz, gameOverSweepEndHz,
				gameOverSweepAmplitude, time.Millisecond*gameOverSweepDurationMs))
	case core.SoundFanfare:
		total := time.Millisecond * fanfareNoteDurationMs * time.Duration(len(fanfareNotesHz))
		return beep.Take(sampleRate.N(total),
			NewArpeggioGenerator(sampleRate, fanfareNotesHz, fanfareAmplitude,
				time.Millisecond*fanfareNoteDurationMs))
	}
	return nil
}
