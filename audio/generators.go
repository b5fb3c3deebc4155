package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	attackDurationS = 0.01

	dropToneFrequencyHz = 880.0
	dropToneDurationMs  = 70
	dropToneAmplitude   = 0.2

	roundToneFrequencyHz = 660.0
	roundToneDurationMs  = 120
	roundToneAmplitude   = 0.22

	correctSweepStartHz    = 523.0
	correctSweepEndHz      = 784.0
	correctSweepDurationMs = 250
	correctSweepAmplitude  = 0.25

	incorrectBuzzFrequencyHz = 110.0
	incorrectBuzzDurationMs  = 250
	incorrectBuzzAmplitude   = 0.2

	gameOverSweepStartHz    = 440.0
	gameOverSweepEndHz      = 110.0
	gameOverSweepDurationMs = 700
	gameOverSweepAmplitude  = 0.25

	fanfareNoteDurationMs = 140
	fanfareAmplitude      = 0.25
)

// fanfareNotesHz is an ascending major arpeggio with an octave cap
var fanfareNotesHz = []float64{523.25, 659.25, 783.99, 1046.5}

// ToneGenerator produces a fixed-frequency sine with a decay envelope
type ToneGenerator struct {
	sr        beep.SampleRate
	freq      float64
	amplitude float64
	pos       int
}

// NewToneGenerator creates a tone generator at the given frequency
func NewToneGenerator(sr beep.SampleRate, freq, amplitude float64) *ToneGenerator {
	return &ToneGenerator{
		sr:        sr,
		freq:      freq,
		amplitude: amplitude,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack so the onset doesn't click
		envelope := math.Min(t/attackDurationS, 1.0) * math.Exp(-t*6)
		sample := g.amplitude * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SweepGenerator glides linearly between two frequencies
type SweepGenerator struct {
	sr        beep.SampleRate
	startFreq float64
	endFreq   float64
	amplitude float64
	samples   int
	phase     float64
	pos       int
}

// NewSweepGenerator creates a frequency sweep over the given duration
func NewSweepGenerator(sr beep.SampleRate, startFreq, endFreq, amplitude float64, dur time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:        sr,
		startFreq: startFreq,
		endFreq:   endFreq,
		amplitude: amplitude,
		samples:   sr.N(dur),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1.0)
		freq := g.startFreq + (g.endFreq-g.startFreq)*progress

		// Phase accumulation keeps the glide continuous
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		t := float64(g.pos) / float64(g.sr)
		envelope := math.Min(t/attackDurationS, 1.0) * (1.0 - progress*0.6)
		sample := g.amplitude * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// BuzzGenerator produces a harsh low square-ish buzz
type BuzzGenerator struct {
	sr        beep.SampleRate
	freq      float64
	amplitude float64
	pos       int
}

// NewBuzzGenerator creates a buzz generator at the given base frequency
func NewBuzzGenerator(sr beep.SampleRate, freq, amplitude float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:        sr,
		freq:      freq,
		amplitude: amplitude,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Stacked odd harmonics for the harsh timbre
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/attackDurationS, 1.0)
		sample *= envelope * g.amplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// ArpeggioGenerator steps through a note sequence, one tone per slot
type ArpeggioGenerator struct {
	sr          beep.SampleRate
	notes       []float64
	amplitude   float64
	noteSamples int
	pos         int
}

// NewArpeggioGenerator creates an arpeggio over the given notes
func NewArpeggioGenerator(sr beep.SampleRate, notes []float64, amplitude float64, noteDur time.Duration) *ArpeggioGenerator {
	return &ArpeggioGenerator{
		sr:          sr,
		notes:       notes,
		amplitude:   amplitude,
		noteSamples: sr.N(noteDur),
	}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := g.pos / g.noteSamples
		if note >= len(g.notes) {
			note = len(g.notes) - 1
		}
		freq := g.notes[note]

		notePos := g.pos % g.noteSamples
		t := float64(notePos) / float64(g.sr)

		envelope := math.Min(t/attackDurationS, 1.0) * math.Exp(-t*10)
		sample := g.amplitude * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}
