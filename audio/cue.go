// Package audio plays the coach-board sound cues through the speaker:
// a two-note whistle when a rotation commits and a single alert tone when
// the substitution timer passes the rotation interval.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/beggan78/dif-coach/events"
)

const (
	sampleRate = beep.SampleRate(44100)

	whistleHighHz = 1760
	whistleLowHz  = 1320
	alertHz       = 880

	whistleNoteLen = 90 * time.Millisecond
	alertNoteLen   = 180 * time.Millisecond
)

// Cue owns speaker access. Initialization failure is non-fatal; the board
// runs silently.
type Cue struct {
	enabled bool
}

// NewCue initializes the speaker
func NewCue() (*Cue, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Cue{}, err
	}
	return &Cue{enabled: true}, nil
}

// Enabled reports whether the speaker initialized
func (c *Cue) Enabled() bool {
	return c.enabled
}

// Whistle plays the substitution double note
func (c *Cue) Whistle() {
	if !c.enabled {
		return
	}
	high, _ := generators.SineTone(sampleRate, whistleHighHz)
	low, _ := generators.SineTone(sampleRate, whistleLowHz)
	speaker.Play(beep.Seq(
		beep.Take(sampleRate.N(whistleNoteLen), high),
		beep.Take(sampleRate.N(whistleNoteLen), low),
	))
}

// Alert plays the sub-timer reminder tone
func (c *Cue) Alert() {
	if !c.enabled {
		return
	}
	tone, _ := generators.SineTone(sampleRate, alertHz)
	speaker.Play(beep.Take(sampleRate.N(alertNoteLen), tone))
}

// HandleEvent routes board events to cues
func (c *Cue) HandleEvent(_ struct{}, event events.GameEvent) {
	switch event.Type {
	case events.EventRotationCommitted:
		c.Whistle()
	case events.EventTimerAlert:
		c.Alert()
	}
}

// EventTypes declares the events the cue reacts to
func (c *Cue) EventTypes() []events.EventType {
	return []events.EventType{events.EventRotationCommitted, events.EventTimerAlert}
}
