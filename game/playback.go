package game

import (
	"time"

	"github.com/blinkenland/simond/machine"
)

const (
	// BaseDuration is the reference length of one played note.
	BaseDuration = 500 * time.Millisecond

	// confirmDuration is the brief cue acknowledging a correct press.
	confirmDuration = 250 * time.Millisecond

	// Running out of time and guessing wrong both end the session; the
	// player tells them apart by cue length.
	timeoutFactor = 2
	failureFactor = 4
)

// Playback renders colors as light and tone cues on the machine. Every
// call occupies the caller for the full cue duration; the player has to
// watch a cue complete before a reaction is accepted, so playback is
// deliberately synchronous.
type Playback struct {
	machine machine.Machine
	clock   Clock
}

func NewPlayback(m machine.Machine, clock Clock) *Playback {
	return &Playback{
		machine: m,
		clock:   clock,
	}
}

// Play lights the color's channel and sounds its tone for the duration,
// then darkens and silences it again.
func (p *Playback) Play(c Color, d time.Duration) {
	p.machine.SetLight(c.Channel(), true)
	p.machine.Tone(c.Frequency())

	p.clock.Sleep(d)

	p.machine.Silence()
	p.machine.SetLight(c.Channel(), false)
}

// PlayTimeout plays the extended cue signaling that the player ran out of time.
func (p *Playback) PlayTimeout(c Color) {
	p.Play(c, timeoutFactor*BaseDuration)
}

// PlayFailure plays the long cue signaling a wrong answer.
func (p *Playback) PlayFailure(c Color) {
	p.Play(c, failureFactor*BaseDuration)
}

// PlaySequence plays the first count colors of the sequence at the given
// tempo, with a half-tempo gap between notes.
func (p *Playback) PlaySequence(seq Sequence, count int, tempo time.Duration) {
	if count > len(seq) {
		count = len(seq)
	}

	for i := 0; i < count; i++ {
		if i > 0 {
			p.Rest(tempo / 2)
		}

		p.Play(seq[i], tempo)
	}
}

// Rest keeps the console dark and silent for the duration.
func (p *Playback) Rest(d time.Duration) {
	p.clock.Sleep(d)
}

// Light switches the color's channel light without sounding a tone.
func (p *Playback) Light(c Color, on bool) {
	p.machine.SetLight(c.Channel(), on)
}

// Clear darkens all channels and stops any tone.
func (p *Playback) Clear() {
	for c := Color(0); c < NumColors; c++ {
		p.machine.SetLight(c.Channel(), false)
	}

	p.machine.Silence()
}
