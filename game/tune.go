package game

import "time"

// Note is one entry of a tune: a frequency held for a number of beats.
// A frequency of 0 is a rest.
type Note struct {
	Frequency uint
	Beats     int
}

// Tune is a finite melody with an explicit length and a fixed beat
// duration.
type Tune struct {
	Notes []Note
	Beat  time.Duration
}

// noteGap separates consecutive tune notes so repeated frequencies stay
// distinguishable.
const noteGap = 20 * time.Millisecond

// StartupTune greets the player when the console boots, one run up the
// four channel tones.
var StartupTune = Tune{
	Beat: 150 * time.Millisecond,
	Notes: []Note{
		{Frequency: 196, Beats: 1},
		{Frequency: 262, Beats: 1},
		{Frequency: 330, Beats: 1},
		{Frequency: 392, Beats: 2},
	},
}

// victoryTune celebrates a fully completed session.
var victoryTune = Tune{
	Beat: 150 * time.Millisecond,
	Notes: []Note{
		{Frequency: 523, Beats: 1},
		{Frequency: 659, Beats: 1},
		{Frequency: 784, Beats: 1},
		{Frequency: 0, Beats: 1},
		{Frequency: 784, Beats: 1},
		{Frequency: 1047, Beats: 3},
	},
}

// PlayTune plays a tune start to finish, blocking like all playback.
func (p *Playback) PlayTune(t Tune) {
	for i, n := range t.Notes {
		if i > 0 {
			p.Rest(noteGap)
		}

		d := time.Duration(n.Beats) * t.Beat

		if n.Frequency == 0 {
			p.Rest(d)
			continue
		}

		p.machine.Tone(n.Frequency)
		p.clock.Sleep(d)
		p.machine.Silence()
	}
}
