package game

import "time"

type repeatState int

const (
	repeatStartup repeatState = iota
	repeatMakeCode
	repeatShowCode
	repeatUserMove
	repeatCycleComplete
	repeatAllDone
	repeatReset
)

func (s repeatState) String() string {
	switch s {
	case repeatStartup:
		return "STARTUP"
	case repeatMakeCode:
		return "MAKECODE"
	case repeatShowCode:
		return "SHOWCODE"
	case repeatUserMove:
		return "USER_MOVE"
	case repeatCycleComplete:
		return "CYCLE_COMPLETE"
	case repeatAllDone:
		return "ALL_DONE"
	case repeatReset:
		return "RESET"
	default:
		return "INVALID STATE"
	}
}

// Repeat is the classic solo mode: the console shows a growing prefix of a
// secret sequence and the player echoes it back. The display tempo speeds
// up at fixed milestones, and echoing the entire secret wins the session.
type Repeat struct {
	source   Source
	playback *Playback
	poller   *Poller
	clock    Clock
	log      Logger

	state    repeatState
	code     Sequence
	target   int
	cursor   int
	tempo    time.Duration
	deadline time.Time
}

// Compile time check for protocol compatibility
var _ Game = (*Repeat)(nil)

func NewRepeat(config *Config) *Repeat {
	r := &Repeat{
		source:   config.Source,
		playback: config.Playback,
		poller:   config.Poller,
		clock:    config.Clock,
		log:      config.Logger,
	}

	if r.log == nil {
		r.log = noopLogger{}
	}

	return r
}

func (r *Repeat) Name() string {
	return "repeat"
}

func (r *Repeat) Tick(now time.Time) bool {
	switch r.state {
	case repeatStartup:
		r.playback.Clear()
		r.target = 1
		r.state = repeatMakeCode

	case repeatMakeCode:
		// One full-length secret per session, never grown incrementally
		r.source.Reseed()
		r.code = r.source.Next(MaxCodeLength)
		r.tempo = BaseDuration
		r.log.Debugf("Generated a new secret sequence")
		r.state = repeatShowCode

	case repeatShowCode:
		r.playback.PlaySequence(r.code, r.target, r.tempo)
		r.cursor = 1
		r.poller.Drain()
		r.deadline = r.clock.Now().Add(playerTimeout)
		r.state = repeatUserMove

	case repeatUserMove:
		expected := r.code[r.cursor-1]

		if !now.Before(r.deadline) {
			r.log.Infof("Timed out at length %v after %v correct presses", r.target, r.cursor-1)
			r.playback.PlayTimeout(expected)
			r.state = repeatReset
			return false
		}

		pressed, ok := r.poller.Poll()
		if !ok {
			return false
		}

		if pressed != expected {
			r.log.Infof("Pressed %v instead of %v at length %v", pressed, expected, r.target)
			r.playback.PlayFailure(expected)
			r.state = repeatReset
			return false
		}

		r.playback.Play(pressed, confirmDuration)

		if r.cursor == r.target {
			r.playback.Rest(roundRest)
			r.state = repeatCycleComplete
			return false
		}

		r.cursor++
		r.deadline = r.clock.Now().Add(playerTimeout)

	case repeatCycleComplete:
		r.target++

		switch r.target {
		case 5, 9, 13:
			r.tempo -= tempoStep
			if r.tempo < tempoFloor {
				r.tempo = tempoFloor
			}
			r.log.Debugf("Sped up to %v per note", r.tempo)
		}

		if r.target > MaxCodeLength {
			r.state = repeatAllDone
		} else {
			r.state = repeatShowCode
		}

	case repeatAllDone:
		r.log.Infof("Full sequence of %v reproduced, well done", MaxCodeLength)
		r.playback.PlayTune(victoryTune)
		r.state = repeatReset

	case repeatReset:
		r.state = repeatStartup
		return true
	}

	return false
}
