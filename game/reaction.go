package game

import "time"

type reactionState int

const (
	reactionStartup reactionState = iota
	reactionShowCode
	reactionUserMove
	reactionReset
)

func (s reactionState) String() string {
	switch s {
	case reactionStartup:
		return "STARTUP"
	case reactionShowCode:
		return "SHOWCODE"
	case reactionUserMove:
		return "USER_MOVE"
	case reactionReset:
		return "RESET"
	default:
		return "INVALID STATE"
	}
}

// Reaction is the speed mode: the console flashes one random color at a
// time and the player has to hit its button before the reaction window
// closes. The window shrinks with every success and the round count is
// unbounded; a session only ends on a miss or a timeout.
type Reaction struct {
	source   Source
	playback *Playback
	poller   *Poller
	clock    Clock
	log      Logger

	state    reactionState
	shown    Color
	window   time.Duration
	rounds   int
	deadline time.Time
}

// Compile time check for protocol compatibility
var _ Game = (*Reaction)(nil)

func NewReaction(config *Config) *Reaction {
	r := &Reaction{
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

func (r *Reaction) Name() string {
	return "reaction"
}

func (r *Reaction) Tick(now time.Time) bool {
	switch r.state {
	case reactionStartup:
		r.playback.Clear()
		r.playback.Rest(settleDelay)
		r.source.Reseed()
		r.window = reactionWindowPreset
		r.rounds = 0
		r.state = reactionShowCode

	case reactionShowCode:
		// A fresh independent draw each round, not a growing sequence
		r.shown = r.source.NextColor()
		r.playback.Play(r.shown, reactionFlash)
		r.poller.Drain()
		r.deadline = r.clock.Now().Add(r.window)
		r.state = reactionUserMove

	case reactionUserMove:
		if !now.Before(r.deadline) {
			r.log.Infof("Too slow after %v rounds, window was down to %v", r.rounds, r.window)
			r.playback.PlayTimeout(r.shown)
			r.state = reactionReset
			return false
		}

		pressed, ok := r.poller.Poll()
		if !ok {
			return false
		}

		if pressed != r.shown {
			r.log.Infof("Pressed %v instead of %v after %v rounds", pressed, r.shown, r.rounds)
			r.playback.PlayFailure(r.shown)
			r.state = reactionReset
			return false
		}

		r.rounds++
		r.window -= reactionWindowStep
		r.state = reactionShowCode

	case reactionReset:
		r.state = reactionStartup
		return true
	}

	return false
}
