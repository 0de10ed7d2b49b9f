package game

import "time"

// Game is one mode's state machine. Tick advances it by at most one state
// transition and reports true once the session has finished and control
// should return to the selector. A finished machine starts a fresh session
// on its next tick.
type Game interface {
	Name() string
	Tick(now time.Time) bool
}

// Config carries the collaborators shared by all game machines.
type Config struct {
	Source   Source
	Playback *Playback
	Poller   *Poller
	Clock    Clock
	Logger   Logger
}

// Gameplay tuning. BaseDuration is the reference note length all cue
// durations derive from.
const (
	// playerTimeout is the input deadline of the two sequence modes
	playerTimeout = 5 * time.Second

	// roundRest is the breather after a completed round before the
	// next one is shown
	roundRest = 500 * time.Millisecond

	// tempo shortens by tempoStep when the target length reaches 5, 9
	// and 13, and never drops below tempoFloor
	tempoStep  = 100 * time.Millisecond
	tempoFloor = 200 * time.Millisecond

	// the reaction window starts at its preset and shrinks by one step
	// per successful reaction, it never grows back within a session
	reactionWindowPreset = 1000 * time.Millisecond
	reactionWindowStep   = 20 * time.Millisecond

	// reactionFlash is how long the reaction mode shows each color
	reactionFlash = BaseDuration / 2

	// settleDelay quiets the console before a reaction session starts
	settleDelay = time.Second

	// blinkInterval paces the mode indicator in the selector
	blinkInterval = 500 * time.Millisecond
)
