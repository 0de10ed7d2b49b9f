package game

import "time"

type buildState int

const (
	buildInit buildState = iota
	buildStartInput
	buildUserMove
	buildUserAdd
	buildAllDone
	buildReset
)

func (s buildState) String() string {
	switch s {
	case buildInit:
		return "INIT"
	case buildStartInput:
		return "START_INPUT"
	case buildUserMove:
		return "USER_MOVE"
	case buildUserAdd:
		return "USER_ADD"
	case buildAllDone:
		return "ALL_DONE"
	case buildReset:
		return "RESET"
	default:
		return "INVALID STATE"
	}
}

// Build is the multiplayer add-one mode: the console seeds the sequence
// with a single random color, and from then on the players take turns
// replaying everything recorded so far and appending one color of their
// choosing. USER_ADD is the only state where a press writes new sequence
// content instead of validating it.
type Build struct {
	source   Source
	playback *Playback
	poller   *Poller
	clock    Clock
	log      Logger

	state    buildState
	seq      Sequence
	target   int
	cursor   int
	deadline time.Time
}

// Compile time check for protocol compatibility
var _ Game = (*Build)(nil)

func NewBuild(config *Config) *Build {
	b := &Build{
		source:   config.Source,
		playback: config.Playback,
		poller:   config.Poller,
		clock:    config.Clock,
		log:      config.Logger,
	}

	if b.log == nil {
		b.log = noopLogger{}
	}

	return b
}

func (b *Build) Name() string {
	return "build"
}

func (b *Build) Tick(now time.Time) bool {
	switch b.state {
	case buildInit:
		b.playback.Clear()
		b.source.Reseed()
		b.target = 1

		first := b.source.NextColor()
		b.seq = make(Sequence, 1, MaxCodeLength)
		b.seq[0] = first

		b.playback.Play(first, BaseDuration)
		b.state = buildStartInput

	case buildStartInput:
		b.cursor = 1
		b.poller.Drain()
		b.deadline = b.clock.Now().Add(playerTimeout)
		b.state = buildUserMove

	case buildUserMove:
		expected := b.seq[b.cursor-1]

		if !now.Before(b.deadline) {
			b.log.Infof("Timed out replaying a sequence of %v", b.target)
			b.playback.PlayTimeout(expected)
			b.state = buildReset
			return false
		}

		pressed, ok := b.poller.Poll()
		if !ok {
			return false
		}

		if pressed != expected {
			b.log.Infof("Pressed %v instead of %v at position %v", pressed, expected, b.cursor)
			b.playback.PlayFailure(expected)
			b.state = buildReset
			return false
		}

		b.playback.Play(pressed, confirmDuration)

		if b.cursor == b.target {
			if b.target == MaxCodeLength {
				b.state = buildAllDone
				return false
			}

			b.deadline = b.clock.Now().Add(playerTimeout)
			b.state = buildUserAdd
			return false
		}

		b.cursor++
		b.deadline = b.clock.Now().Add(playerTimeout)

	case buildUserAdd:
		if !now.Before(b.deadline) {
			b.log.Infof("Timed out waiting for a new color at length %v", b.target)
			b.playback.PlayTimeout(b.seq[b.target-1])
			b.state = buildReset
			return false
		}

		// Any color is welcome here, the press extends the sequence
		pressed, ok := b.poller.Poll()
		if !ok {
			return false
		}

		b.playback.Play(pressed, confirmDuration)

		b.seq = append(b.seq, pressed)
		b.target++
		b.log.Debugf("Sequence grew to %v", b.target)
		b.state = buildStartInput

	case buildAllDone:
		b.log.Infof("Built and replayed a full sequence of %v", MaxCodeLength)
		b.playback.PlayTune(victoryTune)
		b.state = buildReset

	case buildReset:
		b.state = buildInit
		return true
	}

	return false
}
