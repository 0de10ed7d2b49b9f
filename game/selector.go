package game

import "time"

// Selector is the top-level state machine. While no game runs it blinks
// the light of the highlighted mode; pressing that mode's button starts
// the game, pressing another mode's button only moves the highlight.
// Once a game is running every tick goes to it until it reports done.
type Selector struct {
	playback *Playback
	poller   *Poller
	log      Logger

	games     []Game
	active    Game
	selected  int
	lit       bool
	nextBlink time.Time
}

func NewSelector(config *Config, games ...Game) *Selector {
	s := &Selector{
		playback: config.Playback,
		poller:   config.Poller,
		log:      config.Logger,
		games:    games,
	}

	if s.log == nil {
		s.log = noopLogger{}
	}

	return s
}

// Tick advances the selector or the active game by one state transition.
func (s *Selector) Tick(now time.Time) {
	if s.active != nil {
		if s.active.Tick(now) {
			s.log.Infof("Game %v finished", s.active.Name())
			s.active = nil
			s.playback.Clear()
			s.poller.Drain()
			s.lit = false
			s.nextBlink = now
		}

		return
	}

	if pressed, ok := s.poller.Poll(); ok {
		index := int(pressed)

		switch {
		case index == s.selected:
			s.log.Infof("Starting game %v", s.games[index].Name())
			s.playback.Clear()
			s.active = s.games[index]
			return

		case index < len(s.games):
			s.playback.Light(Color(s.selected), false)
			s.selected = index
			s.lit = true
			s.playback.Light(Color(index), true)
			s.nextBlink = now.Add(blinkInterval)
			return

		default:
			// no mode behind this button
		}
	}

	if !now.Before(s.nextBlink) {
		s.lit = !s.lit
		s.playback.Light(Color(s.selected), s.lit)
		s.nextBlink = now.Add(blinkInterval)
	}
}

// Selected returns the index of the currently highlighted mode.
func (s *Selector) Selected() int {
	return s.selected
}

// Active returns the running game, or nil while in mode selection.
func (s *Selector) Active() Game {
	return s.active
}
