package console

import (
	"sync"
	"time"

	"github.com/blinkenland/simond/game"
	"github.com/blinkenland/simond/machine"
)

// defaultTickInterval keeps timeout detection well under the smallest
// reaction window.
const defaultTickInterval = 2 * time.Millisecond

type Config struct {
	Machine      machine.Machine
	TickInterval time.Duration
	Clock        game.Clock
	Logger       Logger
	GameLogger   game.Logger
}

// Console is the central controller of the whole game console. It owns the
// machine, builds the game machines around it and drives the mode selector
// one tick at a time until it is shut down.
type Console struct {
	machine  machine.Machine
	playback *game.Playback
	selector *game.Selector
	clock    game.Clock
	tick     time.Duration
	log      Logger
	done     chan struct{}
	shutdown sync.Once
}

func New(config *Config) *Console {
	c := &Console{
		machine: config.Machine,
		clock:   config.Clock,
		tick:    config.TickInterval,
		log:     config.Logger,
		done:    make(chan struct{}),
	}

	if c.log == nil {
		c.log = noopLogger{}
	}

	if c.clock == nil {
		c.clock = game.NewSystemClock()
	}

	if c.tick <= 0 {
		c.tick = defaultTickInterval
	}

	c.playback = game.NewPlayback(config.Machine, c.clock)

	cfg := &game.Config{
		Source:   game.NewGenerator(),
		Playback: c.playback,
		Poller:   game.NewPoller(config.Machine),
		Clock:    c.clock,
		Logger:   config.GameLogger,
	}

	c.selector = game.NewSelector(cfg,
		game.NewRepeat(cfg),
		game.NewBuild(cfg),
		game.NewReaction(cfg),
	)

	return c
}

// Run greets the player with the startup melody and then drives the
// selector until Shutdown is called.
func (c *Console) Run() error {
	c.log.Infof("Starting console...")

	c.playback.PlayTune(game.StartupTune)

	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.selector.Tick(c.clock.Now())

		case <-c.done:
			// finish loop when program is done
			c.playback.Clear()
			return nil
		}
	}
}

// Shutdown stops the tick loop. It is safe to call more than once.
func (c *Console) Shutdown() {
	c.shutdown.Do(func() {
		close(c.done)
	})
}
