package console

import (
	"testing"
	"time"

	"github.com/blinkenland/simond/game"
	"github.com/blinkenland/simond/machine"
)

func TestConsoleRunsAndShutsDown(t *testing.T) {
	m := machine.NewMock()
	if err := m.Start(); err != nil {
		t.Fatalf("could not start mock machine: %v", err)
	}

	c := New(&Config{
		Machine:      m,
		TickInterval: time.Millisecond,
		Clock:        game.NewMockClock(time.Unix(0, 0)),
	})

	errs := make(chan error, 1)
	go func() {
		errs <- c.Run()
	}()

	// let the startup melody and a few ticks through
	time.Sleep(20 * time.Millisecond)

	c.Shutdown()
	c.Shutdown() // calling twice is fine

	select {
	case err := <-errs:
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("console did not stop")
	}

	if len(m.Tones()) == 0 {
		t.Error("expected the startup melody to play")
	}
}

func TestConsoleDefaults(t *testing.T) {
	c := New(&Config{Machine: machine.NewMock()})

	if c.tick != defaultTickInterval {
		t.Errorf("expected the default tick interval, got %v", c.tick)
	}
	if c.clock == nil {
		t.Error("expected a clock to be set up")
	}
}
