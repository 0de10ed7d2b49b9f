package game

import "github.com/blinkenland/simond/machine"

// Poller turns the machine's button channel into a non-blocking poll. It
// is called once per tick while a machine awaits input and never during
// playback.
type Poller struct {
	buttons <-chan machine.Channel
}

func NewPoller(m machine.Machine) *Poller {
	return &Poller{
		buttons: m.Buttons(),
	}
}

// Poll returns the color whose button was pressed since the last call, or
// reports false when no press is pending. Presses on channels without a
// color are ignored.
func (p *Poller) Poll() (Color, bool) {
	for {
		select {
		case ch := <-p.buttons:
			c, ok := colorForChannel(ch)
			if !ok {
				continue
			}

			return c, true
		default:
			return 0, false
		}
	}
}

// Drain discards any presses that queued up, typically while a cue was
// playing.
func (p *Poller) Drain() {
	for {
		select {
		case <-p.buttons:
		default:
			return
		}
	}
}
