package game

import (
	"testing"
	"time"

	"github.com/blinkenland/simond/machine"
)

// stubSource deals colors from a fixed cycle so tests know every draw.
type stubSource struct {
	colors  []Color
	next    int
	reseeds int
}

func (s *stubSource) Reseed() {
	s.reseeds++
}

func (s *stubSource) NextColor() Color {
	c := s.colors[s.next%len(s.colors)]
	s.next++

	return c
}

func (s *stubSource) Next(n int) Sequence {
	seq := make(Sequence, n)
	for i := range seq {
		seq[i] = s.NextColor()
	}

	return seq
}

type fixture struct {
	t     *testing.T
	mock  *machine.Mock
	clock *MockClock
	src   *stubSource
	cfg   *Config
}

func newFixture(t *testing.T, colors ...Color) *fixture {
	t.Helper()

	if len(colors) == 0 {
		colors = []Color{Green, Red, Yellow, Blue}
	}

	mock := machine.NewMock()
	clock := NewMockClock(time.Unix(0, 0))
	src := &stubSource{colors: colors}

	return &fixture{
		t:     t,
		mock:  mock,
		clock: clock,
		src:   src,
		cfg: &Config{
			Source:   src,
			Playback: NewPlayback(mock, clock),
			Poller:   NewPoller(mock),
			Clock:    clock,
		},
	}
}

func (f *fixture) press(c Color) {
	f.t.Helper()

	f.mock.Press(c.Channel())
}

// tonesSince returns the frequencies played since the given mark.
func (f *fixture) tonesSince(mark int) []uint {
	f.t.Helper()

	return f.mock.Tones()[mark:]
}

func (f *fixture) toneCount() int {
	return len(f.mock.Tones())
}
