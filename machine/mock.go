package machine

import "sync"

// Mock is an in-memory machine. It records every light and tone call and
// lets callers inject button presses, which makes it the machine of choice
// for tests and for running the daemon on a machine without any hardware.
type Mock struct {
	mu      sync.Mutex
	buttons chan Channel
	lights  [NumChannels]bool
	tone    uint
	tones   []uint
	started bool
}

// Compile time check for protocol compatibility
var _ Machine = (*Mock)(nil)

func NewMock() *Mock {
	return &Mock{
		buttons: make(chan Channel, 16),
	}
}

func (m *Mock) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.started = true

	return nil
}

func (m *Mock) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.started = false

	return nil
}

func (m *Mock) Buttons() <-chan Channel {
	return m.buttons
}

func (m *Mock) SetLight(ch Channel, on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if int(ch) < 0 || int(ch) >= NumChannels {
		return
	}

	m.lights[ch] = on
}

func (m *Mock) Tone(frequency uint) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tone = frequency
	m.tones = append(m.tones, frequency)
}

func (m *Mock) Silence() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tone = 0
}

// Started reports whether the machine is currently running.
func (m *Mock) Started() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.started
}

// Press injects a button press as if the player had hit the channel's button.
func (m *Mock) Press(ch Channel) {
	m.buttons <- ch
}

// Light reports whether the channel's light is currently on.
func (m *Mock) Light(ch Channel) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if int(ch) < 0 || int(ch) >= NumChannels {
		return false
	}

	return m.lights[ch]
}

// CurrentTone returns the frequency playing right now, or 0 when silent.
func (m *Mock) CurrentTone() uint {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.tone
}

// Tones returns every frequency that has been played, in order.
func (m *Mock) Tones() []uint {
	m.mu.Lock()
	defer m.mu.Unlock()

	tones := make([]uint, len(m.tones))
	copy(tones, m.tones)

	return tones
}
