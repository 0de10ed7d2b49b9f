package game

import (
	"sync"
	"time"
)

// MockClock is a controllable time source for tests. Sleep advances the
// clock instead of waiting, so blocking playback runs instantly while the
// elapsed time stays observable.
type MockClock struct {
	mu      sync.RWMutex
	current time.Time
}

// Compile time check for protocol compatibility
var _ Clock = (*MockClock)(nil)

func NewMockClock(start time.Time) *MockClock {
	return &MockClock{
		current: start,
	}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.current
}

func (c *MockClock) Sleep(d time.Duration) {
	c.Advance(d)
}

// SetTime sets the current time of the mock.
func (c *MockClock) SetTime(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = t
}

// Advance moves the current time forward by the given duration.
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = c.current.Add(d)
}
