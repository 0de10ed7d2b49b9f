package game

import "time"

// Clock is the monotonic time base of the game machines. Sleep is the
// blocking primitive that paces playback; it occupies the caller for the
// full duration on purpose, since a cue must be fully presented before
// any reaction is accepted.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the real clock the daemon runs on.
type SystemClock struct{}

// Compile time check for protocol compatibility
var _ Clock = (*SystemClock)(nil)

func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

func (c *SystemClock) Now() time.Time {
	return time.Now()
}

func (c *SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
