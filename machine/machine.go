package machine

// Channel identifies one of the console's color-coded light/button/tone units.
type Channel int

// NumChannels is the number of units the console carries.
const NumChannels = 4

// Machine is the hardware the console runs on.
//
// Buttons delivers debounced, edge-triggered presses: a press is reported
// exactly once, holding a button down reports nothing further. Light and
// tone control take effect immediately; there is a single tone generator,
// so a new Tone replaces the previous one.
type Machine interface {
	Start() error
	Stop() error
	Buttons() <-chan Channel
	SetLight(ch Channel, on bool)
	Tone(frequency uint)
	Silence()
}
