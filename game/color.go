package game

import "github.com/blinkenland/simond/machine"

// NumColors is the number of playable colors, one per machine channel.
const NumColors = 4

// Color identifies one of the four light/button/tone channels of the console.
type Color int

const (
	Green Color = iota
	Red
	Yellow
	Blue
)

// frequencies holds the tone of each color in Hertz, a G major arpeggio
// from G3 on the blue channel up to G4 on the green one.
var frequencies = [NumColors]uint{
	Green:  392,
	Red:    330,
	Yellow: 262,
	Blue:   196,
}

func (c Color) String() string {
	switch c {
	case Green:
		return "GREEN"
	case Red:
		return "RED"
	case Yellow:
		return "YELLOW"
	case Blue:
		return "BLUE"
	default:
		return "INVALID COLOR"
	}
}

// Channel returns the machine channel the color is wired to.
func (c Color) Channel() machine.Channel {
	return machine.Channel(c)
}

// Frequency returns the color's tone frequency in Hertz.
func (c Color) Frequency() uint {
	return frequencies[c]
}

// colorForChannel maps a machine channel back to its color. It reports
// false for channel ids outside the playable range, which callers treat
// as no event.
func colorForChannel(ch machine.Channel) (Color, bool) {
	if int(ch) < 0 || int(ch) >= NumColors {
		return 0, false
	}

	return Color(ch), true
}
