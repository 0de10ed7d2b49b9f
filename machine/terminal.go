package machine

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-errors/errors"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// cell dimensions of one channel pad on screen
const (
	padWidth  = 10
	padHeight = 4
	padGap    = 2
)

var padColors = [NumChannels]tcell.Color{
	tcell.ColorGreen,
	tcell.ColorRed,
	tcell.ColorYellow,
	tcell.ColorBlue,
}

// Terminal renders the console in a terminal window. The four channels show
// up as colored pads that brighten while lit, the number keys 1 to 4 press
// the matching buttons and tones play through the host sound card.
type Terminal struct {
	mu       sync.Mutex
	screen   tcell.Screen
	buttons  chan Channel
	quit     chan struct{}
	quitOnce sync.Once
	lights   [NumChannels]bool
	sound    bool
}

// Compile time check for protocol compatibility
var _ Machine = (*Terminal)(nil)

func NewTerminal() *Terminal {
	return &Terminal{
		buttons: make(chan Channel, 8),
		quit:    make(chan struct{}),
	}
}

func (t *Terminal) Start() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Errorf("Could not create screen: %v", err)
	}

	if err := screen.Init(); err != nil {
		return errors.Errorf("Could not initialize screen: %v", err)
	}

	// Keep running without sound when no audio device is available
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err == nil {
		t.sound = true
	}

	t.mu.Lock()
	t.screen = screen
	t.mu.Unlock()

	t.draw()

	go t.watchKeys(screen)

	return nil
}

// Quit is closed when the player asks to leave with Escape or Ctrl-C.
func (t *Terminal) Quit() <-chan struct{} {
	return t.quit
}

func (t *Terminal) watchKeys(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()

		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				t.quitOnce.Do(func() {
					close(t.quit)
				})
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() >= '1' && ev.Rune() <= '4':
				select {
				case t.buttons <- Channel(ev.Rune() - '1'):
				default:
					// nobody is consuming, drop the press
				}
			}
		case *tcell.EventResize:
			screen.Sync()
			t.draw()
		case nil:
			// screen was finalized
			return
		}
	}
}

func (t *Terminal) Stop() error {
	if t.sound {
		speaker.Clear()
		speaker.Close()
	}

	t.mu.Lock()
	screen := t.screen
	t.screen = nil
	t.mu.Unlock()

	if screen != nil {
		screen.Fini()
	}

	return nil
}

func (t *Terminal) Buttons() <-chan Channel {
	return t.buttons
}

func (t *Terminal) SetLight(ch Channel, on bool) {
	t.mu.Lock()

	if int(ch) < 0 || int(ch) >= NumChannels {
		t.mu.Unlock()
		return
	}

	t.lights[ch] = on
	t.mu.Unlock()

	t.draw()
}

func (t *Terminal) Tone(frequency uint) {
	if !t.sound || frequency == 0 {
		return
	}

	sine, err := generators.SineTone(sampleRate, float64(frequency))
	if err != nil {
		return
	}

	// A tone lasts until Silence or the next Tone replaces it
	speaker.Clear()
	speaker.Play(sine)
}

func (t *Terminal) Silence() {
	if !t.sound {
		return
	}

	speaker.Clear()
}

func (t *Terminal) draw() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.screen == nil {
		return
	}

	t.screen.Clear()

	style := tcell.StyleDefault
	drawText(t.screen, 2, 1, style, "simond")
	drawText(t.screen, 2, 2+padHeight+2, style, "1-4: press a button, Esc: quit")

	for i := 0; i < NumChannels; i++ {
		left := 2 + i*(padWidth+padGap)

		padStyle := tcell.StyleDefault.Background(padColors[i]).Dim(!t.lights[i])
		for y := 0; y < padHeight; y++ {
			for x := 0; x < padWidth; x++ {
				t.screen.SetContent(left+x, 3+y, ' ', nil, padStyle)
			}
		}

		label := rune('1' + i)
		t.screen.SetContent(left+padWidth/2, 3+padHeight, label, nil, style)
	}

	t.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
