package machine

import (
	"sync"
	"time"

	"github.com/go-errors/errors"
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/host"
)

// debounceDelay ignores subsequent edges on a button pin for this duration
const debounceDelay = 25 * time.Millisecond

// edgeTimeout bounds WaitForEdge so watcher goroutines notice Stop
const edgeTimeout = 250 * time.Millisecond

type RaspberryConfig struct {
	// ButtonPins and LightPins name one GPIO pin per channel,
	// in channel order (green, red, yellow, blue)
	ButtonPins []string
	LightPins  []string
	BuzzerPin  string
}

// Raspberry drives the console hardware through the Raspberry Pi GPIO
// header: four button inputs, four light outputs and a PWM buzzer.
type Raspberry struct {
	config  *RaspberryConfig
	inputs  []gpio.PinIO
	lights  []gpio.PinIO
	buzzer  gpio.PinIO
	buttons chan Channel
	quit    chan struct{}
	wg      sync.WaitGroup
}

// Compile time check for protocol compatibility
var _ Machine = (*Raspberry)(nil)

func NewRaspberry(config *RaspberryConfig) *Raspberry {
	return &Raspberry{
		config:  config,
		buttons: make(chan Channel, 8),
		quit:    make(chan struct{}),
	}
}

func (r *Raspberry) Start() error {
	if _, err := host.Init(); err != nil {
		return errors.Errorf("Could not initialize periph host: %v", err)
	}

	if len(r.config.ButtonPins) != NumChannels {
		return errors.Errorf("Need exactly %v button pins, got %v", NumChannels, len(r.config.ButtonPins))
	}

	if len(r.config.LightPins) != NumChannels {
		return errors.Errorf("Need exactly %v light pins, got %v", NumChannels, len(r.config.LightPins))
	}

	for _, name := range r.config.LightPins {
		pin := gpioreg.ByName(name)
		if pin == nil {
			return errors.Errorf("Unknown light pin %v", name)
		}

		if err := pin.Out(gpio.Low); err != nil {
			return errors.Errorf("Could not configure light pin %v: %v", name, err)
		}

		r.lights = append(r.lights, pin)
	}

	buzzer := gpioreg.ByName(r.config.BuzzerPin)
	if buzzer == nil {
		return errors.Errorf("Unknown buzzer pin %v", r.config.BuzzerPin)
	}

	if err := buzzer.Out(gpio.Low); err != nil {
		return errors.Errorf("Could not configure buzzer pin %v: %v", r.config.BuzzerPin, err)
	}

	r.buzzer = buzzer

	for i, name := range r.config.ButtonPins {
		pin := gpioreg.ByName(name)
		if pin == nil {
			return errors.Errorf("Unknown button pin %v", name)
		}

		if err := pin.In(gpio.PullDown, gpio.RisingEdge); err != nil {
			return errors.Errorf("Could not configure button pin %v: %v", name, err)
		}

		r.inputs = append(r.inputs, pin)

		r.wg.Add(1)
		go r.watchButton(Channel(i), pin)
	}

	return nil
}

// watchButton reports debounced rising edges of one button pin as presses
func (r *Raspberry) watchButton(ch Channel, pin gpio.PinIO) {
	defer r.wg.Done()

	var last time.Time

	for {
		if !pin.WaitForEdge(edgeTimeout) {
			select {
			case <-r.quit:
				return
			default:
				continue
			}
		}

		select {
		case <-r.quit:
			return
		default:
		}

		if pin.Read() != gpio.High {
			continue
		}

		now := time.Now()
		if now.Sub(last) < debounceDelay {
			continue
		}
		last = now

		select {
		case r.buttons <- ch:
		default:
			// nobody is consuming, drop the press
		}
	}
}

func (r *Raspberry) Stop() error {
	close(r.quit)
	r.wg.Wait()

	r.Silence()

	for _, pin := range r.lights {
		if err := pin.Out(gpio.Low); err != nil {
			return errors.Errorf("Could not turn off light pin %v: %v", pin.Name(), err)
		}
	}

	return nil
}

func (r *Raspberry) Buttons() <-chan Channel {
	return r.buttons
}

func (r *Raspberry) SetLight(ch Channel, on bool) {
	if int(ch) < 0 || int(ch) >= len(r.lights) {
		return
	}

	level := gpio.Low
	if on {
		level = gpio.High
	}

	_ = r.lights[ch].Out(level)
}

func (r *Raspberry) Tone(frequency uint) {
	if r.buzzer == nil || frequency == 0 {
		return
	}

	_ = r.buzzer.PWM(gpio.DutyHalf, physic.Frequency(frequency)*physic.Hertz)
}

func (r *Raspberry) Silence() {
	if r.buzzer == nil {
		return
	}

	_ = r.buzzer.Halt()
	_ = r.buzzer.Out(gpio.Low)
}
