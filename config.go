package main

import (
	"time"

	"github.com/jessevdk/go-flags"
)

type profilingConfig struct {
	Listen string `long:"listen" description:"Interface to start the profiling HTTP server on (e.g. 0.0.0.0:6060)."`
}

type raspberryConfig struct {
	ButtonPins []string `long:"buttonpin" description:"GPIO pin of a button, one per channel in green, red, yellow, blue order." default:"GPIO5" default:"GPIO6" default:"GPIO13" default:"GPIO19"`
	LightPins  []string `long:"lightpin" description:"GPIO pin of a light, one per channel in green, red, yellow, blue order." default:"GPIO12" default:"GPIO16" default:"GPIO20" default:"GPIO21"`
	BuzzerPin  string   `long:"buzzerpin" description:"GPIO pin of the buzzer." default:"GPIO18"`
}

type config struct {
	ShowVersion  bool             `long:"version" description:"Display version information and exit."`
	Debug        bool             `long:"debug" description:"Start in debug mode."`
	Machine      string           `long:"machine" description:"The machine controller to use (raspberry, terminal or mock)." default:"terminal"`
	TickInterval time.Duration    `long:"tickinterval" description:"Interval between two state machine ticks." default:"2ms"`
	Raspberry    *raspberryConfig `group:"Raspberry" namespace:"raspberry"`
	Profiling    *profilingConfig `group:"Profiling" namespace:"profiling"`
}

func loadConfig() (*config, error) {
	cfg := &config{
		Raspberry: &raspberryConfig{},
		Profiling: &profilingConfig{},
	}

	parser := flags.NewParser(cfg, flags.Default)

	if _, err := parser.Parse(); err != nil {
		return nil, err
	}

	return cfg, nil
}
