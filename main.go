package main

import (
	"io/ioutil"
	"net/http"
	"os"
	"os/signal"

	"github.com/blinkenland/simond/console"
	"github.com/blinkenland/simond/machine"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	// Blank import to set up profiling HTTP handlers.
	_ "net/http/pprof"
)

var (
	// Commit stores the current commit hash of this build. This should be set using -ldflags during compilation.
	Commit string
	// Version stores the version string of this build. This should be set using -ldflags during compilation.
	Version string
	// Date stores the date of this build. This should be set using -ldflags during compilation.
	Date string
)

// simondMain is the true entry point for simond. This is required since defers
// created in the top-level scope of a main method aren't executed if os.Exit() is called.
func simondMain() error {
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)

	// Load CLI configuration and defaults
	cfg, err := loadConfig()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		return nil
	} else if err != nil {
		return errors.Errorf("Failed parsing arguments: %v", err)
	}

	// Set logger into debug mode if called with --debug
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
		log.Info("Setting debug mode.")
	}

	log.Debug("Loaded config.")

	// Print version of the daemon
	log.Infof("Version %s (commit %s)", Version, Commit)
	log.Infof("Built on %s", Date)

	// Stop here if only version was requested
	if cfg.ShowVersion {
		return nil
	}

	if cfg.Profiling.Listen != "" {
		go func() {
			log.Infof("Starting profiling server on %v", cfg.Profiling.Listen)
			// Redirect the root path
			http.Handle("/", http.RedirectHandler("/debug/pprof", http.StatusSeeOther))
			// All other handlers are registered on DefaultServeMux through the import of pprof
			err := http.ListenAndServe(cfg.Profiling.Listen, nil)
			if err != nil {
				log.Errorf("Could not run profiler: %v", err)
			}
		}()
	}

	// The hardware controller
	var m machine.Machine

	// Closed by machines that carry their own way of asking to quit
	var quit <-chan struct{}

	switch cfg.Machine {
	case "raspberry":
		m = machine.NewRaspberry(&machine.RaspberryConfig{
			ButtonPins: cfg.Raspberry.ButtonPins,
			LightPins:  cfg.Raspberry.LightPins,
			BuzzerPin:  cfg.Raspberry.BuzzerPin,
		})

		log.Infof("Created Raspberry Pi machine on button pins %v, light pins %v and buzzer pin %v.",
			cfg.Raspberry.ButtonPins, cfg.Raspberry.LightPins, cfg.Raspberry.BuzzerPin)
	case "terminal":
		t := machine.NewTerminal()
		quit = t.Quit()
		m = t

		// The terminal machine owns the screen from here on
		log.SetOutput(ioutil.Discard)

		log.Info("Created terminal machine.")
	case "mock":
		m = machine.NewMock()

		log.Info("Created a mock machine.")
	default:
		return errors.Errorf("Unknown machine type %v", cfg.Machine)
	}

	if err := m.Start(); err != nil {
		return errors.Errorf("Could not start machine: %v", err)
	}

	defer func() {
		err := m.Stop()
		if err != nil {
			log.Errorf("Could not properly stop machine: %v", err)
		} else {
			log.Info("Stopped machine.")
		}
	}()

	// Central controller for everything the console does
	c := console.New(&console.Config{
		Machine:      m,
		TickInterval: cfg.TickInterval,
		Logger:       log.WithField("system", "console"),
		GameLogger:   log.WithField("system", "game"),
	})

	log.Info("Created console.")

	// Handle interrupt signals correctly
	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt)

		select {
		case sig := <-signals:
			log.Info(sig)
			log.Info("Received an interrupt, stopping console...")
		case <-quit:
			log.Info("Machine asked to quit, stopping console...")
		}

		c.Shutdown()
	}()

	// blocks until the console is shut down
	if err := c.Run(); err != nil {
		return errors.Errorf("Failed running console: %v", err)
	}

	// finish with no error
	return nil
}

func main() {
	// Call the "real" main in a nested manner so the defers will properly
	// be executed in the case of a graceful shutdown.
	if err := simondMain(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		} else {
			log.WithError(err).Println("Failed running simond.")
		}
		os.Exit(1)
	}
}
