package main

import (
	"fmt"
	"time"

	"ctrlc"
	infraLogging "ctrlc/infrastructure/logging"

	"github.com/caarlos0/env/v11"
)

type config struct {
	Termination bool          `env:"CTRLC_TERMINATION"`
	KeepInert   bool          `env:"CTRLC_KEEP_INERT"`
	Strict      bool          `env:"CTRLC_STRICT"`
	Quiet       bool          `env:"CTRLC_QUIET"`
	MaxSignals  int           `env:"CTRLC_MAX_SIGNALS" envDefault:"1"`
	Tick        time.Duration `env:"CTRLC_TICK" envDefault:"1s"`
	// RaiseAfter makes the program interrupt itself periodically; zero disables it.
	RaiseAfter time.Duration `env:"CTRLC_RAISE_AFTER"`
}

// loadConfig parses the environment into a config.
// See: [env.Parse]
func loadConfig() (config, error) {
	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		return config{}, err
	}
	if cfg.MaxSignals < 1 {
		return config{}, fmt.Errorf("CTRLC_MAX_SIGNALS must be at least 1, got %d", cfg.MaxSignals)
	}
	if cfg.Tick <= 0 {
		return config{}, fmt.Errorf("CTRLC_TICK must be positive, got %s", cfg.Tick)
	}
	if cfg.RaiseAfter < 0 {
		return config{}, fmt.Errorf("CTRLC_RAISE_AFTER must not be negative, got %s", cfg.RaiseAfter)
	}
	return cfg, nil
}

func (c config) handlerConfig() ctrlc.Config {
	hc := ctrlc.Config{
		Mode:   ctrlc.InterruptOnly,
		OnStop: ctrlc.RestoreDefault,
		Strict: c.Strict,
	}
	if c.Termination {
		hc.Mode = ctrlc.Termination
	}
	if c.KeepInert {
		hc.OnStop = ctrlc.KeepInert
	}
	if c.Quiet {
		hc.Logger = infraLogging.NewNopLogger()
	}
	return hc
}
