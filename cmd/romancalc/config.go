package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// config is the environment configuration. Flags override it.
type config struct {
	// LogLevel is the minimum level logged to stderr.
	LogLevel string `env:"ROMANCALC_LOG_LEVEL" envDefault:"warn"`
	// Workers is the number of expressions from --in evaluated at once.
	Workers int `env:"ROMANCALC_WORKERS" envDefault:"4"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
