// Package config resolves runtime settings from the environment.
// Command-line flags (parsed by the entrypoint) override these values.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting
type Config struct {
	// Data is the portfolio document source: a file path or an http(s) URL
	Data string `env:"FOLIO_DATA" envDefault:"portfolio.json"`

	// FPS is the frame rate of the render loop
	FPS int `env:"FOLIO_FPS" envDefault:"30"`

	// Mouse enables mouse tracking (cursor follower, hover, clicks)
	Mouse bool `env:"FOLIO_MOUSE" envDefault:"true"`

	// Sound enables UI chimes; silently off when no audio device works
	Sound bool `env:"FOLIO_SOUND" envDefault:"false"`

	// Debug routes log output to a file under logs/
	Debug bool `env:"FOLIO_DEBUG" envDefault:"false"`
}

// FromEnv loads configuration from environment variables
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FPS < 1 {
		cfg.FPS = 1
	}
	if cfg.FPS > 120 {
		cfg.FPS = 120
	}
	return cfg, nil
}
