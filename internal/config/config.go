// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

const (
	FrontendGUI = "gui"
	FrontendTUI = "tui"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Frontend string `env:"DUNGEON_FRONTEND" envDefault:"gui"`
	Log      Log
	Window   Window
}

type Log struct {
	Level  string `env:"DUNGEON_LOG_LEVEL"  envDefault:"info"`
	Format string `env:"DUNGEON_LOG_FORMAT" envDefault:"text"`
	File   string `env:"DUNGEON_LOG_FILE"`
}

type Window struct {
	Width     int32 `env:"DUNGEON_WINDOW_WIDTH"  envDefault:"960"`
	Height    int32 `env:"DUNGEON_WINDOW_HEIGHT" envDefault:"640"`
	TargetFPS int32 `env:"DUNGEON_TARGET_FPS"    envDefault:"60"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Frontend = strings.ToLower(strings.TrimSpace(cfg.Frontend))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendGUI, FrontendTUI:
	default:
		return fmt.Errorf("%w: frontend must be %q or %q, got %q", ErrInvalid, FrontendGUI, FrontendTUI, c.Frontend)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format must be text or json, got %q", ErrInvalid, c.Log.Format)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS <= 0 {
		return fmt.Errorf("%w: target fps must be positive, got %d", ErrInvalid, c.Window.TargetFPS)
	}
	return nil
}
