// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/abhisek/cryptogram/internal/logging"
)

// Config holds all runtime configuration. Command-line flags override it.
type Config struct {
	// DBPath is the SQLite puzzle database. Empty uses the XDG default.
	DBPath string `env:"CRYPTOGRAM_DB"`

	// PrefsPath is the preferences file. Empty uses the XDG default.
	PrefsPath string `env:"CRYPTOGRAM_PREFS"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"CRYPTOGRAM_LOG_LEVEL" envDefault:"warn"`

	// TimeZone names the IANA zone whose calendar days define streaks.
	// Empty uses the system local zone.
	TimeZone string `env:"CRYPTOGRAM_TZ"`

	// AirplaneMode reports the device as offline for flight-mode tracking.
	AirplaneMode bool `env:"CRYPTOGRAM_AIRPLANE_MODE"`
}

// DefaultConfig returns a Config with defaults and nothing read from the
// environment.
func DefaultConfig() Config {
	return Config{LogLevel: "warn"}
}

// Load reads an optional .env file from the working directory, then the
// process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the log level and time zone.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves TimeZone, defaulting to time.Local.
func (c Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}
