package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment. A .env
// file in the working directory is loaded first if present.
type Config struct {
	// JournalPath is the sqlite file recording installer operations.
	// Empty disables the journal.
	JournalPath string `env:"GRAFT_JOURNAL"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `env:"GRAFT_LOG_LEVEL" envDefault:"warn"`

	// Role is the demo sender identity used for permission checks.
	Role string `env:"GRAFT_ROLE" envDefault:"guest"`

	// ForceExecutable makes every compiled node independently runnable.
	ForceExecutable bool `env:"GRAFT_FORCE_EXECUTABLE"`

	// NativeNumberSuggestions disables delegated completion for numeric
	// arguments.
	NativeNumberSuggestions bool `env:"GRAFT_NATIVE_NUMBER_SUGGESTIONS"`
}

// LoadConfig reads configuration from .env and the process environment.
func LoadConfig() (Config, error) {
	// Missing .env is fine; the environment alone is a full config.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
