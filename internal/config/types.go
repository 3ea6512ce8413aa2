// Package config loads the score board settings and the initial answers profile.
// Settings are layered: defaults, dotenv file, process environment, TOML profile,
// and finally command line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Error definitions for the config package
var (
	// ErrInvalidConfig is returned when a profile or setting fails validation
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidLogLevel is returned when a log level string is not recognized
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// LogLevel is the logging threshold: debug, info, warn or error
type LogLevel string

const (
	// LogLevelDebug logs every toggle
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo logs session start and end
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn is the default
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs failures only
	LogLevelError LogLevel = "error"
)

// ToSlogLevel converts LogLevel to slog.Level
func (l LogLevel) ToSlogLevel() (slog.Level, error) {
	switch LogLevel(strings.ToLower(string(l))) {
	case LogLevelDebug:
		return slog.LevelDebug, nil
	case LogLevelInfo:
		return slog.LevelInfo, nil
	case LogLevelWarn, "":
		return slog.LevelWarn, nil
	case LogLevelError:
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q (must be one of: debug, info, warn, error)", ErrInvalidLogLevel, string(l))
	}
}

// Display holds presentation settings
type Display struct {
	Format string `toml:"format" validate:"omitempty,oneof=table json"`
	Color  string `toml:"color" validate:"omitempty,oneof=auto always never"`
}

// Answers maps category identifiers to flag identifiers to the initial answer
type Answers map[string]map[string]bool

// Config is the resolved configuration of one run
type Config struct {
	Display  Display  `toml:"display"`
	LogLevel LogLevel `toml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogDir   string   `toml:"log_dir"`
	Answers  Answers  `toml:"answers"`
}

// Default values
const (
	DefaultFormat   = "table"
	DefaultColor    = "auto"
	DefaultLogLevel = LogLevelWarn
)

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Display: Display{
			Format: DefaultFormat,
			Color:  DefaultColor,
		},
		LogLevel: DefaultLogLevel,
	}
}
