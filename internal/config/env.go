package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvFormat   = "IPSEC_SCORE_FORMAT"
	EnvColor    = "IPSEC_SCORE_COLOR"
	EnvLogLevel = "IPSEC_SCORE_LOG_LEVEL"
	EnvLogDir   = "IPSEC_SCORE_LOG_DIR"
	EnvProfile  = "IPSEC_SCORE_PROFILE"
)

// LookupFunc looks up an environment variable, like os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ReadEnvFile parses a dotenv file without modifying the process environment
func ReadEnvFile(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return values, nil
}

// LayeredLookup consults the process environment first and falls back to dotenv values
func LayeredLookup(dotenv map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

// ApplyEnv overrides settings from IPSEC_SCORE_* variables; empty values are ignored
func (c *Config) ApplyEnv(lookup LookupFunc) {
	if v, ok := lookup(EnvFormat); ok && v != "" {
		c.Display.Format = v
	}
	if v, ok := lookup(EnvColor); ok && v != "" {
		c.Display.Color = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = LogLevel(v)
	}
	if v, ok := lookup(EnvLogDir); ok && v != "" {
		c.LogDir = v
	}
}
