package terminal

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrInvalidColorMode is returned when a colour mode string is not recognized
var ErrInvalidColorMode = errors.New("invalid color mode")

// ColorMode is the user's colour preference from the -color flag or profile
type ColorMode string

const (
	// ColorAuto defers to environment variables and terminal detection
	ColorAuto ColorMode = "auto"
	// ColorAlways forces ANSI colours
	ColorAlways ColorMode = "always"
	// ColorNever disables ANSI colours
	ColorNever ColorMode = "never"
)

// ParseColorMode converts a string to a ColorMode. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: auto, always, never)", ErrInvalidColorMode, s)
	}
}

// UserPreference resolves explicit colour choices.
// Priority: ColorMode always/never, then CLICOLOR_FORCE, then NO_COLOR.
type UserPreference struct {
	mode ColorMode
}

// NewUserPreference creates a preference for the given mode
func NewUserPreference(mode ColorMode) *UserPreference {
	return &UserPreference{mode: mode}
}

// HasExplicitPreference returns true if the user chose colours on or off.
// CLICOLOR is not explicit; it only applies to interactive sessions.
func (p *UserPreference) HasExplicitPreference() bool {
	if p.mode == ColorAlways || p.mode == ColorNever {
		return true
	}
	if isTruthy(os.Getenv("CLICOLOR_FORCE")) {
		return true
	}
	_, noColor := os.LookupEnv("NO_COLOR")
	return noColor
}

// SupportsColor returns the explicit preference, false when there is none
func (p *UserPreference) SupportsColor() bool {
	switch p.mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if isTruthy(os.Getenv("CLICOLOR_FORCE")) {
		return true
	}
	// NO_COLOR applies with any value, even empty
	return false
}

// isTruthy accepts "1", "true" and "yes" (case insensitive)
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
