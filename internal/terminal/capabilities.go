package terminal

import "os"

// Options configures capability detection
type Options struct {
	ColorMode       ColorMode
	DetectorOptions DetectorOptions
}

// Capabilities combines interactive detection and colour support
type Capabilities interface {
	IsInteractive() bool
	SupportsColor() bool
	HasExplicitUserPreference() bool
}

// DefaultCapabilities implements Capabilities
type DefaultCapabilities struct {
	interactiveDetector InteractiveDetector
	colorDetector       ColorDetector
	userPreference      *UserPreference
}

// NewCapabilities creates Capabilities from the given options
func NewCapabilities(options Options) Capabilities {
	return &DefaultCapabilities{
		interactiveDetector: NewInteractiveDetector(options.DetectorOptions),
		colorDetector:       NewColorDetector(),
		userPreference:      NewUserPreference(options.ColorMode),
	}
}

// IsInteractive returns true if a toggle session should be driven from the terminal
func (c *DefaultCapabilities) IsInteractive() bool {
	return c.interactiveDetector.IsInteractive()
}

// SupportsColor decides colour output:
//  1. -color always/never
//  2. CLICOLOR_FORCE=1
//  3. NO_COLOR
//  4. CLICOLOR (interactive only)
//  5. TERM detection (interactive only)
func (c *DefaultCapabilities) SupportsColor() bool {
	if c.userPreference.HasExplicitPreference() {
		return c.userPreference.SupportsColor()
	}
	if !c.IsInteractive() || !c.colorDetector.SupportsColor() {
		return false
	}
	if cliColor := os.Getenv("CLICOLOR"); cliColor != "" {
		return isTruthy(cliColor)
	}
	return true
}

// HasExplicitUserPreference returns true if the user set colours on or off
func (c *DefaultCapabilities) HasExplicitUserPreference() bool {
	return c.userPreference.HasExplicitPreference()
}
