// Package terminal detects whether the score board runs in an interactive terminal
// session and whether its output may be coloured.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains environment variables set by common CI systems
var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"TRAVIS",
	"CIRCLECI",
	"JENKINS_URL",
	"BUILD_NUMBER",
	"GITLAB_CI",
	"APPVEYOR",
	"BUILDKITE",
	"DRONE",
	"TF_BUILD",
}

// FileDescriptor is implemented by *os.File
type FileDescriptor interface {
	Fd() uintptr
}

// DetectorOptions controls interactive session detection
type DetectorOptions struct {
	ForceInteractive    bool // -interactive
	ForceNonInteractive bool // -batch

	// Input and Output are checked for a TTY. They default to os.Stdin and os.Stdout.
	Input  FileDescriptor
	Output FileDescriptor
}

// InteractiveDetector decides whether a toggle session can be driven from the terminal
type InteractiveDetector interface {
	IsInteractive() bool
	IsTerminal() bool
	IsCIEnvironment() bool
}

// DefaultInteractiveDetector implements InteractiveDetector
type DefaultInteractiveDetector struct {
	options DetectorOptions
}

// NewInteractiveDetector creates a detector with the given options
func NewInteractiveDetector(options DetectorOptions) InteractiveDetector {
	if options.Input == nil {
		options.Input = os.Stdin
	}
	if options.Output == nil {
		options.Output = os.Stdout
	}
	return &DefaultInteractiveDetector{options: options}
}

// IsInteractive returns true when a session should be started.
// Explicit options win, then CI detection, then TTY detection.
func (d *DefaultInteractiveDetector) IsInteractive() bool {
	if d.options.ForceInteractive {
		return true
	}
	if d.options.ForceNonInteractive {
		return false
	}
	if d.IsCIEnvironment() {
		return false
	}
	return d.IsTerminal()
}

// IsTerminal reports whether both input and output are attached to a terminal
func (d *DefaultInteractiveDetector) IsTerminal() bool {
	return term.IsTerminal(int(d.options.Input.Fd())) && term.IsTerminal(int(d.options.Output.Fd()))
}

// IsCIEnvironment reports whether a known CI variable is present
func (d *DefaultInteractiveDetector) IsCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		// CI=false and CI=0 are used to opt out
		if envVar == "CI" {
			return isCITruthy(value)
		}
		return true
	}
	return false
}

func isCITruthy(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	return lower != "false" && lower != "0" && lower != "no"
}
