package terminal

import (
	"os"
	"strings"
)

// colorTerminals lists TERM values (or prefixes followed by '-') known to render ANSI colours
var colorTerminals = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"vt220",
	"ansi",
	"linux",
	"cygwin",
	"putty",
	"alacritty",
	"kitty",
}

// ColorDetector reports whether the terminal type can render colours
type ColorDetector interface {
	SupportsColor() bool
}

// TermColorDetector inspects the TERM environment variable
type TermColorDetector struct{}

// NewColorDetector creates a TERM based colour detector
func NewColorDetector() ColorDetector {
	return &TermColorDetector{}
}

// SupportsColor returns true for known colour capable TERM values.
// Unknown terminals get no colour.
func (d *TermColorDetector) SupportsColor() bool {
	termName := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if termName == "" || termName == "dumb" {
		return false
	}
	for _, colorTerm := range colorTerminals {
		if termName == colorTerm || strings.HasPrefix(termName, colorTerm+"-") {
			return true
		}
	}
	return false
}
