// Package color wraps text in ANSI escape sequences for the score board output.
//
//nolint:revive // package name conflicts with standard library
package color

// ANSI escape codes
const (
	resetCode  = "\033[0m"
	boldCode   = "\033[1m"
	grayCode   = "\033[90m"
	redCode    = "\033[31m"
	greenCode  = "\033[32m"
	yellowCode = "\033[33m"
	cyanCode   = "\033[36m"
	// 256-colour orange; basic ANSI has no orange
	orangeCode = "\033[38;5;214m"
)

// Color wraps text with an escape sequence
type Color func(text string) string

// NewColor creates a Color for the given escape code
func NewColor(ansiCode string) Color {
	return func(text string) string {
		if text == "" {
			return ""
		}
		return ansiCode + text + resetCode
	}
}

// Plain returns text unchanged
func Plain(text string) string {
	return text
}

// Predefined colours
var (
	Bold   = NewColor(boldCode)
	Gray   = NewColor(grayCode)
	Red    = NewColor(redCode)
	Orange = NewColor(orangeCode)
	Yellow = NewColor(yellowCode)
	Green  = NewColor(greenCode)
	Cyan   = NewColor(cyanCode)
)

// Palette hands out colours, or Plain for every colour when disabled
type Palette struct {
	enabled bool
}

// NewPalette creates a palette; enabled is usually terminal.Capabilities.SupportsColor()
func NewPalette(enabled bool) Palette {
	return Palette{enabled: enabled}
}

// Enabled reports whether the palette emits escape sequences
func (p Palette) Enabled() bool {
	return p.enabled
}

// Use returns c when the palette is enabled and Plain otherwise
func (p Palette) Use(c Color) Color {
	if !p.enabled {
		return Plain
	}
	return c
}
