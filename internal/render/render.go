// Package render presents a score board snapshot to the user.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/isseis/go-ip-sec-score/internal/color"
	"github.com/isseis/go-ip-sec-score/internal/scoring"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// ErrUnknownFormat is returned by New for unsupported formats
var ErrUnknownFormat = errors.New("unknown output format")

// Renderer writes a board snapshot
type Renderer interface {
	Render(w io.Writer, b scoring.Board) error
}

// Options configures renderers
type Options struct {
	// Palette colours scores by risk band; the zero value disables colour
	Palette color.Palette
}

// New creates a renderer for the given format
func New(format string, opts Options) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatTable:
		return NewTableRenderer(opts), nil
	case FormatJSON:
		return NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s, %s)", ErrUnknownFormat, format, FormatTable, FormatJSON)
	}
}

// BandColor returns the colour used for a risk band
func BandColor(band scoring.RiskBand) color.Color {
	switch band {
	case scoring.RiskBandHigh:
		return color.Red
	case scoring.RiskBandModerate:
		return color.Orange
	case scoring.RiskBandLow:
		return color.Yellow
	default:
		return color.Green
	}
}

// FormatScore formats a score with two decimals
func FormatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}
