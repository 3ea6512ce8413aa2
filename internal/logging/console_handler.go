package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/isseis/go-ip-sec-score/internal/terminal"
)

// Static errors for ConsoleHandler validation
var (
	ErrConsoleHandlerCapabilitiesRequired = errors.New("ConsoleHandler: Capabilities is required")
	ErrConsoleHandlerWriterRequired       = errors.New("ConsoleHandler: Writer is required")
)

// ConsoleHandler is a text handler that stays quiet while an interactive session
// owns the terminal: only records at InteractiveLevel or above are written then.
type ConsoleHandler struct {
	capabilities     terminal.Capabilities
	interactiveLevel slog.Level
	textHandler      slog.Handler
}

// ConsoleHandlerOptions configures the ConsoleHandler
type ConsoleHandlerOptions struct {
	Capabilities terminal.Capabilities

	// Level is the threshold for non-interactive runs
	Level slog.Level

	// InteractiveLevel is the threshold during an interactive session; it is
	// raised to Level if lower
	InteractiveLevel slog.Level

	Writer io.Writer
}

// NewConsoleHandler creates a ConsoleHandler
func NewConsoleHandler(opts ConsoleHandlerOptions) (*ConsoleHandler, error) {
	if opts.Capabilities == nil {
		return nil, ErrConsoleHandlerCapabilitiesRequired
	}
	if opts.Writer == nil {
		return nil, ErrConsoleHandlerWriterRequired
	}
	return &ConsoleHandler{
		capabilities:     opts.Capabilities,
		interactiveLevel: max(opts.InteractiveLevel, opts.Level),
		textHandler:      slog.NewTextHandler(opts.Writer, &slog.HandlerOptions{Level: opts.Level}),
	}, nil
}

// Enabled reports whether the handler handles records at the given level
func (h *ConsoleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.capabilities.IsInteractive() && level < h.interactiveLevel {
		return false
	}
	return h.textHandler.Enabled(ctx, level)
}

// Handle writes the record as text
func (h *ConsoleHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.Enabled(ctx, r.Level) {
		return nil
	}
	return h.textHandler.Handle(ctx, r)
}

// WithAttrs returns a handler with additional attributes
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ConsoleHandler{
		capabilities:     h.capabilities,
		interactiveLevel: h.interactiveLevel,
		textHandler:      h.textHandler.WithAttrs(attrs),
	}
}

// WithGroup returns a handler with an additional group
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	return &ConsoleHandler{
		capabilities:     h.capabilities,
		interactiveLevel: h.interactiveLevel,
		textHandler:      h.textHandler.WithGroup(name),
	}
}
