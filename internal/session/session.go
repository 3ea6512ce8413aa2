// Package session drives an interactive score board: it owns the current board
// snapshot, applies toggle commands read line by line and re-renders after each change.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/isseis/go-ip-sec-score/internal/color"
	"github.com/isseis/go-ip-sec-score/internal/render"
	"github.com/isseis/go-ip-sec-score/internal/scoring"
)

const prompt = "Toggle a practice (1-11 or category.flag), h for help, q to quit: "

const helpText = `Commands:
  <n>              toggle practice number n
  <category.flag>  toggle a practice by name, e.g. hardware.useOSSHardware
  r, reset         restore the initial answers
  h, help, ?       show this help
  q, quit, exit    leave the session
  <empty line>     redraw the board
`

// Options configures a Session
type Options struct {
	Renderer render.Renderer
	Logger   *slog.Logger
	Palette  color.Palette
}

// Session is one interactive assessment. It is not safe for concurrent use.
type Session struct {
	initial  scoring.Board
	board    scoring.Board
	renderer render.Renderer
	logger   *slog.Logger
	palette  color.Palette
}

// New creates a session starting from initial
func New(initial scoring.Board, opts Options) *Session {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.NewTableRenderer(render.Options{Palette: opts.Palette})
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		initial:  initial,
		board:    initial,
		renderer: renderer,
		logger:   logger,
		palette:  opts.Palette,
	}
}

// Board returns the current snapshot
func (s *Session) Board() scoring.Board {
	return s.board
}

// Apply executes a command and reports whether the session should continue
func (s *Session) Apply(cmd Command) bool {
	switch cmd.Kind {
	case CommandToggle:
		s.board = s.board.Toggle(cmd.Flag.Category(), cmd.Flag)
		s.logger.Debug("Practice toggled",
			"flag", cmd.Flag.QualifiedName(),
			"enabled", s.board.Enabled(cmd.Flag),
			"category_score", s.board.Score(cmd.Flag.Category()),
			"total", s.board.Total())
	case CommandReset:
		s.board = s.initial
		s.logger.Debug("Answers reset", "total", s.board.Total())
	case CommandQuit:
		return false
	case CommandRender, CommandHelp:
	}
	return true
}

// Run reads commands from in until quit, EOF or context cancellation and writes
// the board to out after every change. Cancellation returns ctx.Err() without
// waiting for the next line; a Read still blocked on in ends when in is closed.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("Session started", "total", s.board.Total())
	if err := s.redraw(out); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	lines, readErr := readLines(in, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var text string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				s.logger.Info("Session finished", "total", s.board.Total(), "risk", scoring.Classify(s.board.Total()).String())
				return nil
			}
			text = line
		}

		cmd, err := ParseCommand(text)
		if err != nil {
			fmt.Fprintf(out, "%s %v\n", s.palette.Use(color.Red)("error:"), err)
			s.logger.Debug("Rejected input", "input", text, "error", err)
			fmt.Fprint(out, prompt)
			continue
		}

		if !s.Apply(cmd) {
			s.logger.Info("Session finished", "total", s.board.Total(), "risk", scoring.Classify(s.board.Total()).String())
			return nil
		}

		if cmd.Kind == CommandHelp {
			fmt.Fprint(out, helpText)
			fmt.Fprint(out, prompt)
			continue
		}
		if err := s.redraw(out); err != nil {
			return err
		}
	}
}

// readLines scans in on its own goroutine so Run can wait on the context too.
// lines is closed at EOF or on a read error, after the error (nil at EOF) is sent
// on the returned error channel. The goroutine exits early once done is closed.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

func (s *Session) redraw(out io.Writer) error {
	if err := s.renderer.Render(out, s.board); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}
	_, err := fmt.Fprint(out, prompt)
	return err
}
