// Package main provides the ipsec-score command. It renders the IP security
// score board once, or runs an interactive toggle session when attached to a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/isseis/go-ip-sec-score/internal/color"
	"github.com/isseis/go-ip-sec-score/internal/config"
	"github.com/isseis/go-ip-sec-score/internal/logging"
	"github.com/isseis/go-ip-sec-score/internal/render"
	"github.com/isseis/go-ip-sec-score/internal/scoring"
	"github.com/isseis/go-ip-sec-score/internal/session"
	"github.com/isseis/go-ip-sec-score/internal/terminal"
)

// Error definitions
var (
	ErrConflictingModes    = errors.New("-interactive and -batch are mutually exclusive")
	ErrUnexpectedArguments = errors.New("unexpected arguments")
)

// stringList collects a repeatable string flag
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// cliOptions holds parsed command line flags. Empty strings mean "not given".
type cliOptions struct {
	ConfigPath  string
	EnvFile     string
	Format      string
	Color       string
	LogLevel    string
	LogDir      string
	Set         stringList
	Interactive bool
	Batch       bool
}

func parseFlags(args []string, output io.Writer) (*cliOptions, error) {
	opts := &cliOptions{}
	fs := flag.NewFlagSet("ipsec-score", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.ConfigPath, "config", "", "path to a TOML profile with display settings and initial answers")
	fs.StringVar(&opts.EnvFile, "env-file", "", "path to a dotenv file with IPSEC_SCORE_* defaults")
	fs.StringVar(&opts.Format, "format", "", "report format (table, json)")
	fs.StringVar(&opts.Color, "color", "", "color output (auto, always, never)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&opts.LogDir, "log-dir", "", "directory to place a per-run JSON log")
	fs.Var(&opts.Set, "set", "enable a practice before rendering, as category.flag (repeatable)")
	fs.BoolVar(&opts.Interactive, "interactive", false, "always start an interactive session")
	fs.BoolVar(&opts.Batch, "batch", false, "never start an interactive session; print the report and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedArguments, strings.Join(fs.Args(), " "))
	}
	if opts.Interactive && opts.Batch {
		return nil, ErrConflictingModes
	}
	return opts, nil
}

// applyFlags overrides configuration with explicitly given flags
func applyFlags(cfg *config.Config, opts *cliOptions) {
	if opts.Format != "" {
		cfg.Display.Format = opts.Format
	}
	if opts.Color != "" {
		cfg.Display.Color = opts.Color
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = config.LogLevel(opts.LogLevel)
	}
	if opts.LogDir != "" {
		cfg.LogDir = opts.LogDir
	}
}

// initialBoard builds the starting board from the profile answers and -set flags
func initialBoard(cfg *config.Config, set []string) (scoring.Board, error) {
	b, err := cfg.Board()
	if err != nil {
		return b, err
	}
	for _, ref := range set {
		f, err := scoring.ParseQualifiedFlag(ref)
		if err != nil {
			return b, fmt.Errorf("-set %s: %w", ref, err)
		}
		b = b.Set(f, true)
	}
	return b, nil
}

func main() {
	runID := logging.GenerateRunID()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, runID, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logging.HandleStartupError(os.Stderr, slog.Default(), err)
		os.Exit(1)
	}
}

func run(ctx context.Context, runID string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return &logging.StartupError{Type: logging.ErrorTypeInvalidArguments, Message: "invalid command line", Component: "cli", RunID: runID, Err: err}
	}

	loader := config.NewLoader()
	cfg, err := loader.Load(config.LoadOptions{EnvFile: opts.EnvFile, ProfilePath: opts.ConfigPath})
	if err != nil {
		return &logging.StartupError{Type: logging.ErrorTypeConfigLoad, Message: "failed to load configuration", Component: "config", RunID: runID, Err: err}
	}
	applyFlags(cfg, opts)
	if err := loader.Validate(cfg); err != nil {
		return &logging.StartupError{Type: logging.ErrorTypeInvalidArguments, Message: "invalid option value", Component: "cli", RunID: runID, Err: err}
	}

	colorMode, err := terminal.ParseColorMode(cfg.Display.Color)
	if err != nil {
		return &logging.StartupError{Type: logging.ErrorTypeInvalidArguments, Message: "invalid color mode", Component: "cli", RunID: runID, Err: err}
	}
	detector := terminal.DetectorOptions{
		ForceInteractive:    opts.Interactive,
		ForceNonInteractive: opts.Batch,
	}
	if f, ok := stdin.(terminal.FileDescriptor); ok {
		detector.Input = f
	}
	if f, ok := stdout.(terminal.FileDescriptor); ok {
		detector.Output = f
	}
	caps := terminal.NewCapabilities(terminal.Options{ColorMode: colorMode, DetectorOptions: detector})

	level, err := cfg.LogLevel.ToSlogLevel()
	if err != nil {
		return &logging.StartupError{Type: logging.ErrorTypeInvalidArguments, Message: "invalid log level", Component: "cli", RunID: runID, Err: err}
	}
	logger, closeLog, err := logging.Setup(logging.Config{
		Level:         level,
		LogDir:        cfg.LogDir,
		RunID:         runID,
		Capabilities:  caps,
		ConsoleWriter: stderr,
	})
	if err != nil {
		return &logging.StartupError{Type: logging.ErrorTypeLogSetup, Message: "failed to set up logging", Component: "logging", RunID: runID, Err: err}
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(stderr, "Warning: failed to close log file: %v\n", err)
		}
	}()
	slog.SetDefault(logger)

	board, err := initialBoard(cfg, opts.Set)
	if err != nil {
		return &logging.StartupError{Type: logging.ErrorTypeInvalidArguments, Message: "invalid initial answers", Component: "cli", RunID: runID, Err: err}
	}

	palette := color.NewPalette(caps.SupportsColor())
	logger.Info("Score board ready",
		"interactive", caps.IsInteractive(),
		"color", palette.Enabled(),
		"format", cfg.Display.Format,
		"total", board.Total())

	if caps.IsInteractive() {
		s := session.New(board, session.Options{Logger: logger, Palette: palette})
		if err := s.Run(ctx, stdin, stdout); err != nil {
			if errors.Is(err, context.Canceled) {
				return &logging.StartupError{Type: logging.ErrorTypeUserInterrupted, Message: "session interrupted", Component: "session", RunID: runID, Err: err}
			}
			return &logging.StartupError{Type: logging.ErrorTypeOutput, Message: "session failed", Component: "session", RunID: runID, Err: err}
		}
		return nil
	}

	renderer, err := render.New(cfg.Display.Format, render.Options{Palette: palette})
	if err != nil {
		return &logging.StartupError{Type: logging.ErrorTypeInvalidArguments, Message: "invalid format", Component: "render", RunID: runID, Err: err}
	}
	if err := renderer.Render(stdout, board); err != nil {
		return &logging.StartupError{Type: logging.ErrorTypeOutput, Message: "failed to write report", Component: "render", RunID: runID, Err: err}
	}
	return nil
}
