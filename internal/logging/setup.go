package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/isseis/go-ip-sec-score/internal/terminal"
)

const (
	// File permissions for log files
	logFilePerm = 0o600

	logSchemaVersion = 1
)

// ErrInvalidLogDir is returned when the log directory is missing or not a directory
var ErrInvalidLogDir = errors.New("invalid log directory")

// Config holds logger setup options
type Config struct {
	Level         slog.Level
	LogDir        string
	RunID         string
	Capabilities  terminal.Capabilities
	ConsoleWriter io.Writer // defaults to os.Stderr

	// now is replaced in tests
	now func() time.Time
}

// Setup builds the logger for one run. The returned close function flushes
// and closes the JSON log file, if any; it is never nil.
func Setup(cfg Config) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	consoleWriter := cfg.ConsoleWriter
	if consoleWriter == nil {
		consoleWriter = os.Stderr
	}
	console, err := NewConsoleHandler(ConsoleHandlerOptions{
		Capabilities:     cfg.Capabilities,
		Level:            cfg.Level,
		InteractiveLevel: slog.LevelWarn,
		Writer:           consoleWriter,
	})
	if err != nil {
		return nil, noop, fmt.Errorf("failed to create console handler: %w", err)
	}
	handlers := []slog.Handler{console}

	closeFn := noop
	if cfg.LogDir != "" {
		logF, err := openRunLog(cfg)
		if err != nil {
			return nil, noop, err
		}
		closeFn = logF.Close

		hostname, _ := os.Hostname()
		jsonHandler := slog.NewJSONHandler(logF, &slog.HandlerOptions{Level: cfg.Level}).
			WithAttrs([]slog.Attr{
				slog.String("hostname", hostname),
				slog.Int("pid", os.Getpid()),
				slog.Int("schema_version", logSchemaVersion),
				slog.String("run_id", cfg.RunID),
			})
		handlers = append(handlers, jsonHandler)
	}

	return slog.New(NewMultiHandler(handlers...)), closeFn, nil
}

// RunLogPath returns the per-run JSON log path: <host>_<timestamp>_<runid>.json
func RunLogPath(dir, hostname string, ts time.Time, runID string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s_%s.json", hostname, ts.UTC().Format("20060102T150405Z"), runID))
}

func openRunLog(cfg Config) (*os.File, error) {
	info, err := os.Stat(cfg.LogDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLogDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidLogDir, cfg.LogDir)
	}

	now := cfg.now
	if now == nil {
		now = time.Now
	}
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	path := RunLogPath(cfg.LogDir, hostname, now(), cfg.RunID)
	// #nosec G304 - path is built from a validated directory and generated name
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, logFilePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
