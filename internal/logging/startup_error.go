package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrorType classifies failures that stop the tool before the board is shown
type ErrorType string

const (
	// ErrorTypeInvalidArguments represents bad command line arguments
	ErrorTypeInvalidArguments ErrorType = "invalid_arguments"
	// ErrorTypeConfigLoad represents profile or environment failures
	ErrorTypeConfigLoad ErrorType = "config_load_failed"
	// ErrorTypeLogSetup represents logger or log file failures
	ErrorTypeLogSetup ErrorType = "log_setup_failed"
	// ErrorTypeOutput represents failures writing the board
	ErrorTypeOutput ErrorType = "output_failed"
	// ErrorTypeUserInterrupted represents SIGINT/SIGTERM
	ErrorTypeUserInterrupted ErrorType = "user_interrupted"
)

// StartupError is a classified, user facing failure
type StartupError struct {
	Type      ErrorType
	Message   string
	Component string
	RunID     string
	Err       error
}

// Error implements the error interface
func (e *StartupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v (component: %s, run_id: %s)", e.Type, e.Message, e.Err, e.Component, e.RunID)
	}
	return fmt.Sprintf("%s: %s (component: %s, run_id: %s)", e.Type, e.Message, e.Component, e.RunID)
}

// Unwrap returns the wrapped error
func (e *StartupError) Unwrap() error {
	return e.Err
}

// HandleStartupError reports err on w and through logger.
// Errors that are not a *StartupError are reported as internal errors.
func HandleStartupError(w io.Writer, logger *slog.Logger, err error) {
	var se *StartupError
	if !errors.As(err, &se) {
		se = &StartupError{Type: "internal_error", Message: err.Error(), Component: "main"}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\n", se.Type)
	if se.Component != "" {
		fmt.Fprintf(&b, "  Component: %s\n", se.Component)
	}
	fmt.Fprintf(&b, "  Details: %s\n", se.Message)
	if se.Err != nil {
		fmt.Fprintf(&b, "  Cause: %v\n", se.Err)
	}
	if se.RunID != "" {
		fmt.Fprintf(&b, "  Run ID: %s\n", se.RunID)
	}
	fmt.Fprint(w, b.String())

	if logger != nil {
		logger.LogAttrs(context.Background(), slog.LevelError, "Startup error",
			slog.String("error_type", string(se.Type)),
			slog.String("error_message", se.Message),
			slog.String("component", se.Component),
			slog.String("run_id", se.RunID),
			slog.Any("cause", se.Err),
		)
	}
}
