package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/isseis/go-ip-sec-score/internal/scoring"
)

// Command parsing errors
var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrPracticeOutOfRange = errors.New("practice number out of range")
)

// CommandKind identifies what a command line asks for
type CommandKind int

const (
	// CommandRender re-renders the board (blank line)
	CommandRender CommandKind = iota
	// CommandToggle flips one practice
	CommandToggle
	// CommandReset restores the initial board
	CommandReset
	// CommandHelp prints the command summary
	CommandHelp
	// CommandQuit ends the session
	CommandQuit
)

// Command is a parsed input line
type Command struct {
	Kind CommandKind
	Flag scoring.Flag // CommandToggle only
}

// ParseCommand parses one input line.
// Practices can be referenced by their 1-based display number or as category.flag.
func ParseCommand(line string) (Command, error) {
	input := strings.TrimSpace(line)
	switch strings.ToLower(input) {
	case "":
		return Command{Kind: CommandRender}, nil
	case "r", "reset":
		return Command{Kind: CommandReset}, nil
	case "h", "help", "?":
		return Command{Kind: CommandHelp}, nil
	case "q", "quit", "exit":
		return Command{Kind: CommandQuit}, nil
	}

	if n, err := strconv.Atoi(input); err == nil {
		flags := scoring.AllFlags()
		if n < 1 || n > len(flags) {
			return Command{}, fmt.Errorf("%w: %d (1-%d)", ErrPracticeOutOfRange, n, len(flags))
		}
		return Command{Kind: CommandToggle, Flag: flags[n-1]}, nil
	}

	if strings.Contains(input, ".") {
		f, err := scoring.ParseQualifiedFlag(input)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CommandToggle, Flag: f}, nil
	}

	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, input)
}
