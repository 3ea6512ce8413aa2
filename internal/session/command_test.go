package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isseis/go-ip-sec-score/internal/scoring"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input   string
		want    Command
		wantErr error
	}{
		{"", Command{Kind: CommandRender}, nil},
		{"   ", Command{Kind: CommandRender}, nil},
		{"q", Command{Kind: CommandQuit}, nil},
		{"EXIT", Command{Kind: CommandQuit}, nil},
		{"reset", Command{Kind: CommandReset}, nil},
		{"?", Command{Kind: CommandHelp}, nil},
		{"1", Command{Kind: CommandToggle, Flag: scoring.UseOSSMessenger}, nil},
		{" 11 ", Command{Kind: CommandToggle, Flag: scoring.UseOSSHardware}, nil},
		{"6", Command{Kind: CommandToggle, Flag: scoring.UseOSSIDE}, nil},
		{"runtime.selfHostRuntime", Command{Kind: CommandToggle, Flag: scoring.SelfHostRuntime}, nil},
		{"0", Command{}, ErrPracticeOutOfRange},
		{"12", Command{}, ErrPracticeOutOfRange},
		{"hardware.useOSSMessenger", Command{}, scoring.ErrFlagCategoryMismatch},
		{"firmware.signed", Command{}, scoring.ErrUnknownCategory},
		{"toggle", Command{}, ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCommand(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
