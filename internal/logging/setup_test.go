package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRunID(t *testing.T) {
	a := GenerateRunID()
	b := GenerateRunID()

	assert.NotEqual(t, a, b)
	_, err := ulid.ParseStrict(a)
	assert.NoError(t, err)
}

func TestRunLogPath(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)
	assert.Equal(t,
		filepath.Join("/var/log/ipsec", "host_20240309T140506Z_RUN.json"),
		RunLogPath("/var/log/ipsec", "host", ts, "RUN"))
}

func TestSetup_ConsoleOnly(t *testing.T) {
	var console bytes.Buffer
	logger, closeFn, err := Setup(Config{
		Level:         slog.LevelInfo,
		RunID:         "run-1",
		Capabilities:  fakeCapabilities{},
		ConsoleWriter: &console,
	})
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	defer func() { assert.NoError(t, closeFn()) }()

	logger.Info("board rendered", "total", 1.25)
	assert.Contains(t, console.String(), "board rendered")
}

func TestSetup_JSONLogFile(t *testing.T) {
	dir := t.TempDir()
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	logger, closeFn, err := Setup(Config{
		Level:         slog.LevelDebug,
		LogDir:        dir,
		RunID:         "01HTESTRUN",
		Capabilities:  fakeCapabilities{interactive: true},
		ConsoleWriter: &bytes.Buffer{},
		now:           func() time.Time { return fixed },
	})
	require.NoError(t, err)

	logger.Debug("flag toggled", "flag", "runtime.selfHostRuntime")
	require.NoError(t, closeFn())

	matches, err := filepath.Glob(filepath.Join(dir, "*_20240102T030405Z_01HTESTRUN.json"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	info, err := os.Stat(matches[0])
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(logFilePerm), info.Mode().Perm())

	content, err := os.ReadFile(matches[0])
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(content), &entry))
	assert.Equal(t, "flag toggled", entry["msg"])
	assert.Equal(t, "01HTESTRUN", entry["run_id"])
	assert.Equal(t, "runtime.selfHostRuntime", entry["flag"])
	assert.EqualValues(t, logSchemaVersion, entry["schema_version"])
}

func TestSetup_Errors(t *testing.T) {
	_, closeFn, err := Setup(Config{ConsoleWriter: &bytes.Buffer{}})
	assert.ErrorIs(t, err, ErrConsoleHandlerCapabilitiesRequired)
	assert.NotNil(t, closeFn)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	for _, dir := range []string{file, filepath.Join(t.TempDir(), "missing")} {
		_, _, err := Setup(Config{LogDir: dir, Capabilities: fakeCapabilities{}, ConsoleWriter: &bytes.Buffer{}})
		assert.True(t, errors.Is(err, ErrInvalidLogDir), "dir %s: %v", dir, err)
	}
}
