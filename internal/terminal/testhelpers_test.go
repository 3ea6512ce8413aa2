package terminal

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupCleanEnv controls every variable the package reads and sets only the given ones.
// NO_COLOR is checked for existence, so it is only touched when specified; the rest are
// cleared to empty, which the package treats as unset.
func setupCleanEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	if value, specified := envVars["NO_COLOR"]; specified {
		t.Setenv("NO_COLOR", value)
	} else {
		t.Setenv("NO_COLOR", "")
		require.NoError(t, os.Unsetenv("NO_COLOR"))
	}

	valueCheckedVars := append([]string{"CLICOLOR", "CLICOLOR_FORCE", "TERM"}, ciEnvVars...)
	for _, v := range valueCheckedVars {
		t.Setenv(v, envVars[v])
	}
}

// pipeFiles returns descriptors that are never terminals.
func pipeFiles(t *testing.T) (*os.File, *os.File) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})
	return r, w
}
