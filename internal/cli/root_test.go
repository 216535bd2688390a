package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-logging/log"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	var (
		stdout bytes.Buffer
		stderr bytes.Buffer
		cmd    = NewRootCommand()
	)

	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	// A nil slice would make cobra fall back to the test binaries arguments.
	if args == nil {
		args = []string{}
	}

	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRootConsole(t *testing.T) {
	stdout, stderr, err := execute(t, "--level", "warning", "low", "disk")
	require.NoError(t, err)
	require.Empty(t, stderr)
	require.Regexp(t, `^\x1b\[33m\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] WARNING: low disk\x1b\[0m\n$`, stdout)
}

func TestRootDefaultLevel(t *testing.T) {
	stdout, _, err := execute(t, "hello")
	require.NoError(t, err)
	require.Regexp(t, `DEBUG: hello`, stdout)
}

func TestRootFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	_, _, err := execute(t, "--file", path, "-l", "error", "disk full")
	require.NoError(t, err)

	_, _, err = execute(t, "--file", path, "--lock", "second")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Regexp(t, `^\[[^\]]+\] ERROR: disk full\n\[[^\]]+\] DEBUG: second\n$`, string(data))
}

func TestRootFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "app.log")

	t.Run("Reported", func(t *testing.T) {
		_, stderr, err := execute(t, "--file", path, "lost")
		require.NoError(t, err)
		require.Contains(t, stderr, "failed to write to log file: ")
	})

	t.Run("Strict", func(t *testing.T) {
		_, stderr, err := execute(t, "--file", path, "--strict", "lost")

		var writeErr *log.WriteError

		require.ErrorAs(t, err, &writeErr)
		require.Empty(t, stderr)
	})
}

func TestRootInvalid(t *testing.T) {
	t.Run("UnknownLevel", func(t *testing.T) {
		_, _, err := execute(t, "--level", "info", "message")
		require.ErrorIs(t, err, log.ErrUnknownLevel)
	})

	t.Run("NoMessage", func(t *testing.T) {
		_, _, err := execute(t)
		require.Error(t, err)
	})
}
