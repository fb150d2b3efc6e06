package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("parses runner variables", func(t *testing.T) {
		t.Parallel()

		e, err := LoadEnvironment(map[string]string{
			"GITHUB_ACTIONS":      "true",
			"RUNNER_DEBUG":        "1",
			"STEPWAIT_MODE":       "console",
			"STEPWAIT_LOG_FORMAT": "json",
		})
		require.NoError(t, err)

		assert.True(t, e.GitHubActions)
		assert.True(t, e.RunnerDebug)
		assert.Equal(t, "console", e.Mode)
		assert.Equal(t, "json", e.LogFormat)
	})

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()

		e, err := LoadEnvironment(map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, DefaultEnvironment(), e)
	})

	t.Run("rejects a malformed boolean", func(t *testing.T) {
		t.Parallel()

		_, err := LoadEnvironment(map[string]string{"RUNNER_DEBUG": "maybe"})
		assert.Error(t, err)
	})
}

func TestEnvFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit file is read", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "local.env")
		content := "# local run\nINPUT_MILLISECONDS=750\nSTEPWAIT_MODE=\"console\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		found, err := FindEnvFile(path)
		require.NoError(t, err)
		assert.Equal(t, path, found)

		vars, err := LoadEnvFile(found)
		require.NoError(t, err)
		assert.Equal(t, "750", vars["INPUT_MILLISECONDS"])
		assert.Equal(t, "console", vars["STEPWAIT_MODE"])
	})

	t.Run("explicit missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := FindEnvFile(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, ErrEnvFileNotFound)
	})

	t.Run("unreadable file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
		assert.Error(t, err)
	})
}

func TestMergeEnv(t *testing.T) {
	t.Parallel()

	merged := MergeEnv(
		map[string]string{"A": "file", "B": "file"},
		map[string]string{"B": "process", "C": "process"},
	)

	assert.Equal(t, map[string]string{"A": "file", "B": "process", "C": "process"}, merged)
}

func TestProcessEnv(t *testing.T) {
	t.Parallel()

	vars := ProcessEnv()
	assert.Equal(t, os.Getenv("PATH"), vars["PATH"])
}
