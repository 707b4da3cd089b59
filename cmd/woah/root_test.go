package woah_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/woah/cmd/woah"
	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with an isolated XDG environment.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
	xdg.Reload()

	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer
	rootCmd := woah.NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func readJSON(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	return got
}

func TestInitThenBuild(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "init", dir, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+filepath.Join(dir, "woah.toml"))
	assert.Contains(t, out, "Created "+filepath.Join(dir, "addon.yaml"))

	out, err = execute(t, "build", "--config", filepath.Join(dir, "woah.toml"), "--format", "json")
	require.NoError(t, err)

	var summary map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "my_pack", summary["addon"])
	assert.Equal(t, filepath.Join(dir, "build"), summary["output"])
	assert.Equal(t, float64(1), summary["items"])
	assert.Equal(t, float64(1), summary["blocks"])
	assert.Equal(t, "created", summary["identity"])

	build := filepath.Join(dir, "build")
	assert.FileExists(t, filepath.Join(build, "BP", "manifest.json"))
	assert.FileExists(t, filepath.Join(build, "RP", "manifest.json"))
	assert.FileExists(t, filepath.Join(build, "BP", "items", "my_ruby.json"))
	assert.FileExists(t, filepath.Join(build, "BP", "blocks", "my_lamp.json"))

	lamp := readJSON(t, filepath.Join(build, "BP", "blocks", "my_lamp.json"))
	assert.Contains(t, lamp, "minecraft:block")

	first := readJSON(t, filepath.Join(build, identity.DefaultFileName))

	out, err = execute(t, "build", "--config", filepath.Join(dir, "woah.toml"), "--format", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "reused", summary["identity"])
	assert.Equal(t, first, readJSON(t, filepath.Join(build, identity.DefaultFileName)))
}

func TestInit_KeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "addon.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("mine"), 0644))

	out, err := execute(t, "init", dir, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Skipped "+existing)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "mine", string(data))
	assert.FileExists(t, filepath.Join(dir, "woah.toml"))
}

func TestBuild_OutputFlagAndFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "init", dir, "--format", "text")
	require.NoError(t, err)

	dist := filepath.Join(t.TempDir(), "dist")
	out, err := execute(t, "build", filepath.Join(dir, "addon.yaml"),
		"--config", filepath.Join(dir, "woah.toml"),
		"--output", dist,
		"--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Built my_pack")
	assert.Contains(t, out, "  output      "+dist+"\n")
	assert.FileExists(t, filepath.Join(dist, "BP", "manifest.json"))
	assert.NoDirExists(t, filepath.Join(dir, "build"))
}

func TestBuild_Errors(t *testing.T) {
	t.Run("missing declaration file", func(t *testing.T) {
		dir := t.TempDir()
		cfg := filepath.Join(dir, "woah.toml")
		require.NoError(t, os.WriteFile(cfg, []byte("[content]\nfiles = [\"missing.yaml\"]\n"), 0644))

		_, err := execute(t, "build", "--config", cfg)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
		assert.True(t, errors.IsRetryable(err))
	})

	t.Run("unknown generator", func(t *testing.T) {
		dir := t.TempDir()
		_, err := execute(t, "init", dir, "--format", "text")
		require.NoError(t, err)
		cfg := filepath.Join(dir, "woah.toml")
		require.NoError(t, os.WriteFile(cfg, []byte("[generators]\nenabled = [\"java\"]\n"), 0644))

		_, err = execute(t, "build", "--config", cfg)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfiguration))
		assert.NoDirExists(t, filepath.Join(dir, "build"))
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := execute(t, "build", "--config", filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "build", "--format", "xml")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestGenConfig(t *testing.T) {
	out, err := execute(t, "genconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "[output]")
	assert.Contains(t, out, "# path = \"build\"")
	assert.Contains(t, out, "[generators]")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "woah version dev")
	assert.Contains(t, out, "commit: unknown")
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := execute(t, "completion", shell)
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}

	_, err := execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestMan(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "man")
	out, err := execute(t, "man", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, dir)
	assert.FileExists(t, filepath.Join(dir, "woah.1"))
	assert.FileExists(t, filepath.Join(dir, "woah-build.1"))
}

func TestRoot_NoCommand(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
