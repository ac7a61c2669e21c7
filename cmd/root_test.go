package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/billie-coop/dialogstack/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConfigGetDefaults(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "-C", dir, "config", "get", "stack.escape_trigger")
	require.NoError(t, err)
	assert.Equal(t, "press\n", out)

	assert.FileExists(t, filepath.Join(dir, config.DirName, "config.toml"))
}

func TestConfigSetPersists(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "-C", dir, "config", "set", "dialog.show_overlay", "false")
	require.NoError(t, err)

	out, err := run(t, "-C", dir, "config", "get", "dialog.show_overlay")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestConfigSetRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "-C", dir, "config", "set", "stack.escape_trigger", "sideways")
	assert.Error(t, err)

	_, err = run(t, "-C", dir, "config", "set", "no.such.key", "1")
	assert.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestConfigListsEveryKey(t *testing.T) {
	out, err := run(t, "-C", t.TempDir(), "config")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, len(config.Keys))
	for i, k := range config.Keys {
		assert.True(t, strings.HasPrefix(lines[i], k+" = "), lines[i])
	}
}

func TestFlagOverridesAreNotSaved(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "dialogstack.log")

	_, err := run(t, "-C", dir, "--theme", "ocean", "--log-file", logFile, "-v",
		"config", "set", "ui.markdown_style", "light")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, config.DirName, "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "light")
	assert.NotContains(t, string(data), "ocean")
	assert.NotContains(t, string(data), logFile)

	logged, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "config updated")
}

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "-C", dir, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, config.DirName, "config.toml")+"\n", out)
}

func TestConfigSetRejectsBadLogLevel(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "-C", dir, "config", "set", "log.level", "loud")
	assert.Error(t, err)

	// The file stays loadable, so later commands keep working.
	_, err = run(t, "-C", dir, "config", "set", "log.level", "debug")
	require.NoError(t, err)
	out, err := run(t, "-C", dir, "config", "get", "log.level")
	require.NoError(t, err)
	assert.Equal(t, "debug\n", out)
}

func TestReloadAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "-C", dir, "config", "set", "ui.theme", "aurora")
	require.NoError(t, err)

	a := &app{dir: dir}
	msg := a.reload()
	require.NoError(t, msg.Err)
	assert.Equal(t, "aurora", msg.Config.UI.Theme)

	a.opts.theme = "ocean"
	msg = a.reload()
	require.NoError(t, msg.Err)
	assert.Equal(t, "ocean", msg.Config.UI.Theme)
}

func TestReloadReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "-C", dir, "config", "path")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DirName, "config.toml"), []byte("[stack\n"), 0o644))

	msg := (&app{dir: dir}).reload()
	assert.Error(t, msg.Err)
	assert.Nil(t, msg.Config)
}
