package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.False(t, s.Verbose)
	assert.Equal(t, "CmdOrCtrl+Shift+X", s.Exit.Shortcut)
	assert.Empty(t, s.Opener.Command)
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "settings.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoad_ParsesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := `
verbose = true

[exit]
shortcut = "Ctrl+Q"

[opener]
command = "firefox --new-window"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.True(t, s.Verbose)
	assert.Equal(t, "Ctrl+Q", s.Exit.Shortcut)
	assert.Equal(t, "firefox --new-window", s.Opener.Command)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("verbose = true\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.True(t, s.Verbose)
	assert.Equal(t, DefaultExitShortcut, s.Exit.Shortcut)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("verbose = [broken"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
