package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath_Home(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandPath("~/popup/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "popup", "config.yaml"), got)
}

func TestExpandPath_Relative(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	got, err := expandPath("configs/popup.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "configs", "popup.yaml"), got)
}

func TestExpandPath_Absolute(t *testing.T) {
	got, err := expandPath("/etc/popup/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/popup/config.yaml", got)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := loadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrRead)
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("custom: [unclosed"), 0644))

	_, err := loadFile(path)
	assert.ErrorIs(t, err, ErrParse)
}

func TestLoadFile_ParsesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
custom:
  url: https://example.com
  title: Hi
  window:
    width: 400
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	doc, err := loadFile(path)
	require.NoError(t, err)
	require.NotNil(t, doc.Custom)
	assert.Nil(t, doc.Notification)
	assert.Equal(t, "https://example.com", doc.Custom.URL)
	assert.Equal(t, "Hi", doc.Custom.Title)
	require.NotNil(t, doc.Custom.Window)
	require.NotNil(t, doc.Custom.Window.Width)
	assert.Equal(t, 400.0, *doc.Custom.Window.Width)
	assert.Nil(t, doc.Custom.Window.Height)
}
