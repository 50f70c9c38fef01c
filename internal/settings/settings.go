// Package settings handles the popup tool preferences file. These are
// tool-level defaults (shortcut, opener, logging), separate from the popup
// content config resolved per invocation.
package settings

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultExitShortcut is the shortcut the window host registers to close
// the popup.
const DefaultExitShortcut = "CmdOrCtrl+Shift+X"

// Settings represents the popup tool preferences.
type Settings struct {
	Verbose bool         `toml:"verbose"`
	Exit    ExitConfig   `toml:"exit"`
	Opener  OpenerConfig `toml:"opener"`
}

// ExitConfig holds exit behavior preferences consumed by the window host.
type ExitConfig struct {
	Shortcut string `toml:"shortcut"`
}

// OpenerConfig holds the command used to open webview URLs.
type OpenerConfig struct {
	Command string `toml:"command"` // Auto-detected if empty
}

// DefaultSettings returns Settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Verbose: false,
		Exit: ExitConfig{
			Shortcut: DefaultExitShortcut,
		},
		Opener: OpenerConfig{
			Command: "", // Auto-detect
		},
	}
}

// Path returns the path to the settings file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "popup", "settings.toml")
}

// Load reads settings from the specified path, layered over defaults. If
// path is empty, the default path is used. A missing file is not an error;
// defaults apply in full.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = Path()
	}

	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}
