package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// expandPath resolves a user-supplied config path. "~/" is anchored at the
// home directory, relative paths at the current working directory, absolute
// paths are used as-is.
func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: cannot determine home directory: %v", ErrRead, err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("%w: cannot determine working directory: %v", ErrRead, err)
		}
		return filepath.Join(cwd, path), nil
	}
	return path, nil
}

// loadFile reads and parses the YAML document at path into the raw document
// tree. No semantic validation happens here; that is the schema mapper's
// job.
func loadFile(path string) (*rawDocument, error) {
	expanded, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrRead, expanded, err)
	}

	var doc rawDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrParse, expanded, err)
	}

	return &doc, nil
}
