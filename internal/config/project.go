// ABOUTME: Project .dreamdecoder marker detection
// ABOUTME: Walks the directory tree to find a project-local journal config
package config

import (
	"os"
	"path/filepath"
)

// MarkerFile marks a directory whose journal config overrides the user one.
// The marker doubles as the TOML config for that project.
const MarkerFile = ".dreamdecoder"

// FindProjectRoot walks up from dir looking for a .dreamdecoder file.
// Returns empty string if not found
func FindProjectRoot(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	current := absDir
	for {
		if info, err := os.Stat(filepath.Join(current, MarkerFile)); err == nil && !info.IsDir() {
			return current, nil
		}

		parent := filepath.Dir(current)

		// Stop at filesystem root or home directory
		if parent == current || current == homeDir {
			return "", nil
		}

		current = parent
	}
}

// ResolvePath picks the config file for a process started in dir: the
// nearest project marker, else the user-wide file.
func ResolvePath(dir string) (string, error) {
	root, err := FindProjectRoot(dir)
	if err != nil {
		return "", err
	}
	if root != "" {
		return filepath.Join(root, MarkerFile), nil
	}
	return DefaultConfigPath(), nil
}
