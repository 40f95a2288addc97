// ABOUTME: XDG Base Directory specification helpers
// ABOUTME: Resolves default data and config locations for dreamdecoder
package config

import (
	"os"
	"path/filepath"
)

// AppName names the per-application XDG subdirectories.
const AppName = "dreamdecoder"

// GetDataHome returns XDG_DATA_HOME or fallback to ~/.local/share
func GetDataHome() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share")
}

// GetConfigHome returns XDG_CONFIG_HOME or fallback to ~/.config
func GetConfigHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}

// DefaultDataDir is where the journal and symbol guide live by default.
func DefaultDataDir() string {
	return filepath.Join(GetDataHome(), AppName)
}

// DefaultConfigPath is the user-wide config file.
func DefaultConfigPath() string {
	return filepath.Join(GetConfigHome(), AppName, "config.toml")
}
