// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "concentration"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultDeckFilePath returns the default YAML file holding custom front sets.
func DefaultDeckFilePath() string {
	return filepath.Join(XDGConfigHome(), appName, "decks.yaml")
}

// DefaultDBPath returns the default path for the SQLite play log.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appName, "games.db")
}

// DefaultLogPath returns the default engine log file.
func DefaultLogPath() string {
	return filepath.Join(XDGDataHome(), appName, "engine.log")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}
