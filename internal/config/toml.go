// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game GameConfig `toml:"game"`
}

// GameConfig maps game-related settings. Nil fields were not set in the file.
type GameConfig struct {
	Deck         *string  `toml:"deck"`
	DeckFile     *string  `toml:"deck-file"`
	Fronts       []string `toml:"fronts"`
	FrontsFile   *string  `toml:"fronts-file"`
	Back         *string  `toml:"back"`
	Pairs        *int     `toml:"pairs"`
	Columns      *int     `toml:"columns"`
	FaceUpTime   *int     `toml:"face-up-time"`
	FaceDownTime *int     `toml:"face-down-time"`
	PauseTime    *int     `toml:"pause-time"`
	LogFile      *string  `toml:"log-file"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
