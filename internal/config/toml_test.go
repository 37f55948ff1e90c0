package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Game.Pairs != nil || cfg.Game.Fronts != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigGameSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[game]
deck = "letters"
fronts = ["a", "b", "c"]
pairs = 3
face-down-time = 250
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Game.Deck == nil || *cfg.Game.Deck != "letters" {
		t.Fatalf("unexpected deck: %v", cfg.Game.Deck)
	}
	if len(cfg.Game.Fronts) != 3 {
		t.Fatalf("expected 3 fronts, got %v", cfg.Game.Fronts)
	}
	if cfg.Game.Pairs == nil || *cfg.Game.Pairs != 3 {
		t.Fatalf("unexpected pairs: %v", cfg.Game.Pairs)
	}
	if cfg.Game.FaceDownTime == nil || *cfg.Game.FaceDownTime != 250 {
		t.Fatalf("unexpected face-down-time: %v", cfg.Game.FaceDownTime)
	}
	if cfg.Game.PauseTime != nil {
		t.Fatalf("expected pause-time unset")
	}
}

func TestLoadConfigRejectsEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestDefaultPathsHonorXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != "/tmp/cfg/concentration/config.toml" {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultDBPath(); got != "/tmp/data/concentration/games.db" {
		t.Fatalf("unexpected db path: %s", got)
	}
}
