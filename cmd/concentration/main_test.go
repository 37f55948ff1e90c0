package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/concentration/internal/config"
	"github.com/verte-zerg/concentration/internal/deck"
)

func resetPlayFlags(t *testing.T) {
	t.Helper()
	playDeck = deck.DefaultSet
	playDeckFile = filepath.Join(t.TempDir(), "decks.yaml")
	playFronts = nil
	playFrontsFile = ""
	playBack = ""
	playPairs = defaultPairs
	playColumns = defaultColumns
	playFaceUpTime = defaultFaceUpTime
	playFaceDownTime = defaultFaceDownTime
	playPauseTime = defaultPauseTime
}

func TestResolveGameConfigDefaultsToBuiltinDeck(t *testing.T) {
	resetPlayFlags(t)
	cfg, err := resolveGameConfig()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Deck != deck.DefaultSet || len(cfg.Fronts) != 16 || cfg.Back != "?" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.FaceDownTime.Milliseconds() != defaultFaceDownTime || cfg.PauseTime.Milliseconds() != defaultPauseTime {
		t.Fatalf("unexpected timings: %+v", cfg)
	}
	if err := validateConfig(cfg); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestResolveGameConfigExplicitFronts(t *testing.T) {
	resetPlayFlags(t)
	playFronts = []string{"a", "b", "a", " "}
	playBack = "*"
	cfg, err := resolveGameConfig()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Deck != "custom" || len(cfg.Fronts) != 2 || cfg.Back != "*" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestResolveGameConfigFrontsFile(t *testing.T) {
	resetPlayFlags(t)
	path := filepath.Join(t.TempDir(), "fruit.txt")
	if err := os.WriteFile(path, []byte("apple\npear\n"), 0o644); err != nil {
		t.Fatalf("write fronts: %v", err)
	}
	playFrontsFile = path
	cfg, err := resolveGameConfig()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Deck != "fruit" || len(cfg.Fronts) != 2 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestResolveGameConfigUnknownDeck(t *testing.T) {
	resetPlayFlags(t)
	playDeck = "nope"
	_, err := resolveGameConfig()
	if err == nil || !strings.Contains(err.Error(), "unknown deck") {
		t.Fatalf("expected unknown deck error, got %v", err)
	}
}

func TestResolveGameConfigRejectsNegativeTimes(t *testing.T) {
	resetPlayFlags(t)
	playPauseTime = -1
	if _, err := resolveGameConfig(); err == nil {
		t.Fatalf("expected error for negative pause time")
	}
}

func TestValidateConfigRejectsEmptyFronts(t *testing.T) {
	resetPlayFlags(t)
	playFronts = []string{" ", ""}
	cfg, err := resolveGameConfig()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if err := validateConfig(cfg); err == nil {
		t.Fatalf("expected error for empty fronts")
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var cfg config.FileConfig
	if _, err := toml.Decode(defaultConfigTemplate(), &cfg); err != nil {
		t.Fatalf("template does not decode: %v", err)
	}
	if cfg.Game.Pairs != nil {
		t.Fatalf("expected commented template to leave values unset")
	}
}
