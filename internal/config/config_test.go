package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vkuksa/termsnake/internal/game"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestTickInterval(t *testing.T) {
	cfg := Default()

	tests := []struct {
		difficulty game.Difficulty
		expected   time.Duration
	}{
		{game.DifficultyEasy, 200 * time.Millisecond},
		{game.DifficultyMedium, 150 * time.Millisecond},
		{game.DifficultyHard, 100 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.difficulty.String(), func(t *testing.T) {
			if got := cfg.TickInterval(tc.difficulty); got != tc.expected {
				t.Errorf("TickInterval() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny grid", func(c *Config) { c.GridSize = 3 }},
		{"zero countdown", func(c *Config) { c.CountdownStepMS = 0 }},
		{"zero easy interval", func(c *Config) { c.Difficulties.EasyMS = 0 }},
		{"negative hard interval", func(c *Config) { c.Difficulties.HardMS = -50 }},
		{"endpoint without timeout", func(c *Config) {
			c.Facts.Endpoint = "http://localhost:9999/fact"
			c.Facts.TimeoutMS = 0
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should have failed")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := []byte(`
grid_size: 16
countdown_step_ms: 500
sound: false
difficulties:
  easy_ms: 300
  medium_ms: 200
  hard_ms: 120
facts:
  endpoint: ""
  prompt: "hi"
  timeout_ms: 1000
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.GridSize != 16 {
		t.Errorf("GridSize = %d, expected 16", cfg.GridSize)
	}
	if cfg.Sound {
		t.Error("Sound should be false")
	}
	if cfg.TickInterval(game.DifficultyHard) != 120*time.Millisecond {
		t.Errorf("hard interval = %v, expected 120ms", cfg.TickInterval(game.DifficultyHard))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing explicit path")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid_size: [not an int"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should fail for unparseable YAML")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// With no custom path and no config files in cwd/home-relative lookups
	// expected in CI, Load must still return a valid config.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should validate: %v", err)
	}
}
