// Package config provides YAML-based configuration loading for the snake
// platform: grid size, difficulty tick intervals, countdown pacing, sound,
// and the fun-fact service endpoint.
package config

import (
	"fmt"
	"time"

	"github.com/vkuksa/termsnake/internal/game"
)

// Config is the full game configuration.
type Config struct {
	GridSize        int          `yaml:"grid_size"`
	CountdownStepMS int          `yaml:"countdown_step_ms"`
	Sound           bool         `yaml:"sound"`
	Difficulties    Difficulties `yaml:"difficulties"`
	Facts           FactsConfig  `yaml:"facts"`
}

// Difficulties maps each difficulty to its movement tick interval in
// milliseconds.
type Difficulties struct {
	EasyMS   int `yaml:"easy_ms"`
	MediumMS int `yaml:"medium_ms"`
	HardMS   int `yaml:"hard_ms"`
}

// FactsConfig configures the external fun-fact service. An empty endpoint
// disables the call entirely; the home screen then shows the fallback text.
type FactsConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Prompt    string `yaml:"prompt"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

// TickInterval returns the movement interval for a difficulty.
func (c Config) TickInterval(d game.Difficulty) time.Duration {
	switch d {
	case game.DifficultyEasy:
		return time.Duration(c.Difficulties.EasyMS) * time.Millisecond
	case game.DifficultyMedium:
		return time.Duration(c.Difficulties.MediumMS) * time.Millisecond
	case game.DifficultyHard:
		return time.Duration(c.Difficulties.HardMS) * time.Millisecond
	default:
		return time.Duration(c.Difficulties.MediumMS) * time.Millisecond
	}
}

// CountdownStep returns how long each countdown label is held.
func (c Config) CountdownStep() time.Duration {
	return time.Duration(c.CountdownStepMS) * time.Millisecond
}

// FactsTimeout returns the request timeout for the fact service.
func (c Config) FactsTimeout() time.Duration {
	return time.Duration(c.Facts.TimeoutMS) * time.Millisecond
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.GridSize < 5 {
		return fmt.Errorf("config: grid_size %d is too small (minimum 5)", c.GridSize)
	}
	if c.CountdownStepMS <= 0 {
		return fmt.Errorf("config: countdown_step_ms must be positive, got %d", c.CountdownStepMS)
	}
	for _, d := range []struct {
		name string
		ms   int
	}{
		{"easy_ms", c.Difficulties.EasyMS},
		{"medium_ms", c.Difficulties.MediumMS},
		{"hard_ms", c.Difficulties.HardMS},
	} {
		if d.ms <= 0 {
			return fmt.Errorf("config: difficulties.%s must be positive, got %d", d.name, d.ms)
		}
	}
	if c.Facts.Endpoint != "" && c.Facts.TimeoutMS <= 0 {
		return fmt.Errorf("config: facts.timeout_ms must be positive when an endpoint is set")
	}
	return nil
}
