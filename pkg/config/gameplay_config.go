package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// GameplayConfig is the tunable rule set of a session. Values load from a
// yaml file when one is provided; anything missing keeps its default.
// Speeds are in pixels per 60 Hz tick, durations in seconds.
type GameplayConfig struct {
	FieldWidth  float64 `yaml:"fieldWidth"`
	FieldHeight float64 `yaml:"fieldHeight"`

	PlayerSpeed  float64 `yaml:"playerSpeed"`
	PlayerWidth  float64 `yaml:"playerWidth"`
	PlayerHeight float64 `yaml:"playerHeight"`

	ItemWidth    float64 `yaml:"itemWidth"`
	ItemHeight   float64 `yaml:"itemHeight"`
	FallSpeedMin float64 `yaml:"fallSpeedMin"`
	FallSpeedMax float64 `yaml:"fallSpeedMax"`

	SpawnInterval float64 `yaml:"spawnInterval"`

	// SoftContactMargin is the total inflation per axis of the item's box
	// for the near-miss test (half is added on each side).
	SoftContactMargin float64 `yaml:"softContactMargin"`

	// WinScore is the capture count that ends the run. The observed
	// variants of this game disagreed on the value (1 vs 25), so it is
	// tunable rather than hardcoded.
	WinScore int `yaml:"winScore"`

	ReactingDuration   float64 `yaml:"reactingDuration"`
	MissedTextDuration float64 `yaml:"missedTextDuration"`
	MissedTextRise     float64 `yaml:"missedTextRise"`
}

// DefaultGameplayConfig returns the stock rule set.
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		FieldWidth:  GameWindowWidth,
		FieldHeight: GameWindowHeight,

		PlayerSpeed:  7,
		PlayerWidth:  80,
		PlayerHeight: 80,

		ItemWidth:    50,
		ItemHeight:   50,
		FallSpeedMin: 3,
		FallSpeedMax: 7,

		SpawnInterval: 1.0,

		SoftContactMargin: 20,

		WinScore: 25,

		ReactingDuration:   1.0,
		MissedTextDuration: 1.0,
		MissedTextRise:     30,
	}
}

// LoadGameplayConfig reads the yaml file at path over the defaults.
// A missing file is not an error: the defaults are returned as-is.
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[Config] %s not found, using default gameplay config", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read gameplay config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config %s: %w", path, err)
	}

	log.Printf("[Config] Loaded gameplay config from %s", path)
	return cfg, nil
}

// Validate rejects rule sets the game loop cannot run with.
func (c *GameplayConfig) Validate() error {
	if c.FieldWidth <= 0 || c.FieldHeight <= 0 {
		return fmt.Errorf("field size must be positive, got %.0fx%.0f", c.FieldWidth, c.FieldHeight)
	}
	if c.PlayerWidth <= 0 || c.PlayerHeight <= 0 || c.ItemWidth <= 0 || c.ItemHeight <= 0 {
		return fmt.Errorf("sprite sizes must be positive")
	}
	if c.PlayerWidth > c.FieldWidth {
		return fmt.Errorf("player width %.0f exceeds field width %.0f", c.PlayerWidth, c.FieldWidth)
	}
	if c.ItemWidth > c.FieldWidth {
		return fmt.Errorf("item width %.0f exceeds field width %.0f", c.ItemWidth, c.FieldWidth)
	}
	if c.FallSpeedMin <= 0 || c.FallSpeedMax < c.FallSpeedMin {
		return fmt.Errorf("fall speed range [%.1f, %.1f] is invalid", c.FallSpeedMin, c.FallSpeedMax)
	}
	if c.SpawnInterval <= 0 {
		return fmt.Errorf("spawn interval must be positive, got %.2f", c.SpawnInterval)
	}
	if c.WinScore <= 0 {
		return fmt.Errorf("win score must be positive, got %d", c.WinScore)
	}
	return nil
}
