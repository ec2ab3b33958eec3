package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config location.
const LocalPath = "configs/wampus.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.wampus/config.yaml -> ./configs/wampus.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes. Out-of-range values are repaired by Normalize.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and normalizes the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	cfg.Normalize()
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Normalize replaces values no frame loop can honour with defaults.
// Dwell delays of zero are allowed and end the game on the same frame.
func (c *Config) Normalize() {
	def := Default()

	if c.Timing.TickRate <= 0 {
		c.Timing.TickRate = def.Timing.TickRate
	}
	if c.Timing.HazardStepMs <= 0 {
		c.Timing.HazardStepMs = def.Timing.HazardStepMs
	}
	c.Timing.DwellPitMs = max(c.Timing.DwellPitMs, 0)
	c.Timing.DwellWinMs = max(c.Timing.DwellWinMs, 0)
	c.Timing.DwellCaughtMs = max(c.Timing.DwellCaughtMs, 0)

	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if c.Window.FontSize <= 0 {
		c.Window.FontSize = def.Window.FontSize
	}
	if c.Window.Scale <= 0 {
		c.Window.Scale = def.Window.Scale
	}
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wampus", "config.yaml")
}
