// Package config provides YAML-based configuration loading for the game and
// its frontends.
package config

import (
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/wampus-world/internal/core"
)

// Config contains all tunable settings. Board size and pit count are not
// configurable.
type Config struct {
	Timing   TimingConfig   `yaml:"timing"`
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
}

// TimingConfig defines frame rate and game cadences in milliseconds.
type TimingConfig struct {
	TickRate      int `yaml:"tick_rate"`
	HazardStepMs  int `yaml:"hazard_step_ms"`
	DwellPitMs    int `yaml:"dwell_pit_ms"`
	DwellWinMs    int `yaml:"dwell_win_ms"`
	DwellCaughtMs int `yaml:"dwell_caught_ms"`
}

// TerminalConfig defines the glyphs the terminal frontend paints per layer.
type TerminalConfig struct {
	Player string `yaml:"player"`
	Hazard string `yaml:"hazard"`
	Pit    string `yaml:"pit"`
	Gold   string `yaml:"gold"`
}

// WindowConfig defines the pixel window.
type WindowConfig struct {
	Title    string  `yaml:"title"`
	FontSize float64 `yaml:"font_size"`
	Scale    float64 `yaml:"scale"`
}

// RuntimeTiming converts the millisecond settings into game timing.
func (c Config) RuntimeTiming() core.Timing {
	return core.Timing{
		HazardStep:  ms(c.Timing.HazardStepMs),
		DwellPit:    ms(c.Timing.DwellPitMs),
		DwellWin:    ms(c.Timing.DwellWinMs),
		DwellCaught: ms(c.Timing.DwellCaughtMs),
	}
}

// RuntimeConfig builds the game runtime config for a seed.
func (c Config) RuntimeConfig(seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = c.Timing.TickRate
	rc.Seed = seed
	rc.Timing = c.RuntimeTiming()
	return rc
}

// Glyph returns the first rune of s, or fallback when s is empty.
func Glyph(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
