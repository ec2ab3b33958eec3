package config

import (
	_ "embed"
)

//go:embed defaults/wampus.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timing: TimingConfig{
			TickRate:      60,
			HazardStepMs:  1000,
			DwellPitMs:    2000,
			DwellWinMs:    2000,
			DwellCaughtMs: 1000,
		},
		Terminal: TerminalConfig{
			Player: "@",
			Hazard: "W",
			Pit:    "░",
			Gold:   "$",
		},
		Window: WindowConfig{
			Title:    "Extended Wampus World",
			FontSize: 36,
			Scale:    1,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
