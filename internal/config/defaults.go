package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  10,
			Height: 25,
		},
		Timing: TimingConfig{
			AutoFall:     0.25,
			SoftDrop:     0.003,
			GameOverHold: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:  true,
			Interval: 3,
			Factor:   0.9,
			Floor:    0.03,
		},
		Scoring: ScoringConfig{
			PointsPerRow: 10,
		},
		Window: WindowConfig{
			BlockSize: 40,
			TickRate:  120,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
