// Package config provides YAML-based game configuration loading and
// difficulty management for blockfall.
package config

import "time"

// Config contains all tunable parameters of a blockfall session.
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Window     WindowConfig     `yaml:"window"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the fall periods. All values are in seconds.
type TimingConfig struct {
	AutoFall     float64 `yaml:"auto_fall"`      // Initial auto-fall period
	SoftDrop     float64 `yaml:"soft_drop"`      // Period of the held soft drop
	GameOverHold float64 `yaml:"game_over_hold"` // How long the final score stays up
}

// DifficultyConfig defines the auto-fall speed ramp.
type DifficultyConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Interval float64 `yaml:"interval"` // Seconds between speed-ups
	Factor   float64 `yaml:"factor"`   // Multiplier applied to the auto-fall period
	Floor    float64 `yaml:"floor"`    // Ramp stops once the period is at or below this
}

// ScoringConfig defines how cleared rows are scored.
type ScoringConfig struct {
	PointsPerRow int `yaml:"points_per_row"`
}

// WindowConfig defines presentation parameters shared by both frontends.
type WindowConfig struct {
	BlockSize int `yaml:"block_size"` // Pixel size of one cell in the window frontend
	TickRate  int `yaml:"tick_rate"`  // Frames per second ceiling
}

// SoftDropPeriod returns the soft-drop period as a duration.
func (c Config) SoftDropPeriod() time.Duration {
	return Seconds(c.Timing.SoftDrop)
}

// GameOverHold returns how long the game-over screen stays up.
func (c Config) GameOverHold() time.Duration {
	return Seconds(c.Timing.GameOverHold)
}

// Seconds converts a seconds value from the YAML file into a duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the known presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
