package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MinBoardSize is the smallest accepted board width or height.
// Pieces are drawn from 5x5 patterns and need room to spawn.
const MinBoardSize = 5

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config sources reported by Load.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Source tells where Load found the configuration.
type Source struct {
	Path    string  // File path, SourceEmbedded or SourceBuiltin
	Skipped []error // Search-path files that exist but could not be used
}

// String returns the path.
func (s Source) String() string {
	return s.Path
}

// Load loads blockfall configuration.
// Search order: customPath -> ~/.blockfall/config.yaml -> ./configs/blockfall.yaml -> embedded default.
// Keys missing from a file keep their default values. A broken custom file is
// an error; a broken file on the search path is skipped and reported in Source.Skipped.
func Load(customPath string) (Config, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, Source{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, Source{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, Source{Path: customPath}, nil
	}

	var src Source

	candidates := []string{
		userConfigPath("config.yaml"),
		filepath.Join("configs", "blockfall.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			src.Skipped = append(src.Skipped, fmt.Errorf("config: failed to read %s: %w", path, err))
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			src.Skipped = append(src.Skipped, fmt.Errorf("config: %s: %w", path, err))
			continue
		}
		src.Path = path
		return cfg, src, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		src.Path = SourceBuiltin
		return Default(), src, nil // Fallback to hardcoded if embed fails
	}
	src.Path = SourceEmbedded
	return cfg, src, nil
}

// Parse decodes YAML on top of the default configuration and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate checks that every value is usable by the game.
func (c Config) Validate() error {
	switch {
	case c.Board.Width < MinBoardSize:
		return fmt.Errorf("%w: board.width must be at least %d, got %d", ErrInvalid, MinBoardSize, c.Board.Width)
	case c.Board.Height < MinBoardSize:
		return fmt.Errorf("%w: board.height must be at least %d, got %d", ErrInvalid, MinBoardSize, c.Board.Height)
	case c.Timing.AutoFall <= 0:
		return fmt.Errorf("%w: timing.auto_fall must be positive, got %v", ErrInvalid, c.Timing.AutoFall)
	case c.Timing.SoftDrop <= 0:
		return fmt.Errorf("%w: timing.soft_drop must be positive, got %v", ErrInvalid, c.Timing.SoftDrop)
	case c.Timing.GameOverHold < 0:
		return fmt.Errorf("%w: timing.game_over_hold must not be negative, got %v", ErrInvalid, c.Timing.GameOverHold)
	case c.Difficulty.Interval <= 0:
		return fmt.Errorf("%w: difficulty.interval must be positive, got %v", ErrInvalid, c.Difficulty.Interval)
	case c.Difficulty.Factor <= 0 || c.Difficulty.Factor > 1:
		return fmt.Errorf("%w: difficulty.factor must be in (0, 1], got %v", ErrInvalid, c.Difficulty.Factor)
	case c.Difficulty.Floor < 0:
		return fmt.Errorf("%w: difficulty.floor must not be negative, got %v", ErrInvalid, c.Difficulty.Floor)
	case c.Scoring.PointsPerRow <= 0:
		return fmt.Errorf("%w: scoring.points_per_row must be positive, got %d", ErrInvalid, c.Scoring.PointsPerRow)
	case c.Window.BlockSize <= 0:
		return fmt.Errorf("%w: window.block_size must be positive, got %d", ErrInvalid, c.Window.BlockSize)
	case c.Window.TickRate <= 0:
		return fmt.Errorf("%w: window.tick_rate must be positive, got %d", ErrInvalid, c.Window.TickRate)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", filename)
}

// ParsePreset converts a flag value into a preset. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (use easy, normal, hard or fixed)", ErrInvalid, s)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	// Adjust the starting speed based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Timing.AutoFall = 0.4
	case DifficultyHard:
		cfg.Timing.AutoFall = 0.15
	}
}
