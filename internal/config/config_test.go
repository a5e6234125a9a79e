package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("board:\n  width: 12\ntiming:\n  auto_fall: 0.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}
	if source.Path != path {
		t.Errorf("source = %q, expected %q", source.Path, path)
	}
	if cfg.Board.Width != 12 {
		t.Errorf("Board.Width = %d, expected 12", cfg.Board.Width)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Board.Height != 25 {
		t.Errorf("Board.Height = %d, expected default 25", cfg.Board.Height)
	}
	if cfg.Timing.AutoFall != 0.5 {
		t.Errorf("Timing.AutoFall = %v, expected 0.5", cfg.Timing.AutoFall)
	}
	if cfg.GameOverHold() != 3*time.Second {
		t.Errorf("GameOverHold() = %v, expected default 3s", cfg.GameOverHold())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"missing file", "", false},
		{"bad yaml", "board: [", false},
		{"narrow board", "board:\n  width: 3\n", true},
		{"zero factor", "difficulty:\n  factor: 0\n", true},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "cfg"+string(rune('a'+i))+".yaml")
			if tt.content != "" {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			_, _, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, expected %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadFallsBackToLocalConfigs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "blockfall.yaml"), []byte("scoring:\n  points_per_row: 25\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if source.Path != filepath.Join("configs", "blockfall.yaml") {
		t.Errorf("source = %q", source.Path)
	}
	if cfg.Scoring.PointsPerRow != 25 {
		t.Errorf("PointsPerRow = %d, expected 25", cfg.Scoring.PointsPerRow)
	}
}

func TestLoadReportsSkippedUserConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	userDir := filepath.Join(dir, ".blockfall")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("board:\n  width: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if source.Path != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source.Path, SourceEmbedded)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, expected defaults", cfg)
	}
	if len(source.Skipped) != 1 {
		t.Fatalf("Skipped = %v, expected one entry", source.Skipped)
	}
	if !errors.Is(source.Skipped[0], ErrInvalid) {
		t.Errorf("Skipped[0] = %v, expected ErrInvalid", source.Skipped[0])
	}
	if !strings.Contains(source.Skipped[0].Error(), "config.yaml") {
		t.Errorf("Skipped[0] = %v, expected the file path", source.Skipped[0])
	}
}

func TestLoadEmbeddedWhenNothingOnDisk(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if source.Path != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source.Path, SourceEmbedded)
	}
	if len(source.Skipped) != 0 {
		t.Errorf("Skipped = %v, expected none", source.Skipped)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, expected defaults", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"height", func(c *Config) { c.Board.Height = 4 }},
		{"auto fall", func(c *Config) { c.Timing.AutoFall = 0 }},
		{"soft drop", func(c *Config) { c.Timing.SoftDrop = -1 }},
		{"hold", func(c *Config) { c.Timing.GameOverHold = -1 }},
		{"interval", func(c *Config) { c.Difficulty.Interval = 0 }},
		{"factor above one", func(c *Config) { c.Difficulty.Factor = 1.5 }},
		{"floor", func(c *Config) { c.Difficulty.Floor = -0.1 }},
		{"points", func(c *Config) { c.Scoring.PointsPerRow = 0 }},
		{"block size", func(c *Config) { c.Window.BlockSize = 0 }},
		{"tick rate", func(c *Config) { c.Window.TickRate = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		autoFall float64
		enabled  bool
	}{
		{DifficultyEasy, 0.4, true},
		{DifficultyNormal, 0.25, true},
		{DifficultyHard, 0.15, true},
		{DifficultyFixed, 0.25, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			p, err := ParsePreset(string(tt.preset))
			if err != nil {
				t.Fatalf("ParsePreset(%q) error: %v", tt.preset, err)
			}
			cfg := Default()
			ApplyPreset(&cfg, p)
			if cfg.Timing.AutoFall != tt.autoFall {
				t.Errorf("AutoFall = %v, expected %v", cfg.Timing.AutoFall, tt.autoFall)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Difficulty.Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
		})
	}

	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParsePreset(nightmare) = %v, expected ErrInvalid", err)
	}
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %v, %v, expected normal", p, err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("round trip = %+v, expected defaults", cfg)
	}
}
