package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// settings is everything a frontend needs to start.
type settings struct {
	cfg     config.Config
	source  config.Source
	runtime core.RuntimeConfig
}

// loadSettings resolves the config file, the difficulty preset and the runtime flags.
func loadSettings() (settings, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return settings{}, err
	}
	// Printed before any UI starts, so a full-screen session cannot hide them.
	for _, skipped := range source.Skipped {
		log.Warn("config file ignored", "err", skipped)
	}

	// Without --difficulty the file decides whether the ramp is on.
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return settings{}, err
		}
		config.ApplyPreset(&cfg, preset)
	}

	if flagFPS < 0 {
		return settings{}, fmt.Errorf("%w: --fps must not be negative, got %d", config.ErrInvalid, flagFPS)
	}
	if flagFPS > 0 {
		cfg.Window.TickRate = flagFPS
	}

	rc := core.DefaultConfig()
	rc.TickRate = cfg.Window.TickRate
	rc.Seed = flagSeed

	return settings{cfg: cfg, source: source, runtime: rc}, nil
}

// newLogger builds the process logger. When a full-screen terminal UI owns
// stderr and no log file is given, logs are discarded.
// The returned function closes the log file, if any.
func newLogger(fullScreen bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = func() { f.Close() }
	case fullScreen:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           level,
	})
	return logger, closeFn, nil
}

// fatal prints an error and exits with status 1.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
