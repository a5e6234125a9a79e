package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start blockfall in the terminal.

Controls:
  Left/H/A    - Move left
  Right/L/D   - Move right
  Up/K/W      - Rotate
  Down/J/S    - Soft drop (hold)
  P           - Pause
  Esc         - End the game (back to the title screen)
  Space       - Start a game from the title screen
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower start (0.4s per row), speeds up over time
  normal - Default start (0.25s per row), speeds up over time
  hard   - Fast start (0.15s per row), speeds up over time
  fixed  - No speed-up

Examples:
  blockfall play
  blockfall play --difficulty easy
  blockfall play --seed 42 --log-file blockfall.log
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	s, err := loadSettings()
	if err != nil {
		fatal(err)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fatal(err)
	}
	defer closeLog()

	// Get terminal size before the program starts
	s.runtime.ScreenW, s.runtime.ScreenH = 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		s.runtime.ScreenW = w
		s.runtime.ScreenH = h
	}

	logger.Info("session started",
		"frontend", "terminal",
		"config", s.source.Path,
		"config_skipped", len(s.source.Skipped),
		"seed", s.runtime.Seed,
		"fps", s.runtime.TickRate,
	)

	if err := tui.Run(s.cfg, s.runtime, logger); err != nil {
		logger.Error("terminal UI failed", "error", err)
		closeLog()
		fatal(err)
	}
	logger.Info("session ended")
}
