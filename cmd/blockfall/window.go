package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open blockfall in a desktop window.

The board is drawn with blocks of window.block_size pixels and the next
piece is shown in the column on the left.

Controls:
  Left/A, Right/D  - Move
  Up/W             - Rotate
  Down/S           - Soft drop (hold)
  P                - Pause
  Esc              - End the game, or close the window from the title screen
  Space            - Start a game from the title screen

Examples:
  blockfall window
  blockfall window --difficulty hard --fps 60`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	s, err := loadSettings()
	if err != nil {
		fatal(err)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fatal(err)
	}
	defer closeLog()

	logger.Info("session started",
		"frontend", "window",
		"config", s.source.Path,
		"config_skipped", len(s.source.Skipped),
		"seed", s.runtime.Seed,
		"fps", s.runtime.TickRate,
	)

	if err := gui.Run(s.cfg, s.runtime, logger); err != nil {
		logger.Error("window failed", "error", err)
		closeLog()
		fatal(err)
	}
	logger.Info("session ended")
}
