// blockfall is a falling-block puzzle game for the terminal and the desktop.
//
// Usage:
//
//	blockfall                - Play in the terminal (same as "play")
//	blockfall play           - Play in the terminal
//	blockfall window         - Play in a desktop window
//	blockfall serve          - Start SSH server for remote play
//	blockfall config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Frame rate cap (default: window.tick_rate from config)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn or error
//	--log-file <path>      - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle game",
	Long: `Blockfall is a falling-block puzzle game. Steer and rotate the falling
shapes, complete rows to clear them, and survive as the pieces speed up.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  blockfall
  blockfall play --difficulty hard
  blockfall window --seed 42
  blockfall serve --ssh :2222
  blockfall config --config ./my-blockfall.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate cap (0 = window.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
