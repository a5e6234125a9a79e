package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var flagShowDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration blockfall would play with, as YAML.

Config search order:
  1. --config <path>
  2. ~/.blockfall/config.yaml
  3. ./configs/blockfall.yaml
  4. built-in defaults

The --difficulty and --fps flags are applied on top.

Examples:
  blockfall config
  blockfall config --difficulty hard
  blockfall config --defaults > ~/.blockfall/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefaults, "defaults", false, "Print the commented default config file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagShowDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	s, err := loadSettings()
	if err != nil {
		fatal(err)
	}

	data, err := s.cfg.Marshal()
	if err != nil {
		fatal(err)
	}
	fmt.Printf("# source: %s\n", s.source.Path)
	os.Stdout.Write(data)
}
