// centipede is the arcade shooter in a terminal, a window or over SSH.
//
// Usage:
//
//	centipede play           - Play in the terminal
//	centipede window         - Play in a desktop window
//	centipede serve          - Start SSH server for remote play
//	centipede scores         - Show high scores and game history
//
// Global flags:
//
//	--fps <rate>          - Terminal render rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.centipede/centipede.db)
//	--store <kind>        - High score backend: sqlite or gdata
//	--config <path>       - Custom YAML or TOML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--mute                - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/centipede-arcade/internal/platform/tui"
	"github.com/vovakirdan/centipede-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagStore      string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "centipede",
	Short: "Centipede - the arcade shooter in your terminal",
	Long: `Centipede is a fixed-timestep remake of the arcade shooter. Blast the
centipede as it winds down through the mushroom field, and keep clear of
spiders, fleas and scorpions.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  centipede play
  centipede play --difficulty hard --seed 42
  centipede window --mute
  centipede serve --ssh :2222
  centipede scores --store gdata`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", tui.DefaultFPS, "Terminal render rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagStore, "store", "sqlite", "High score backend: sqlite, gdata")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
