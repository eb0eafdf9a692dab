package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/centipede-arcade/internal/audio"
	"github.com/vovakirdan/centipede-arcade/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a resizable window.

Controls:
  Arrows/WASD      - Move
  Space/Mouse      - Fire
  Touch            - Fire; drag from the bottom of the screen to steer,
                     or use the on-screen pad
  Enter            - Start
  P/Esc            - Pause
  R                - Restart (after game over)
  F3               - Debug overlay
  Q                - Quit

Examples:
  centipede window
  centipede window --scale 1.5 --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window scale")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "centipede")

	e, err := openEnv(logger)
	if err != nil {
		fail("%v", err)
	}
	defer e.Close()

	player := audio.Open(e.cfg.Audio.Enabled, e.cfg.Audio.Volume, logger)
	g := e.newGame(e.preset, player)

	// Run closes the game and its audio.
	if err := window.Run(g, window.Options{Scale: flagScale, Logger: logger}); err != nil {
		fail("running window: %v", err)
	}
}
