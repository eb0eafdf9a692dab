package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/centipede-arcade/internal/audio"
	"github.com/vovakirdan/centipede-arcade/internal/config"
	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/game"
	"github.com/vovakirdan/centipede-arcade/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a terminal session with the title menu.

Controls:
  Arrows/WASD - Move
  Space/Z     - Fire
  Enter       - Start
  P/Esc       - Pause
  R           - Restart (after game over)
  B           - Back to menu (title, pause or game over)
  F3/` + "`" + `        - Debug overlay
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - More lives, faster ship, slower spawns; ramps from 0%
  normal - Ramps from 30% difficulty
  hard   - Fewer lives, faster spawns; ramps from 70%
  fixed  - No progression, stays at the config's initial level

Logs go to ~/.centipede/centipede.log while the game owns the screen.

Examples:
  centipede play
  centipede play --difficulty hard
  centipede play --config ./my-centipede.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// openLogFile opens the session log under ~/.centipede.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".centipede")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "centipede.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

func runPlay(_ *cobra.Command, _ []string) {
	logOut := os.Stderr
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "centipede")

	e, err := openEnv(logger)
	if err != nil {
		fail("%v", err)
	}
	defer e.Close()

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	player := audio.Open(e.cfg.Audio.Enabled, e.cfg.Audio.Volume, logger)
	defer player.Close()

	deps := tui.SessionDeps{
		NewGame: func(p config.DifficultyPreset) *game.Game { return e.newGame(p, player) },
		Scores:  e.scores,
		Preset:  e.preset,
		Logger:  logger,
	}
	if e.store != nil {
		deps.History = e.store
	}

	if err := tui.Run(deps, cfg); err != nil {
		fail("running game: %v", err)
	}
}
