package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/centipede-arcade/internal/audio"
	"github.com/vovakirdan/centipede-arcade/internal/config"
	"github.com/vovakirdan/centipede-arcade/internal/game"
	"github.com/vovakirdan/centipede-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own single-player session with the title
menu. Scores are stored per-server (all users share the same tables).
Sessions are silent.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.centipede/host_key

Examples:
  centipede serve                           # Listen on :23234 with auto-generated key
  centipede serve --ssh :2222               # Listen on port 2222
  centipede serve --host-key ./my_host_key  # Use specific host key
  centipede serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "centipede-ssh")

	e, err := openEnv(logger)
	if err != nil {
		fail("%v", err)
	}
	defer e.Close()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		FPS:         flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	deps := tui.SessionDeps{
		NewGame: func(p config.DifficultyPreset) *game.Game { return e.newGame(p, audio.Nop{}) },
		Scores:  e.scores,
		Preset:  e.preset,
		Logger:  logger,
	}
	if e.store != nil {
		deps.History = e.store
	}

	server, err := tui.NewSSHServer(cfg, deps)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting centipede SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
