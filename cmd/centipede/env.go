package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/centipede-arcade/internal/audio"
	"github.com/vovakirdan/centipede-arcade/internal/config"
	"github.com/vovakirdan/centipede-arcade/internal/game"
	"github.com/vovakirdan/centipede-arcade/internal/scoring"
	"github.com/vovakirdan/centipede-arcade/internal/storage"
)

// env is the wiring shared by every command: config, stores and logger.
type env struct {
	cfg     config.CentipedeConfig
	preset  config.DifficultyPreset
	scores  scoring.KeyValue
	store   *storage.Store
	logger  *log.Logger
	closers []io.Closer
}

// newLogger builds the process logger. Terminal play writes to a file
// because stderr shares the screen with the game.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openEnv reads the global flags. Store failures degrade to in-memory
// high scores with a warning; bad flag values are errors.
func openEnv(logger *log.Logger) (*env, error) {
	e := &env{logger: logger}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		if flagConfig != "" {
			return nil, err
		}
		logger.Warn("using default config", "err", err)
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	e.cfg = cfg

	if flagDifficulty != "" {
		e.preset = config.ParsePreset(flagDifficulty)
		if e.preset == "" {
			return nil, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
	} else {
		e.store = store
		e.closers = append(e.closers, store)
	}

	switch flagStore {
	case "sqlite":
		if e.store != nil {
			e.scores = e.store
		}
	case "gdata":
		gd, err := storage.OpenGData("")
		if err != nil {
			logger.Warn("could not open gdata save area", "err", err)
			break
		}
		e.scores = gd
	default:
		e.Close()
		return nil, fmt.Errorf("unknown store %q (want sqlite or gdata)", flagStore)
	}

	return e, nil
}

// history returns the game history, or nil without a database.
func (e *env) history() game.History {
	if e.store == nil {
		return nil
	}
	return e.store
}

// newGame builds a game for preset with the given audio player.
func (e *env) newGame(preset config.DifficultyPreset, player audio.Player) *game.Game {
	cfg := e.cfg
	config.ApplyCentipedePreset(&cfg, preset)
	return game.New(game.Options{
		Config:  cfg,
		Seed:    flagSeed,
		Audio:   player,
		Scores:  e.scores,
		History: e.history(),
		Logger:  e.logger,
	})
}

// Close releases the stores.
func (e *env) Close() {
	for _, c := range e.closers {
		if err := c.Close(); err != nil {
			e.logger.Warn("close failed", "err", err)
		}
	}
	e.closers = nil
}

// fail prints err and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
