package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/game"
	"github.com/vovakirdan/centipede-arcade/internal/input"
	"github.com/vovakirdan/centipede-arcade/internal/level"
	"github.com/vovakirdan/centipede-arcade/internal/loop"
	"github.com/vovakirdan/centipede-arcade/internal/render"
)

// DefaultFPS is the terminal render rate. The simulation keeps its own
// fixed rate regardless.
const DefaultFPS = 30

// GameModel is the Bubble Tea model playing one Game. Terminals report key
// presses only, so movement and fire go through an input.Latch.
type GameModel struct {
	game       *game.Game
	runner     *game.Runner
	input      *input.Manager
	latch      *input.Latch
	keyMapper  *KeyMapper
	screen     *core.Screen
	styles     styleCache
	config     core.RuntimeConfig
	logger     *log.Logger
	quitting   bool
	backToMenu bool
}

// NewGameModel wraps g for terminal play.
func NewGameModel(g *game.Game, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	def := core.DefaultConfig()
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultFPS
	}
	if logger == nil {
		logger = log.Default()
	}

	return GameModel{
		game:      g,
		runner:    game.NewRunner(g, loop.SystemClock{}),
		input:     input.NewManager(),
		latch:     input.NewLatch(input.DefaultHoldTicks * cfg.TickRate / loop.DefaultRate),
		keyMapper: NewKeyMapper(),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		styles:    styleCache{},
		config:    cfg,
		logger:    logger,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Back to menu only from a resting phase.
	if k := m.keyMapper.MapKey(msg); k.Kind == KeyAction && k.Action == core.ActionBack {
		switch m.game.Phase() {
		case level.Start, level.GameOver, level.Paused:
			m.backToMenu = true
		}
		return m, nil
	}

	if m.keyMapper.Apply(msg, m.latch, m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick samples input and runs the simulation steps due.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	m.latch.Tick(m.input)
	m.runner.Frame(m.input.Frame())
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	render.Rasterize(m.runner.DrawList(), m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".centipede", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("centipede_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	render.Rasterize(m.runner.DrawList(), m.screen)
	return renderScreen(m.screen, m.styles)
}

// Game returns the driven game.
func (m GameModel) Game() *game.Game { return m.game }

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
