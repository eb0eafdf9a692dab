package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/centipede-arcade/internal/config"
	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/game"
)

func newTestSession(t *testing.T) (SessionModel, *[]config.DifficultyPreset) {
	t.Helper()
	var presets []config.DifficultyPreset
	logger := log.New(io.Discard)
	deps := SessionDeps{
		NewGame: func(p config.DifficultyPreset) *game.Game {
			presets = append(presets, p)
			return game.New(game.Options{Seed: 7, Logger: logger})
		},
		Preset: config.DifficultyNormal,
		Logger: logger,
	}
	return NewSessionModel(deps, core.DefaultConfig(), "tester"), &presets
}

func send(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionPlayAndBack(t *testing.T) {
	m, presets := newTestSession(t)

	// Pick hard on the difficulty row, then play.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.screen != screenGame {
		t.Fatalf("screen = %d, expected the game", m.screen)
	}
	if len(*presets) != 1 || (*presets)[0] != config.DifficultyHard {
		t.Errorf("factory presets = %v, expected [hard]", *presets)
	}
	if m.View() == "" {
		t.Error("game view is empty")
	}

	// The game sits on its title screen, so back returns to the menu.
	m = send(t, m, runeKey('b'))
	if m.screen != screenMenu {
		t.Fatalf("screen = %d, expected the menu", m.screen)
	}
	if m.menu.Preset() != config.DifficultyHard {
		t.Errorf("menu preset = %s, expected the last choice", m.menu.Preset())
	}
}

func TestSessionScoreboardAndQuit(t *testing.T) {
	m, _ := newTestSession(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %d, expected the scoreboard", m.screen)
	}
	if len(m.scoreboard.tabs) != 1 {
		t.Errorf("%d tabs, expected only the top-10 table without history", len(m.scoreboard.tabs))
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %d, expected the menu", m.screen)
	}

	m = send(t, m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q should quit the session")
	}
}
