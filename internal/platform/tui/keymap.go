package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/input"
)

// KeyKind classifies a mapped key.
type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyMove
	KeyFire
	KeyAction
	KeyQuit
)

// Key is the meaning of one key press during play.
type Key struct {
	Kind   KeyKind
	Dir    input.Direction
	Action core.Action
}

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to its in-game meaning.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Key {
	switch msg.String() {
	case "ctrl+c", "q":
		return Key{Kind: KeyQuit}
	case "left", "a", "h":
		return Key{Kind: KeyMove, Dir: input.Left}
	case "right", "d", "l":
		return Key{Kind: KeyMove, Dir: input.Right}
	case "up", "w", "k":
		return Key{Kind: KeyMove, Dir: input.Up}
	case "down", "s", "j":
		return Key{Kind: KeyMove, Dir: input.Down}
	case " ", "z":
		return Key{Kind: KeyFire}
	case "enter":
		return Key{Kind: KeyAction, Action: core.ActionConfirm}
	case "p", "esc":
		return Key{Kind: KeyAction, Action: core.ActionPause}
	case "r":
		return Key{Kind: KeyAction, Action: core.ActionRestart}
	case "b":
		return Key{Kind: KeyAction, Action: core.ActionBack}
	case "f3", "`":
		return Key{Kind: KeyAction, Action: core.ActionDebug}
	}
	return Key{Kind: KeyNone}
}

// Apply feeds a key press to the latch and the input manager.
// Returns true if the key was a quit request.
func (km *KeyMapper) Apply(msg tea.KeyMsg, latch *input.Latch, m *input.Manager) bool {
	k := km.MapKey(msg)
	switch k.Kind {
	case KeyQuit:
		return true
	case KeyMove:
		latch.Press(k.Dir)
	case KeyFire:
		latch.PressFire()
	case KeyAction:
		m.Trigger(k.Action)
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
