// Package input merges keyboard, on-screen buttons, pointer and a virtual
// joystick into one core.InputFrame per simulation tick.
package input

import "github.com/vovakirdan/centipede-arcade/internal/core"

// Direction is one of the four movement directions.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Joystick tuning in world units.
const (
	JoystickDeadzone = 20.0
	JoystickMaxThrow = 50.0
	// JoystickZone is the fraction of the screen height below which a
	// touch starts the joystick.
	JoystickZone = 0.7
)

type joystick struct {
	active bool
	origin core.Vec2
	cur    core.Vec2
}

// Manager accumulates raw device state between ticks.
type Manager struct {
	keys    [4]bool
	buttons [4]bool

	fireKey    bool
	fireButton bool
	pointer    bool

	joy      joystick
	prevFire bool
	pending  []core.Action
}

// NewManager creates a manager with nothing held.
func NewManager() *Manager {
	return &Manager{}
}

// SetKey records a directional key state.
func (m *Manager) SetKey(d Direction, down bool) { m.keys[d] = down }

// SetButton records an on-screen direction button.
func (m *Manager) SetButton(d Direction, down bool) { m.buttons[d] = down }

// SetFireKey records the fire key.
func (m *Manager) SetFireKey(down bool) { m.fireKey = down }

// SetFireButton records the on-screen fire button.
func (m *Manager) SetFireButton(down bool) { m.fireButton = down }

// SetPointer records whether the mouse button or a touch is held.
func (m *Manager) SetPointer(down bool) { m.pointer = down }

// StartJoystick anchors the joystick at pos.
func (m *Manager) StartJoystick(pos core.Vec2) {
	m.joy = joystick{active: true, origin: pos, cur: pos}
}

// MoveJoystick updates the stick position.
func (m *Manager) MoveJoystick(pos core.Vec2) {
	if m.joy.active {
		m.joy.cur = pos
	}
}

// ReleaseJoystick deactivates the joystick.
func (m *Manager) ReleaseJoystick() { m.joy.active = false }

// JoystickActive reports whether the stick is held.
func (m *Manager) JoystickActive() bool { return m.joy.active }

// Joystick returns the stick anchor and its current position.
func (m *Manager) Joystick() (origin, cur core.Vec2) { return m.joy.origin, m.joy.cur }

// Trigger queues a one-shot action for the next frame.
func (m *Manager) Trigger(a core.Action) {
	if a != core.ActionNone {
		m.pending = append(m.pending, a)
	}
}

func (m *Manager) anyButton() bool {
	for _, b := range m.buttons {
		if b {
			return true
		}
	}
	return false
}

// Movement combines keys and buttons, then lets the joystick override each
// axis it is pushed past the deadzone on. The joystick is ignored while an
// on-screen button is held.
func (m *Manager) Movement() core.Vec2 {
	var v core.Vec2
	for _, src := range [][4]bool{m.keys, m.buttons} {
		if src[Left] {
			v.X--
		}
		if src[Right] {
			v.X++
		}
		if src[Up] {
			v.Y--
		}
		if src[Down] {
			v.Y++
		}
	}

	if m.joy.active && !m.anyButton() {
		d := m.joy.cur.Sub(m.joy.origin)
		if d.X > JoystickDeadzone || d.X < -JoystickDeadzone {
			v.X = core.ClampF(d.X/JoystickMaxThrow, -1, 1)
		}
		if d.Y > JoystickDeadzone || d.Y < -JoystickDeadzone {
			v.Y = core.ClampF(d.Y/JoystickMaxThrow, -1, 1)
		}
	}

	v.X = core.ClampF(v.X, -1, 1)
	v.Y = core.ClampF(v.Y, -1, 1)
	return v
}

// FireHeld reports whether any fire source is held.
func (m *Manager) FireHeld() bool {
	return m.fireKey || m.fireButton || m.pointer
}

// Frame samples the current state for one tick. FirePressed is true only
// on the first tick fire is held; queued actions are consumed.
func (m *Manager) Frame() core.InputFrame {
	f := core.NewInputFrame()
	mv := m.Movement()
	f.SetMove(mv.X, mv.Y)

	fire := m.FireHeld()
	f.Fire = fire
	f.FirePressed = fire && !m.prevFire
	m.prevFire = fire

	for _, a := range m.pending {
		f.Set(a)
	}
	m.pending = m.pending[:0]
	return f
}

// Reset releases everything.
func (m *Manager) Reset() {
	*m = Manager{pending: m.pending[:0]}
}
