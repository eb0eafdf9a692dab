package input

import "github.com/vovakirdan/centipede-arcade/internal/core"

// Button identifies an on-screen control.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonFire
	buttonCount
)

// ButtonSize is the edge of an on-screen button in world units.
const ButtonSize = 56.0

// Touch is one active contact in world coordinates.
type Touch struct {
	ID  int
	Pos core.Vec2
}

// DefaultButtons lays out a d-pad in the bottom-left corner and the fire
// button in the bottom-right one.
func DefaultButtons() []core.Box {
	const gap = 4.0
	s := ButtonSize
	cx := 16 + s + gap
	cy := core.WorldH - 16 - 2*s - 2*gap
	b := make([]core.Box, buttonCount)
	b[ButtonLeft] = core.Box{X: cx - s - gap, Y: cy, W: s, H: s}
	b[ButtonRight] = core.Box{X: cx + s + gap, Y: cy, W: s, H: s}
	b[ButtonUp] = core.Box{X: cx, Y: cy - s - gap, W: s, H: s}
	b[ButtonDown] = core.Box{X: cx, Y: cy + s + gap, W: s, H: s}
	b[ButtonFire] = core.Box{X: core.WorldW - 16 - 1.5*s, Y: cy, W: 1.5 * s, H: 1.5 * s}
	return b
}

func inBox(b core.Box, p core.Vec2) bool {
	return p.X >= b.X && p.X < b.X+b.W && p.Y >= b.Y && p.Y < b.Y+b.H
}

// TouchPad routes raw contacts into a Manager. A contact on a button holds
// that button. Any other contact holds fire, and one that begins in the
// bottom joystick zone also drives the virtual stick until it lifts.
type TouchPad struct {
	buttons []core.Box
	seen    map[int]bool
	stickID int
	stick   bool
}

// NewTouchPad creates a pad with the default button layout.
func NewTouchPad() *TouchPad {
	return &TouchPad{buttons: DefaultButtons(), seen: make(map[int]bool)}
}

// Buttons returns the button regions, indexed by Button.
func (p *TouchPad) Buttons() []core.Box { return p.buttons }

// ButtonAt returns the button under pos.
func (p *TouchPad) ButtonAt(pos core.Vec2) (Button, bool) {
	for i, b := range p.buttons {
		if inBox(b, pos) {
			return Button(i), true
		}
	}
	return 0, false
}

// Update applies the current contacts to m and reports whether a contact
// off the buttons is down, which the caller treats as a held pointer.
func (p *TouchPad) Update(touches []Touch, m *Manager) (pointer bool) {
	var held [buttonCount]bool
	stickAlive := false
	now := make(map[int]bool, len(touches))

	for _, t := range touches {
		now[t.ID] = true
		if b, ok := p.ButtonAt(t.Pos); ok {
			held[b] = true
			continue
		}
		pointer = true

		switch {
		case p.stick && t.ID == p.stickID:
			stickAlive = true
			m.MoveJoystick(t.Pos)
		case !p.stick && !p.seen[t.ID] && t.Pos.Y > core.WorldH*JoystickZone:
			p.stick, p.stickID, stickAlive = true, t.ID, true
			m.StartJoystick(t.Pos)
		}
	}

	if p.stick && !stickAlive {
		p.stick = false
		m.ReleaseJoystick()
	}
	p.seen = now

	for d := Left; d <= Down; d++ {
		m.SetButton(d, held[d])
	}
	m.SetFireButton(held[ButtonFire])
	return pointer
}
