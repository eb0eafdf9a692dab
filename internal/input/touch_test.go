package input

import (
	"testing"

	"github.com/vovakirdan/centipede-arcade/internal/core"
)

func TestDefaultButtonsOnScreen(t *testing.T) {
	for i, b := range DefaultButtons() {
		if b.X < 0 || b.Y < 0 || b.X+b.W > core.WorldW || b.Y+b.H > core.WorldH {
			t.Errorf("button %d = %+v lies off screen", i, b)
		}
	}
}

func TestTouchPadButtons(t *testing.T) {
	pad := NewTouchPad()
	m := NewManager()
	left := pad.Buttons()[ButtonLeft].Center()
	fire := pad.Buttons()[ButtonFire].Center()

	pointer := pad.Update([]Touch{{ID: 1, Pos: left}, {ID: 2, Pos: fire}}, m)
	if pointer {
		t.Error("button contacts should not count as a pointer")
	}
	f := m.Frame()
	if f.Move.X != -1 || !f.Fire {
		t.Errorf("frame = %+v, expected left and fire", f)
	}

	pad.Update(nil, m)
	f = m.Frame()
	if f.Move.X != 0 || f.Fire {
		t.Errorf("frame = %+v, expected buttons released", f)
	}
}

func TestTouchPadJoystick(t *testing.T) {
	pad := NewTouchPad()
	m := NewManager()
	start := core.V(400, 550)

	if !pad.Update([]Touch{{ID: 3, Pos: start}}, m) {
		t.Error("a free contact should hold the pointer")
	}
	if !m.JoystickActive() {
		t.Fatal("a contact in the bottom zone should start the joystick")
	}

	pad.Update([]Touch{{ID: 3, Pos: start.Add(core.V(50, 0))}}, m)
	if mv := m.Movement(); mv.X != 1 {
		t.Errorf("movement = %v, expected full right", mv)
	}

	pad.Update(nil, m)
	if m.JoystickActive() {
		t.Error("lifting the contact should release the joystick")
	}
}

func TestTouchPadUpperContactOnlyFires(t *testing.T) {
	pad := NewTouchPad()
	m := NewManager()

	if !pad.Update([]Touch{{ID: 1, Pos: core.V(400, 100)}}, m) {
		t.Error("expected a held pointer")
	}
	if m.JoystickActive() {
		t.Error("contacts above the joystick zone must not start it")
	}

	// A held contact sliding into the zone does not start the stick.
	pad.Update([]Touch{{ID: 1, Pos: core.V(400, 550)}}, m)
	if m.JoystickActive() {
		t.Error("only new contacts may start the joystick")
	}
}
